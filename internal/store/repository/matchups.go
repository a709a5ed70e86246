package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fortuna/pythia/internal/store"
)

// MatchupRepository handles weekly matchup data access
type MatchupRepository struct {
	db *store.Database
}

// NewMatchupRepository creates a new matchup repository
func NewMatchupRepository(db *store.Database) *MatchupRepository {
	return &MatchupRepository{db: db}
}

const matchupColumns = `matchup_id, week_start, team_a, team_b, score_a, score_b, updated_at`

// ListWeek returns the matchups of the week starting on weekStart.
func (r *MatchupRepository) ListWeek(ctx context.Context, weekStart time.Time) ([]store.Matchup, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+matchupColumns+`
		FROM fantasy_matchups
		WHERE week_start = $1
		ORDER BY matchup_id
	`, weekStart)
	if err != nil {
		return nil, fmt.Errorf("querying matchups: %w", err)
	}
	defer rows.Close()

	var matchups []store.Matchup
	for rows.Next() {
		m, err := scanMatchup(rows)
		if err != nil {
			return nil, err
		}
		matchups = append(matchups, m)
	}
	return matchups, rows.Err()
}

// Find returns the matchup between two teams in either orientation, or nil
// when they do not meet that week.
func (r *MatchupRepository) Find(ctx context.Context, weekStart time.Time, teamA, teamB string) (*store.Matchup, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+matchupColumns+`
		FROM fantasy_matchups
		WHERE week_start = $1
			AND ((team_a = $2 AND team_b = $3) OR (team_a = $3 AND team_b = $2))
		LIMIT 1
	`, weekStart, teamA, teamB)

	m, err := scanMatchup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying matchup %s vs %s: %w", teamA, teamB, err)
	}
	return &m, nil
}

// Upsert stores a matchup and its banked scores.
func (r *MatchupRepository) Upsert(ctx context.Context, m store.Matchup) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO fantasy_matchups (week_start, team_a, team_b, score_a, score_b)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (week_start, team_a, team_b)
		DO UPDATE SET score_a = EXCLUDED.score_a, score_b = EXCLUDED.score_b, updated_at = NOW()
	`, m.WeekStart, m.TeamA, m.TeamB, m.ScoreA, m.ScoreB)
	if err != nil {
		return fmt.Errorf("upserting matchup %s vs %s: %w", m.TeamA, m.TeamB, err)
	}
	return nil
}

func scanMatchup(scanner interface {
	Scan(dest ...interface{}) error
}) (store.Matchup, error) {
	var m store.Matchup
	err := scanner.Scan(&m.MatchupID, &m.WeekStart, &m.TeamA, &m.TeamB, &m.ScoreA, &m.ScoreB, &m.UpdatedAt)
	return m, err
}
