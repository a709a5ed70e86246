package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/store"
)

// HistoryRepository handles player fantasy history data access
type HistoryRepository struct {
	db *store.Database
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *store.Database) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// AppendGames stores games not already recorded for the player and returns
// how many were new. Games are keyed by (date, game id).
func (r *HistoryRepository) AppendGames(ctx context.Context, playerID string, games []history.Game) (int, error) {
	if len(games) == 0 {
		return 0, nil
	}

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin history append: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, g := range games {
		date, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			return 0, fmt.Errorf("history game date %q: %w", g.Date, err)
		}

		var points sql.NullFloat64
		if g.FantasyPoints != nil {
			points = sql.NullFloat64{Float64: *g.FantasyPoints, Valid: true}
		}
		opponent := sql.NullString{String: g.Opponent, Valid: g.Opponent != ""}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO player_fantasy_history (player_id, game_date, game_id, season, fantasy_points, opponent)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (player_id, game_date, game_id) DO NOTHING
		`, playerID, date, g.GameID, history.SeasonString(date), points, opponent)
		if err != nil {
			return 0, fmt.Errorf("inserting history for %s: %w", playerID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit history append: %w", err)
	}
	return added, nil
}

// Populations returns each player's non-null fantasy scores for a season in
// date order.
func (r *HistoryRepository) Populations(ctx context.Context, season string) (map[string][]float64, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT player_id, fantasy_points
		FROM player_fantasy_history
		WHERE season = $1 AND fantasy_points IS NOT NULL
		ORDER BY player_id, game_date, game_id
	`, season)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	pops := make(map[string][]float64)
	for rows.Next() {
		var playerID string
		var points float64
		if err := rows.Scan(&playerID, &points); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		pops[playerID] = append(pops[playerID], points)
	}
	return pops, rows.Err()
}

// Import stores every game of a history document and returns the number of
// new rows.
func (r *HistoryRepository) Import(ctx context.Context, doc history.Document) (int, error) {
	added := 0
	for playerID, p := range doc {
		n, err := r.AppendGames(ctx, playerID, p.History)
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}
