package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/pythia/internal/store"
)

// OddsRunRepository records simulation results
type OddsRunRepository struct {
	db *store.Database
}

// NewOddsRunRepository creates a new odds run repository
func NewOddsRunRepository(db *store.Database) *OddsRunRepository {
	return &OddsRunRepository{db: db}
}

// Save inserts one run.
func (r *OddsRunRepository) Save(ctx context.Context, run store.OddsRun) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO odds_runs (run_id, kind, team_a, team_b, trials, p_team_a, p_team_b, p_tie, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.RunID, run.Kind, run.TeamA, run.TeamB, run.Trials, run.PTeamA, run.PTeamB, run.PTie, []byte(run.Payload))
	if err != nil {
		return fmt.Errorf("inserting odds run %s: %w", run.RunID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (r *OddsRunRepository) Recent(ctx context.Context, limit int) ([]store.OddsRun, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT run_id, kind, team_a, team_b, trials, p_team_a, p_team_b, p_tie, payload, created_at
		FROM odds_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying odds runs: %w", err)
	}
	defer rows.Close()

	var runs []store.OddsRun
	for rows.Next() {
		var run store.OddsRun
		var payload []byte
		if err := rows.Scan(&run.RunID, &run.Kind, &run.TeamA, &run.TeamB, &run.Trials,
			&run.PTeamA, &run.PTeamB, &run.PTie, &payload, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning odds run: %w", err)
		}
		run.Payload = payload
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
