package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/store"
)

// TeamRepository handles fantasy team and roster data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns every fantasy team with its roster, ordered by team id.
func (r *TeamRepository) GetAll(ctx context.Context) ([]league.Team, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT team_id, name
		FROM fantasy_teams
		ORDER BY team_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []league.Team
	index := make(map[string]int)
	for rows.Next() {
		var t league.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		index[t.ID] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.db.DB().QueryContext(ctx, `
		SELECT team_id, player_id, name, pro_team, lineup_slot, injured, stats_id
		FROM fantasy_roster_entries
		ORDER BY team_id, player_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying roster entries: %w", err)
	}
	defer entries.Close()

	for entries.Next() {
		var teamID string
		var e league.RosterEntry
		if err := entries.Scan(&teamID, &e.PlayerID, &e.Name, &e.ProTeam, &e.LineupSlot, &e.Injured, &e.StatsID); err != nil {
			return nil, fmt.Errorf("scanning roster entry: %w", err)
		}
		if i, ok := index[teamID]; ok {
			teams[i].Entries = append(teams[i].Entries, e)
		}
	}

	return teams, entries.Err()
}

// ReplaceAll upserts each team and replaces its roster in one transaction.
func (r *TeamRepository) ReplaceAll(ctx context.Context, teams []league.Team) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin roster sync: %w", err)
	}
	defer tx.Rollback()

	for _, t := range teams {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO fantasy_teams (team_id, name)
			VALUES ($1, $2)
			ON CONFLICT (team_id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		`, t.ID, t.Name); err != nil {
			return fmt.Errorf("upserting team %s: %w", t.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM fantasy_roster_entries WHERE team_id = $1`, t.ID); err != nil {
			return fmt.Errorf("clearing roster %s: %w", t.ID, err)
		}

		for _, e := range t.Entries {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO fantasy_roster_entries (team_id, player_id, name, pro_team, lineup_slot, injured, stats_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, t.ID, e.PlayerID, e.Name, league.CanonicalTeam(e.ProTeam), e.LineupSlot, e.Injured, e.StatsID); err != nil {
				return fmt.Errorf("inserting roster entry %s/%s: %w", t.ID, e.PlayerID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster sync: %w", err)
	}
	return nil
}
