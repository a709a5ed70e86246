package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Matchup is one head-to-head pairing of a scoring week with the points each
// side has banked so far.
type Matchup struct {
	MatchupID int64     `json:"matchup_id" db:"matchup_id"`
	WeekStart time.Time `json:"week_start" db:"week_start"`
	TeamA     string    `json:"team_a" db:"team_a"`
	TeamB     string    `json:"team_b" db:"team_b"`
	ScoreA    float64   `json:"score_a" db:"score_a"`
	ScoreB    float64   `json:"score_b" db:"score_b"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ScoresFor returns the banked scores ordered as (team, other).
func (m Matchup) ScoresFor(team string) (float64, float64) {
	if team == m.TeamB {
		return m.ScoreB, m.ScoreA
	}
	return m.ScoreA, m.ScoreB
}

// HistoryRow is one stored game of a player's season log.
type HistoryRow struct {
	PlayerID      string          `db:"player_id"`
	GameDate      time.Time       `db:"game_date"`
	GameID        string          `db:"game_id"`
	Season        string          `db:"season"`
	FantasyPoints sql.NullFloat64 `db:"fantasy_points"`
	Opponent      sql.NullString  `db:"opponent"`
}

// OddsRun is a persisted simulation result.
type OddsRun struct {
	RunID     string          `json:"run_id" db:"run_id"`
	Kind      string          `json:"kind" db:"kind"`
	TeamA     string          `json:"team_a" db:"team_a"`
	TeamB     string          `json:"team_b" db:"team_b"`
	Trials    int             `json:"trials" db:"trials"`
	PTeamA    float64         `json:"p_team_a" db:"p_team_a"`
	PTeamB    float64         `json:"p_team_b" db:"p_team_b"`
	PTie      float64         `json:"p_tie" db:"p_tie"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
