package service

import (
	"time"

	"github.com/fortuna/pythia/internal/simulation"
)

// Run kinds recorded with each result.
const (
	KindToday  = "today"
	KindCustom = "custom"
	KindWeek   = "week"
)

// TodayOdds is the projection of every matchup for the current day.
type TodayOdds struct {
	RunID       string                     `json:"run_id"`
	Date        string                     `json:"date"`
	Trials      int                        `json:"trials"`
	Final       bool                       `json:"final"`
	Cached      bool                       `json:"cached"`
	Teams       map[string]string          `json:"teams"`
	Matchups    []simulation.MatchupResult `json:"matchups"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// CustomOdds is a single-day projection for any two teams.
type CustomOdds struct {
	simulation.MatchupResult
	Date      string `json:"date"`
	TeamAName string `json:"team_a_name"`
	TeamBName string `json:"team_b_name"`
}

// WeekOdds projects the rest of the scoring week on top of banked points.
type WeekOdds struct {
	simulation.WeeklyResult
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	TeamAName string `json:"team_a_name"`
	TeamBName string `json:"team_b_name"`
}
