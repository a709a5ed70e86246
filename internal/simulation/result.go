package simulation

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MatchupResult is the tally of one simulation run.
type MatchupResult struct {
	RunID string `json:"run_id,omitempty"`
	TeamA string `json:"team_a"`
	TeamB string `json:"team_b"`

	Trials    int `json:"trials"`
	TeamAWins int `json:"team_a_wins"`
	TeamBWins int `json:"team_b_wins"`
	Ties      int `json:"ties"`

	PTeamA float64 `json:"p_team_a"`
	PTeamB float64 `json:"p_team_b"`
	PTie   float64 `json:"p_tie"`

	AvgTeamA float64 `json:"avg_team_a"`
	AvgTeamB float64 `json:"avg_team_b"`

	BaselineA float64 `json:"baseline_team_a"`
	BaselineB float64 `json:"baseline_team_b"`

	SpreadA Spread `json:"spread_team_a"`
	SpreadB Spread `json:"spread_team_b"`
}

// Spread summarises the simulated totals of one side.
type Spread struct {
	StdDev float64 `json:"std_dev"`
	P10    float64 `json:"p10"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
}

// WeeklyResult adds per-day projected averages to a multi-day run.
type WeeklyResult struct {
	MatchupResult
	Days []DayProjection `json:"days"`
}

// DayProjection is the average simulated score of each side on one day.
type DayProjection struct {
	Date     string  `json:"date"`
	AvgTeamA float64 `json:"avg_team_a"`
	AvgTeamB float64 `json:"avg_team_b"`
	ActiveA  int     `json:"active_team_a"`
	ActiveB  int     `json:"active_team_b"`
}

// summarize sorts totals in place.
func summarize(totals []float64) Spread {
	if len(totals) == 0 {
		return Spread{}
	}
	sort.Float64s(totals)

	spread := Spread{
		P10: stat.Quantile(0.10, stat.Empirical, totals, nil),
		P50: stat.Quantile(0.50, stat.Empirical, totals, nil),
		P90: stat.Quantile(0.90, stat.Empirical, totals, nil),
	}
	if len(totals) > 1 {
		_, spread.StdDev = stat.MeanStdDev(totals, nil)
	}
	return spread
}
