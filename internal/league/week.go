package league

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fortuna/pythia/internal/store"
)

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekBounds returns Monday and Sunday of the calendar week containing day.
func WeekBounds(day time.Time) (time.Time, time.Time) {
	day = Day(day)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// DaysBetween lists each calendar day from start to end inclusive.
func DaysBetween(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

type matchupDoc struct {
	WeekStart string  `json:"week_start"`
	TeamA     string  `json:"team_a"`
	TeamB     string  `json:"team_b"`
	ScoreA    float64 `json:"score_a"`
	ScoreB    float64 `json:"score_b"`
}

// LoadMatchups reads a JSON array of weekly pairings with their banked
// scores. Any date inside a week is accepted and moved to its Monday.
func LoadMatchups(path string) ([]store.Matchup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matchups: %w", err)
	}

	var docs []matchupDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding matchups: %w", err)
	}

	matchups := make([]store.Matchup, 0, len(docs))
	for i, d := range docs {
		day, err := time.Parse("2006-01-02", d.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("matchup %d: invalid week_start %q: %w", i, d.WeekStart, err)
		}
		if d.TeamA == "" || d.TeamB == "" || d.TeamA == d.TeamB {
			return nil, fmt.Errorf("matchup %d: needs two distinct teams, got %q and %q", i, d.TeamA, d.TeamB)
		}
		monday, _ := WeekBounds(day)
		matchups = append(matchups, store.Matchup{
			WeekStart: monday,
			TeamA:     d.TeamA,
			TeamB:     d.TeamB,
			ScoreA:    d.ScoreA,
			ScoreB:    d.ScoreB,
		})
	}
	return matchups, nil
}
