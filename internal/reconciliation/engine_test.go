package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/simulation"
)

func espnGame(status simulation.GameStatus, period int, clock string, home, away int) espn.Game {
	return espn.Game{
		ID:        "401810001",
		Home:      espn.TeamMeta{Abbreviation: "LAL"},
		Away:      espn.TeamMeta{Abbreviation: "BOS"},
		HomeScore: home,
		AwayScore: away,
		Status:    status,
		Period:    period,
		Clock:     clock,
	}
}

func TestReconcileWithoutGoogle(t *testing.T) {
	engine := NewEngine("", nil)
	g := espnGame(simulation.StatusInProgress, 2, "5:00", 50, 48)

	assert.Equal(t, g, engine.ReconcileGame(g, nil))
	assert.Equal(t, 1, engine.GetMetrics().ESPNPreferred)
}

func TestSmartMergeLiveUsesGoogleClock(t *testing.T) {
	engine := NewEngine(SmartMerge, nil)
	g := espnGame(simulation.StatusInProgress, 3, "8:00", 70, 66)
	card := &google.LiveGame{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 74, AwayScore: 70, Period: 3, TimeRemaining: "6:41", IsLive: true}

	merged := engine.ReconcileGame(g, card)
	assert.Equal(t, "401810001", merged.ID)
	assert.Equal(t, 74, merged.HomeScore)
	assert.Equal(t, "6:41", merged.Clock)
	assert.Equal(t, simulation.StatusInProgress, merged.Status)
	assert.Equal(t, 1, engine.GetMetrics().GooglePreferred)
}

func TestSmartMergeStartsScheduledGame(t *testing.T) {
	engine := NewEngine(SmartMerge, nil)
	g := espnGame(simulation.StatusScheduled, 0, "", 0, 0)
	card := &google.LiveGame{HomeTeam: "BOS", AwayTeam: "LAL", HomeScore: 4, AwayScore: 2, Period: 1, TimeRemaining: "10:30", IsLive: true}

	merged := engine.ReconcileGame(g, card)
	assert.Equal(t, simulation.StatusInProgress, merged.Status)
	assert.Equal(t, 1, merged.Period)
	// card was swapped back to ESPN orientation
	assert.Equal(t, 2, merged.HomeScore)
	assert.Equal(t, 4, merged.AwayScore)
}

func TestSmartMergeConflictKeepsESPN(t *testing.T) {
	engine := NewEngine(SmartMerge, nil)
	g := espnGame(simulation.StatusInProgress, 4, "2:00", 100, 98)
	card := &google.LiveGame{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 60, AwayScore: 98, Period: 4, TimeRemaining: "1:00", IsLive: true}

	assert.Equal(t, g, engine.ReconcileGame(g, card))
	assert.Equal(t, 1, engine.GetMetrics().Conflicts)
}

func TestFinalKeepsESPN(t *testing.T) {
	engine := NewEngine(SmartMerge, nil)
	g := espnGame(simulation.StatusFinal, 4, "0.0", 112, 108)
	card := &google.LiveGame{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 112, AwayScore: 108, GameStatus: "Final"}

	assert.Equal(t, g, engine.ReconcileGame(g, card))
}

func TestPreferStrategies(t *testing.T) {
	g := espnGame(simulation.StatusInProgress, 2, "5:00", 50, 48)
	card := &google.LiveGame{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 52, AwayScore: 48, Period: 2, TimeRemaining: "4:10", IsLive: true}

	assert.Equal(t, g, NewEngine(PreferAuthoritative, nil).ReconcileGame(g, card))
	assert.Equal(t, "4:10", NewEngine(PreferLatest, nil).ReconcileGame(g, card).Clock)
}

func TestMatchAndReconcileAll(t *testing.T) {
	engine := NewEngine(SmartMerge, nil)
	games := []espn.Game{
		espnGame(simulation.StatusInProgress, 1, "3:00", 20, 18),
		{ID: "2", Home: espn.TeamMeta{Abbreviation: "MIA"}, Away: espn.TeamMeta{Abbreviation: "NYK"}},
	}
	cards := []google.LiveGame{
		{HomeTeam: "PHO", AwayTeam: "GSW", HomeScore: 10, AwayScore: 8, Period: 1, TimeRemaining: "7:00", IsLive: true},
		{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 22, AwayScore: 18, Period: 1, TimeRemaining: "2:31", IsLive: true},
	}

	out := MatchAndReconcileAll(games, cards, engine)
	require.Len(t, out, 3)
	assert.Equal(t, "2:31", out[0].Clock)
	assert.Equal(t, "2", out[1].ID)
	assert.Equal(t, "PHX", out[2].Home.Abbreviation)
	assert.Equal(t, simulation.StatusInProgress, out[2].Status)

	assert.Equal(t, 1, FindMatchingGoogleGame(games[0], cards))
	assert.Equal(t, -1, FindMatchingGoogleGame(games[1], cards))
	assert.Equal(t, 2, engine.GetMetrics().TotalReconciliations)

	engine.ResetMetrics()
	assert.Equal(t, Metrics{}, engine.GetMetrics())
}
