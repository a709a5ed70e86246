package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pythia/internal/scoring"
)

func TestBuildLiveSnapshot(t *testing.T) {
	games := []GameProgress{
		{GameID: "g1", HomeTeam: "LAL", AwayTeam: "BOS", Status: StatusInProgress, Period: 2, Clock: "6:00"},
		{GameID: "g2", HomeTeam: "MIA", AwayTeam: "nyk", Status: StatusFinal, Period: 4, Clock: "0:00"},
	}
	lines := []BoxLine{
		{GameID: "g1", PlayerID: "1966", Team: "LAL", Stats: scoring.StatLine{Points: 12, FieldGoalsMade: 5, Rebounds: 3}},
		{GameID: "g2", PlayerID: "mia-1", Team: "MIA", Stats: scoring.StatLine{Points: 10, Rebounds: 10}},
		{GameID: "other", PlayerID: "bos-1", Team: "BOS", Stats: scoring.StatLine{Points: 30}},
	}
	players := []PlayerRef{
		{PlayerID: "f-lal", StatsID: "1966", ProTeam: "LAL"},
		{PlayerID: "bos-1", ProTeam: "BOS"},
		{PlayerID: "mia-1", ProTeam: "MIA"},
		{PlayerID: "nyk-1", ProTeam: "NYK"},
		{PlayerID: "gsw-1", ProTeam: "GSW"},
	}

	snap := BuildLiveSnapshot(games, lines, players, scoring.DefaultWeights())
	require.Len(t, snap, 5)

	lal := snap["f-lal"]
	assert.True(t, lal.HasGameToday)
	assert.InDelta(t, 18.0/48.0, lal.FractionDone, 1e-9)
	assert.Equal(t, 12.0+10.0+3.0, lal.PointsSoFar)

	// box line belongs to a different game
	assert.Equal(t, LiveState{HasGameToday: true, FractionDone: 18.0 / 48.0}, snap["bos-1"])

	assert.Equal(t, LiveState{HasGameToday: true, FractionDone: 1, PointsSoFar: 25}, snap["mia-1"])
	assert.Equal(t, LiveState{HasGameToday: true, FractionDone: 1}, snap["nyk-1"])
	assert.Equal(t, LiveState{}, snap["gsw-1"])
}

func TestLiveBook(t *testing.T) {
	day := time.Date(2025, 11, 3, 19, 30, 0, 0, time.UTC)
	book := LiveBook{"2025-11-03": LiveSnapshot{"p1": {HasGameToday: true}}}

	snap, ok := book.Snapshot(day)
	require.True(t, ok)
	assert.True(t, snap["p1"].HasGameToday)

	_, ok = book.Snapshot(day.AddDate(0, 0, 1))
	assert.False(t, ok)
}
