package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/mocks"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/simulation"
)

func finalGame(id, home, away string) espn.Game {
	return espn.Game{
		ID:     id,
		Home:   espn.TeamMeta{Abbreviation: home},
		Away:   espn.TeamMeta{Abbreviation: away},
		Status: simulation.StatusFinal,
	}
}

func TestHistoryUpdaterRecordsFinalGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockScoreFeed(ctrl)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	live := espn.Game{ID: "g3", Home: espn.TeamMeta{Abbreviation: "CHI"}, Away: espn.TeamMeta{Abbreviation: "DET"}, Status: simulation.StatusInProgress}
	feed.EXPECT().Games(ctx, day).Return([]espn.Game{finalGame("g1", "LAL", "BOS"), live}, nil)
	feed.EXPECT().BoxLines(ctx, "g1").Return([]simulation.BoxLine{
		{GameID: "g1", PlayerID: "100", Team: "LAL", Stats: scoring.StatLine{Points: 30, Assists: 5}},
		{GameID: "g1", PlayerID: "999", Team: "BOS", Stats: scoring.StatLine{Points: 10}},
	}, nil)

	doc := history.Document{}
	updater := ingest.NewHistoryUpdater(feed, doc, scoring.DefaultWeights(), nil)
	players := []simulation.PlayerRef{{PlayerID: "f1", StatsID: "100", ProTeam: "LAL"}}

	added, err := updater.IngestDay(ctx, day, players)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	require.Len(t, doc["f1"].History, 1)
	game := doc["f1"].History[0]
	assert.Equal(t, "2025-01-15", game.Date)
	assert.Equal(t, "BOS", game.Opponent)
	assert.Equal(t, "g1", game.GameID)
	assert.Equal(t, 40.0, *game.FantasyPoints)

	// a second run adds nothing
	feed.EXPECT().Games(ctx, day).Return([]espn.Game{finalGame("g1", "LAL", "BOS")}, nil)
	feed.EXPECT().BoxLines(ctx, "g1").Return([]simulation.BoxLine{
		{GameID: "g1", PlayerID: "100", Team: "LAL", Stats: scoring.StatLine{Points: 30, Assists: 5}},
	}, nil)
	added, err = updater.IngestDay(ctx, day, players)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestHistoryUpdaterContinuesPastBrokenBoxScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockScoreFeed(ctrl)
	writer := mocks.NewMockHistoryWriter(ctrl)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	feed.EXPECT().Games(ctx, day).Return([]espn.Game{finalGame("g1", "LAL", "BOS"), finalGame("g2", "NYK", "MIA")}, nil)
	feed.EXPECT().BoxLines(ctx, "g1").Return(nil, errors.New("bad gateway"))
	feed.EXPECT().BoxLines(ctx, "g2").Return([]simulation.BoxLine{
		{GameID: "g2", PlayerID: "f2", Team: "MIA", Stats: scoring.StatLine{Points: 12}},
	}, nil)
	writer.EXPECT().AppendGames(ctx, "f2", gomock.Len(1)).Return(1, nil)

	updater := ingest.NewHistoryUpdater(feed, writer, scoring.DefaultWeights(), nil)
	added, err := updater.IngestDay(ctx, day, []simulation.PlayerRef{{PlayerID: "f2", ProTeam: "MIA"}})

	assert.Equal(t, 1, added)
	assert.ErrorContains(t, err, "bad gateway")
}

func TestHistoryUpdaterSurfacesScoreboardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockScoreFeed(ctrl)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	feed.EXPECT().Games(ctx, day).Return(nil, errors.New("down"))

	updater := ingest.NewHistoryUpdater(feed, history.Document{}, scoring.DefaultWeights(), nil)
	_, err := updater.IngestDay(ctx, day, nil)
	assert.Error(t, err)
}
