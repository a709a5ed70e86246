package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/fortuna/pythia/internal/common/clock/mocks"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/ingest/mocks"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/simulation"
)

type LiveIngesterTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockFeed    *mocks.MockScoreFeed
	mockScraper *mocks.MockLiveScraper
	mockClock   *clockmocks.MockClock
	ctx         context.Context
	day         time.Time
	players     []simulation.PlayerRef
}

func (s *LiveIngesterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockFeed = mocks.NewMockScoreFeed(s.ctrl)
	s.mockScraper = mocks.NewMockLiveScraper(s.ctrl)
	s.mockClock = clockmocks.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.day = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	s.players = []simulation.PlayerRef{
		{PlayerID: "f1", StatsID: "100", ProTeam: "LAL"},
		{PlayerID: "f2", ProTeam: "NYK"},
		{PlayerID: "f3", ProTeam: "CHI"},
	}
}

func (s *LiveIngesterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LiveIngesterTestSuite) ingester(withScraper bool) *ingest.LiveIngester {
	cfg := ingest.LiveIngesterConfig{
		Feed:    s.mockFeed,
		Weights: scoring.DefaultWeights(),
		Clock:   s.mockClock,
	}
	if withScraper {
		cfg.Scraper = s.mockScraper
	}
	return ingest.NewLiveIngester(cfg, nil)
}

func (s *LiveIngesterTestSuite) slate() []espn.Game {
	return []espn.Game{
		{
			ID:        "g1",
			Home:      espn.TeamMeta{Abbreviation: "LAL"},
			Away:      espn.TeamMeta{Abbreviation: "BOS"},
			HomeScore: 50,
			AwayScore: 48,
			Status:    simulation.StatusInProgress,
			Period:    2,
			Clock:     "6:00",
		},
		{
			ID:     "g2",
			Home:   espn.TeamMeta{Abbreviation: "NYK"},
			Away:   espn.TeamMeta{Abbreviation: "MIA"},
			Status: simulation.StatusScheduled,
		},
	}
}

func (s *LiveIngesterTestSuite) TestSnapshotJoinsStartedGames() {
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)
	s.mockFeed.EXPECT().BoxLines(s.ctx, "g1").Return([]simulation.BoxLine{
		{GameID: "g1", PlayerID: "100", Team: "LAL", Stats: scoring.StatLine{Points: 20, Rebounds: 5}},
	}, nil)

	live, err := s.ingester(false).Snapshot(s.ctx, s.day, s.players)
	s.Require().NoError(err)
	s.Equal(2, live.Games)
	s.False(live.Final)

	snap := live.Snapshot
	s.Equal(simulation.LiveState{HasGameToday: true, FractionDone: 0.375, PointsSoFar: 25}, snap["f1"])
	s.Equal(simulation.LiveState{HasGameToday: true}, snap["f2"])
	s.Equal(simulation.LiveState{}, snap["f3"])
}

func (s *LiveIngesterTestSuite) TestSnapshotSurvivesMissingBoxScore() {
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)
	s.mockFeed.EXPECT().BoxLines(s.ctx, "g1").Return(nil, errors.New("timeout"))

	live, err := s.ingester(false).Snapshot(s.ctx, s.day, s.players)
	s.Require().NoError(err)

	s.True(live.Snapshot["f1"].HasGameToday)
	s.Equal(0.0, live.Snapshot["f1"].PointsSoFar)
}

func (s *LiveIngesterTestSuite) TestSnapshotFailsWithoutScoreboard() {
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(nil, errors.New("down"))

	_, err := s.ingester(false).Snapshot(s.ctx, s.day, s.players)
	s.Error(err)
}

func (s *LiveIngesterTestSuite) TestGoogleRefreshesLiveGamesToday() {
	s.mockClock.EXPECT().Now().Return(s.day.Add(20 * time.Hour)).AnyTimes()
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)
	s.mockScraper.EXPECT().LiveGames(s.ctx).Return([]google.LiveGame{
		{HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 60, AwayScore: 58, Period: 3, TimeRemaining: "0:00", IsLive: true},
	}, nil)

	games, err := s.ingester(true).Games(s.ctx, s.day)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(3, games[0].Period)
	s.Equal("0:00", games[0].Clock)
	s.Equal(60, games[0].HomeScore)
}

func (s *LiveIngesterTestSuite) TestGoogleStandsInWhenESPNIsDown() {
	s.mockClock.EXPECT().Now().Return(s.day).AnyTimes()
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(nil, errors.New("503"))
	s.mockScraper.EXPECT().LiveGames(s.ctx).Return([]google.LiveGame{
		{HomeTeam: "LAL", AwayTeam: "BOS", Period: 4, TimeRemaining: "6:00", IsLive: true},
	}, nil)

	live, err := s.ingester(true).Snapshot(s.ctx, s.day, s.players)
	s.Require().NoError(err)

	s.Equal(simulation.LiveState{HasGameToday: true, FractionDone: 0.875}, live.Snapshot["f1"])
	s.False(live.Snapshot["f2"].HasGameToday)
}

func (s *LiveIngesterTestSuite) TestGoogleFailureKeepsESPN() {
	s.mockClock.EXPECT().Now().Return(s.day).AnyTimes()
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)
	s.mockScraper.EXPECT().LiveGames(s.ctx).Return(nil, errors.New("blocked"))

	games, err := s.ingester(true).Games(s.ctx, s.day)
	s.Require().NoError(err)
	s.Equal(s.slate(), games)
}

func (s *LiveIngesterTestSuite) TestGoogleNotUsedForOtherDays() {
	s.mockClock.EXPECT().Now().Return(s.day.AddDate(0, 0, 1)).AnyTimes()
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)

	games, err := s.ingester(true).Games(s.ctx, s.day)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *LiveIngesterTestSuite) TestFinalSlate() {
	games := s.slate()
	for i := range games {
		games[i].Status = simulation.StatusFinal
	}
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(games, nil)
	s.mockFeed.EXPECT().BoxLines(s.ctx, gomock.Any()).Return(nil, nil).Times(2)

	live, err := s.ingester(false).Snapshot(s.ctx, s.day, s.players)
	s.Require().NoError(err)
	s.True(live.Final)
	s.Equal(1.0, live.Snapshot["f2"].FractionDone)
}

func (s *LiveIngesterTestSuite) TestEmptySlateIsNotFinal() {
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(nil, nil)

	live, err := s.ingester(false).Snapshot(s.ctx, s.day, s.players)
	s.Require().NoError(err)
	s.False(live.Final)
	s.False(live.Snapshot["f1"].HasGameToday)
}

func (s *LiveIngesterTestSuite) TestTeamsPlaying() {
	s.mockFeed.EXPECT().Games(s.ctx, s.day).Return(s.slate(), nil)

	teams, err := s.ingester(false).TeamsPlaying(s.ctx, s.day)
	s.Require().NoError(err)
	s.Equal(map[string]bool{"LAL": true, "BOS": true, "NYK": true, "MIA": true}, teams)
}

func TestLiveIngesterSuite(t *testing.T) {
	suite.Run(t, new(LiveIngesterTestSuite))
}
