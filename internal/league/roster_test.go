package league_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/league/mocks"
	"github.com/fortuna/pythia/internal/simulation"
)

type RosterTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSchedule *mocks.MockSchedule
	roster       *league.Roster
	ctx          context.Context
	day          time.Time
}

func (s *RosterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSchedule = mocks.NewMockSchedule(s.mockCtrl)
	s.ctx = context.Background()
	s.day = time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	s.roster = league.NewRoster([]league.Team{
		{
			ID:   "3",
			Name: "Dunk Tank",
			Entries: []league.RosterEntry{
				{PlayerID: "p1", ProTeam: "PHO", LineupSlot: "PG"},
				{PlayerID: "p2", ProTeam: "BOS", LineupSlot: "BE"},
				{PlayerID: "p3", ProTeam: "BOS", LineupSlot: "IR"},
				{PlayerID: "p4", ProTeam: "LAL", LineupSlot: "UTIL", Injured: true},
				{PlayerID: "p5", ProTeam: "MIA", LineupSlot: "C"},
				{PlayerID: "p6", ProTeam: "GS", LineupSlot: "SF", StatsID: "3975"},
			},
		},
		{ID: "7", Name: "Bench Mob"},
	}, s.mockSchedule)
}

func (s *RosterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RosterTestSuite) TestActiveRosterFilters() {
	s.mockSchedule.EXPECT().TeamsPlaying(gomock.Any(), s.day).
		Return(map[string]bool{"PHX": true, "BOS": true, "LAL": true, "GS": true, "MIA": false}, nil)

	ids, err := s.roster.ActiveRoster(s.ctx, "3", s.day)
	s.Require().NoError(err)
	s.Equal([]string{"p1", "p6"}, ids)
}

func (s *RosterTestSuite) TestScheduleLookedUpOncePerDay() {
	s.mockSchedule.EXPECT().TeamsPlaying(gomock.Any(), s.day).Return(map[string]bool{"MIA": true}, nil).Times(1)

	for i := 0; i < 3; i++ {
		ids, err := s.roster.ActiveRoster(s.ctx, "Dunk Tank", s.day)
		s.Require().NoError(err)
		s.Equal([]string{"p5"}, ids)
	}
}

func (s *RosterTestSuite) TestEmptyTeamHasNoActivePlayers() {
	s.mockSchedule.EXPECT().TeamsPlaying(gomock.Any(), s.day).Return(map[string]bool{"MIA": true}, nil)

	ids, err := s.roster.ActiveRoster(s.ctx, "bench mob", s.day)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *RosterTestSuite) TestUnknownTeam() {
	_, err := s.roster.ActiveRoster(s.ctx, "nobody", s.day)
	s.ErrorIs(err, simulation.ErrUnknownTeam)
}

func (s *RosterTestSuite) TestScheduleFailurePropagates() {
	boom := errors.New("schedule unavailable")
	s.mockSchedule.EXPECT().TeamsPlaying(gomock.Any(), s.day).Return(nil, boom)

	_, err := s.roster.ActiveRoster(s.ctx, "3", s.day)
	s.ErrorIs(err, boom)
}

func (s *RosterTestSuite) TestPlayers() {
	refs := s.roster.Players()
	s.Require().Len(refs, 6)
	s.Equal(simulation.PlayerRef{PlayerID: "p1", ProTeam: "PHX"}, refs[0])
	s.Equal(simulation.PlayerRef{PlayerID: "p6", StatsID: "3975", ProTeam: "GSW"}, refs[5])
}

func (s *RosterTestSuite) TestTeamsOrdered() {
	teams := s.roster.Teams()
	s.Require().Len(teams, 2)
	s.Equal("3", teams[0].ID)
	s.Equal("7", teams[1].ID)
}

func TestRosterTestSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func TestLoadTeams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosters.json")
	body := `[{"id":"1","name":"Alpha","roster":[{"player_id":"42","name":"A Guy","pro_team":"NO","lineup_slot":"PG","injured":false}]}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	teams, err := league.LoadTeams(path)
	if err != nil {
		t.Fatal(err)
	}
	roster := league.NewRoster(teams, league.StaticSchedule{"2025-11-05": {"NOP"}})

	ids, err := roster.ActiveRoster(context.Background(), "Alpha", time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "42" {
		t.Fatalf("expected [42], got %v", ids)
	}
}
