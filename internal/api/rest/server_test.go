package rest_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fortuna/pythia/internal/api/rest"
	"github.com/fortuna/pythia/internal/api/rest/mocks"
	"github.com/fortuna/pythia/internal/backfill"
	"github.com/fortuna/pythia/internal/service"
	"github.com/fortuna/pythia/internal/simulation"
	"github.com/fortuna/pythia/internal/store"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	odds     *mocks.MockOddsProvider
	runs     *mocks.MockRunLister
	db       *mocks.MockHealthChecker
	backfill *mocks.MockBackfillService
	handler  http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.odds = mocks.NewMockOddsProvider(s.ctrl)
	s.runs = mocks.NewMockRunLister(s.ctrl)
	s.db = mocks.NewMockHealthChecker(s.ctrl)
	s.backfill = mocks.NewMockBackfillService(s.ctrl)

	s.handler = rest.NewServer("0", rest.Dependencies{
		Odds:     s.odds,
		Runs:     s.runs,
		Backfill: s.backfill,
		Checks:   map[string]rest.HealthChecker{"database": s.db},
	}, nil).Handler()
}

func (s *ServerTestSuite) do(method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	return rec, payload
}

func (s *ServerTestSuite) TestHealthy() {
	s.db.EXPECT().HealthCheck(gomock.Any()).Return(nil)

	rec, payload := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", payload["status"])
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerTestSuite) TestDegraded() {
	s.db.EXPECT().HealthCheck(gomock.Any()).Return(errors.New("connection refused"))

	rec, payload := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("degraded", payload["status"])
	s.Equal(map[string]interface{}{"database": "unhealthy"}, payload["dependencies"])
}

func (s *ServerTestSuite) TestTodayUsesDefaultTrials() {
	s.odds.EXPECT().Today(gomock.Any(), 0).Return(&service.TodayOdds{
		RunID:  "run-1",
		Date:   "2025-01-15",
		Trials: 20000,
		Matchups: []simulation.MatchupResult{
			{TeamA: "1", TeamB: "2", Trials: 20000, PTeamA: 0.6, PTeamB: 0.4},
		},
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/today", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("run-1", payload["run_id"])
	s.Len(payload["matchups"], 1)
}

func (s *ServerTestSuite) TestTodayZeroTrialsMeansDefault() {
	s.odds.EXPECT().Today(gomock.Any(), 0).Return(&service.TodayOdds{RunID: "run-0", Trials: 20000}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/today?trials=0", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(20000.0, payload["trials"])
}

func (s *ServerTestSuite) TestTodayRejectsBadTrials() {
	for _, trials := range []string{"abc", "-5", "1.5"} {
		rec, payload := s.do(http.MethodGet, "/api/v1/odds/today?trials="+trials, "")
		s.Equal(http.StatusBadRequest, rec.Code, trials)
		s.Contains(payload["details"], "trial count must be positive")
	}
}

func (s *ServerTestSuite) TestTodayMapsServiceErrors() {
	s.odds.EXPECT().Today(gomock.Any(), 500000).
		Return(nil, fmt.Errorf("%w: 500000 exceeds 200000", simulation.ErrInvalidTrialCount))

	rec, _ := s.do(http.MethodGet, "/api/v1/odds/today?trials=500000", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	s.odds.EXPECT().Today(gomock.Any(), 100).Return(nil, errors.New("history unavailable"))

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/today?trials=100", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("history unavailable", payload["details"])
}

func (s *ServerTestSuite) TestCustomOdds() {
	s.odds.EXPECT().Custom(gomock.Any(), "Splash", "Bench", 5000).Return(&service.CustomOdds{
		MatchupResult: simulation.MatchupResult{TeamA: "1", TeamB: "2", Trials: 5000, PTeamA: 0.7, PTeamB: 0.3},
		Date:          "2025-01-15",
		TeamAName:     "Splash",
		TeamBName:     "Bench",
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/custom?team1=Splash&team2=Bench&trials=5000", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("1", payload["team_a"])
	s.Equal("Splash", payload["team_a_name"])
	s.InDelta(0.7, payload["p_team_a"], 1e-9)
}

func (s *ServerTestSuite) TestCustomUnknownTeamIsNotFound() {
	s.odds.EXPECT().Custom(gomock.Any(), "Nobody", "Bench", 0).
		Return(nil, fmt.Errorf("%w: Nobody", simulation.ErrUnknownTeam))

	rec, _ := s.do(http.MethodGet, "/api/v1/odds/custom?team1=Nobody&team2=Bench", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestCustomRequiresBothTeams() {
	rec, payload := s.do(http.MethodGet, "/api/v1/odds/custom?team1=Splash", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("team1 and team2 are required", payload["error"])
}

func (s *ServerTestSuite) TestWeekOdds() {
	s.odds.EXPECT().Week(gomock.Any(), "1", "2", 0).Return(&service.WeekOdds{
		WeeklyResult: simulation.WeeklyResult{
			MatchupResult: simulation.MatchupResult{TeamA: "1", TeamB: "2", BaselineA: 110, BaselineB: 95},
		},
		WeekStart: "2025-01-13",
		WeekEnd:   "2025-01-19",
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/week?team1=1&team2=2", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("2025-01-19", payload["week_end"])
	s.InDelta(110.0, payload["baseline_team_a"], 1e-9)
}

func (s *ServerTestSuite) TestRecentRuns() {
	s.runs.EXPECT().Recent(gomock.Any(), 5).Return([]store.OddsRun{
		{RunID: "run-1", Kind: service.KindToday, TeamA: "1", TeamB: "2", Trials: 100},
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/odds/runs?limit=5", "")
	s.Equal(http.StatusOK, rec.Code)
	s.EqualValues(1, payload["count"])
}

func (s *ServerTestSuite) TestBackfillEnqueue() {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	s.backfill.EXPECT().Enqueue(gomock.Any(), backfill.Request{StartDate: &start, EndDate: &end}).
		Return(&backfill.Job{JobID: "job-1", JobType: backfill.JobTypeDateRange, Status: backfill.JobStatusQueued, ProgressTotal: 3}, nil)

	rec, payload := s.do(http.MethodPost, "/api/v1/history/backfill", `{"start_date":"2025-01-10","end_date":"2025-01-12"}`)
	s.Equal(http.StatusAccepted, rec.Code)
	job := payload["job"].(map[string]interface{})
	s.Equal("job-1", job["job_id"])
	s.EqualValues(3, job["days_total"])
	s.EqualValues(3, job["days_remaining"])
	s.EqualValues(0, job["days_processed"])
}

func (s *ServerTestSuite) TestBackfillRejectsBadDate() {
	rec, payload := s.do(http.MethodPost, "/api/v1/history/backfill", `{"start_date":"01/10/2025","end_date":"2025-01-12"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(payload["details"], "start_date")
}

func (s *ServerTestSuite) TestBackfillStatusIdle() {
	s.backfill.EXPECT().GetStatus(gomock.Any()).Return(&backfill.StatusSummary{
		History: []*backfill.Job{{JobID: "job-1", Status: backfill.JobStatusCompleted, RowsAdded: 40}},
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/history/backfill/status", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("idle", payload["status"])
	s.Empty(payload["days"])
	history := payload["history"].([]interface{})
	s.Require().Len(history, 1)
	s.EqualValues(40, history[0].(map[string]interface{})["rows_added"])
}

func (s *ServerTestSuite) TestBackfillStatusReportsDays() {
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	active := &backfill.Job{
		JobID:           "job-2",
		JobType:         backfill.JobTypeDateRange,
		Status:          backfill.JobStatusRunning,
		StatusMessage:   sql.NullString{String: "Processing Jan 13, 2025 (4/4)", Valid: true},
		StartDate:       sql.NullTime{Time: from, Valid: true},
		ProgressCurrent: 3,
		ProgressTotal:   4,
		RowsAdded:       25,
	}
	s.backfill.EXPECT().GetStatus(gomock.Any()).Return(&backfill.StatusSummary{
		ActiveJob: active,
		History:   []*backfill.Job{active},
		DaysJobID: "job-2",
		Days: []backfill.DayResult{
			{Date: from.AddDate(0, 0, 2), RowsAdded: 0, Failed: true},
			{Date: from.AddDate(0, 0, 1), RowsAdded: 14},
			{Date: from, RowsAdded: 11},
		},
	}, nil)

	rec, payload := s.do(http.MethodGet, "/api/v1/history/backfill/status", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("running", payload["status"])
	s.Equal("Processing Jan 13, 2025 (4/4)", payload["message"])
	s.Equal("job-2", payload["days_job_id"])

	job := payload["active_job"].(map[string]interface{})
	s.EqualValues(3, job["days_processed"])
	s.EqualValues(1, job["days_remaining"])
	s.EqualValues(75, job["percent_complete"])
	s.EqualValues(8.3, job["rows_per_day"])
	s.Equal("2025-01-10", job["start_date"])

	days := payload["days"].([]interface{})
	s.Require().Len(days, 3)
	first := days[0].(map[string]interface{})
	s.Equal("2025-01-12", first["date"])
	s.Equal(true, first["failed"])
	last := days[2].(map[string]interface{})
	s.EqualValues(11, last["rows_added"])
	s.NotContains(last, "failed")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
