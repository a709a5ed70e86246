package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/common/clock"
	"github.com/fortuna/pythia/internal/common/uuid"
	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/simulation"
	"github.com/fortuna/pythia/internal/store"
)

// finalOddsTTL keeps settled projections around for two days.
const finalOddsTTL = 48 * time.Hour

// Config wires an OddsService. Live, Cache, Runs and Publishers are optional.
type Config struct {
	Engine     *simulation.Engine
	Teams      TeamStore
	Matchups   MatchupStore
	History    HistorySource
	Schedule   league.Schedule
	Live       LiveSource
	Cache      ResultCache
	Runs       RunRecorder
	Publishers []Publisher

	Clock    clock.Clock
	UUID     uuid.UUID
	Location *time.Location

	DefaultTrials int
	MaxTrials     int
}

// OddsService runs live-adjusted matchup projections for the league.
type OddsService struct {
	engine     *simulation.Engine
	teams      TeamStore
	matchups   MatchupStore
	history    HistorySource
	schedule   league.Schedule
	live       LiveSource
	cache      ResultCache
	runs       RunRecorder
	publishers []Publisher

	clock clock.Clock
	uuid  uuid.UUID
	loc   *time.Location

	defaultTrials int
	maxTrials     int

	log *logrus.Entry
}

// NewOddsService creates an odds service.
func NewOddsService(cfg Config, log *logrus.Entry) *OddsService {
	svc := &OddsService{
		engine:        cfg.Engine,
		teams:         cfg.Teams,
		matchups:      cfg.Matchups,
		history:       cfg.History,
		schedule:      cfg.Schedule,
		live:          cfg.Live,
		cache:         cfg.Cache,
		runs:          cfg.Runs,
		publishers:    cfg.Publishers,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
		loc:           cfg.Location,
		defaultTrials: cfg.DefaultTrials,
		maxTrials:     cfg.MaxTrials,
		log:           logger.OrDiscard(log),
	}
	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.uuid == nil {
		svc.uuid = uuid.New()
	}
	if svc.loc == nil {
		svc.loc = time.UTC
	}
	if svc.defaultTrials <= 0 {
		svc.defaultTrials = 20000
	}
	if svc.maxTrials < svc.defaultTrials {
		svc.maxTrials = svc.defaultTrials
	}
	return svc
}

// Trials resolves a requested trial count. Zero selects the default.
func (s *OddsService) Trials(requested int) (int, error) {
	if requested == 0 {
		return s.defaultTrials, nil
	}
	if requested < 0 || requested > s.maxTrials {
		return 0, fmt.Errorf("%w: %d (allowed 1..%d)", simulation.ErrInvalidTrialCount, requested, s.maxTrials)
	}
	return requested, nil
}

// Today projects every matchup of the current week for the current day. Once
// every game of the day is final the result is cached and served from there.
func (s *OddsService) Today(ctx context.Context, trials int) (*TodayOdds, error) {
	trials, err := s.Trials(trials)
	if err != nil {
		return nil, err
	}
	day := s.today()

	if cached := s.cachedToday(ctx, day); cached != nil {
		return cached, nil
	}

	r, err := s.prepare(ctx, day)
	if err != nil {
		return nil, err
	}

	weekStart, _ := league.WeekBounds(day)
	matchups, err := s.matchups.ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("loading matchups: %w", err)
	}
	if len(matchups) == 0 {
		s.log.WithField("week_start", simulation.DayKey(weekStart)).Warn("No matchups stored for this week")
	}

	runID := s.uuid.NewUUID()
	results := make([]simulation.MatchupResult, 0, len(matchups))
	for _, m := range matchups {
		res, err := s.engine.RunMatchup(ctx, r.sess, simulation.MatchupRequest{
			TeamA:  m.TeamA,
			TeamB:  m.TeamB,
			Day:    day,
			Trials: trials,
			BaseA:  m.ScoreA,
			BaseB:  m.ScoreB,
		})
		if err != nil {
			return nil, fmt.Errorf("matchup %s vs %s: %w", m.TeamA, m.TeamB, err)
		}
		res.RunID = runID
		results = append(results, *res)
	}

	odds := &TodayOdds{
		RunID:       runID,
		Date:        simulation.DayKey(day),
		Trials:      trials,
		Final:       r.live != nil && r.live.Final,
		Teams:       teamNames(r.roster.Teams()),
		Matchups:    results,
		GeneratedAt: s.clock.Now(),
	}

	s.record(ctx, KindToday, runID, results)
	if odds.Final && s.cache != nil {
		if err := s.cache.StoreFinalOdds(ctx, day, results, finalOddsTTL); err != nil {
			s.log.WithError(err).Warn("Failed to cache final odds")
		}
	}

	s.log.WithFields(logrus.Fields{
		"run_id":   runID,
		"date":     odds.Date,
		"matchups": len(results),
		"trials":   trials,
		"final":    odds.Final,
	}).Info("Computed today's odds")

	return odds, nil
}

// Custom projects the current day for any two teams, referenced by id or
// name. Banked points apply only when the two actually meet this week.
func (s *OddsService) Custom(ctx context.Context, teamA, teamB string, trials int) (*CustomOdds, error) {
	trials, err := s.Trials(trials)
	if err != nil {
		return nil, err
	}
	day := s.today()

	r, err := s.prepare(ctx, day)
	if err != nil {
		return nil, err
	}
	a, b, err := resolvePair(r.roster, teamA, teamB)
	if err != nil {
		return nil, err
	}

	weekStart, _ := league.WeekBounds(day)
	baseA, baseB, err := s.banked(ctx, weekStart, a.ID, b.ID)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.RunMatchup(ctx, r.sess, simulation.MatchupRequest{
		TeamA:  a.ID,
		TeamB:  b.ID,
		Day:    day,
		Trials: trials,
		BaseA:  baseA,
		BaseB:  baseB,
	})
	if err != nil {
		return nil, err
	}
	res.RunID = s.uuid.NewUUID()
	s.record(ctx, KindCustom, res.RunID, []simulation.MatchupResult{*res})

	return &CustomOdds{
		MatchupResult: *res,
		Date:          simulation.DayKey(day),
		TeamAName:     a.Name,
		TeamBName:     b.Name,
	}, nil
}

// Week projects the rest of the scoring week, today through Sunday, on top
// of the points each side has banked on earlier days. Without a stored
// matchup there is nothing banked, so the whole week from Monday is drawn.
func (s *OddsService) Week(ctx context.Context, teamA, teamB string, trials int) (*WeekOdds, error) {
	trials, err := s.Trials(trials)
	if err != nil {
		return nil, err
	}
	day := s.today()

	r, err := s.prepare(ctx, day)
	if err != nil {
		return nil, err
	}
	a, b, err := resolvePair(r.roster, teamA, teamB)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := league.WeekBounds(day)
	m, err := s.findMatchup(ctx, weekStart, a.ID, b.ID)
	if err != nil {
		return nil, err
	}

	from := day
	var baseA, baseB float64
	if m != nil {
		baseA, baseB = m.ScoresFor(a.ID)
	} else {
		from = weekStart
		s.log.WithFields(logrus.Fields{
			"team_a":     a.ID,
			"team_b":     b.ID,
			"week_start": simulation.DayKey(weekStart),
		}).Debug("No stored matchup, projecting the full week")
	}

	res, err := s.engine.RunWeek(ctx, r.sess, simulation.WeekRequest{
		TeamA:  a.ID,
		TeamB:  b.ID,
		Days:   league.DaysBetween(from, weekEnd),
		Trials: trials,
		BaseA:  baseA,
		BaseB:  baseB,
	})
	if err != nil {
		return nil, err
	}
	res.RunID = s.uuid.NewUUID()
	s.record(ctx, KindWeek, res.RunID, []simulation.MatchupResult{res.MatchupResult})

	return &WeekOdds{
		WeeklyResult: *res,
		WeekStart:    simulation.DayKey(weekStart),
		WeekEnd:      simulation.DayKey(weekEnd),
		TeamAName:    a.Name,
		TeamBName:    b.Name,
	}, nil
}

// Refresh recomputes today's odds with the default trial count and pushes
// them to every publisher.
func (s *OddsService) Refresh(ctx context.Context) (*TodayOdds, error) {
	odds, err := s.Today(ctx, 0)
	if err != nil {
		return nil, err
	}

	for _, p := range s.publishers {
		if err := p.PublishOdds(ctx, odds); err != nil {
			s.log.WithError(err).Warn("Failed to publish odds update")
		}
	}
	return odds, nil
}

// run is the per-request state every projection starts from.
type run struct {
	day    time.Time
	roster *league.Roster
	sess   simulation.Session
	live   *ingest.LiveDay
}

// prepare loads rosters and history and captures today's live state. When
// live data is unavailable the day runs as if no game had started.
func (s *OddsService) prepare(ctx context.Context, day time.Time) (*run, error) {
	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	roster := league.NewRoster(teams, s.schedule)

	pops, err := s.history.Populations(ctx, history.SeasonString(day))
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	book := simulation.LiveBook{}
	var live *ingest.LiveDay
	if s.live != nil {
		live, err = s.live.Snapshot(ctx, day, roster.Players())
		if err != nil {
			s.log.WithError(err).Warn("Live data unavailable, projecting from history only")
			live = nil
		} else {
			book[simulation.DayKey(day)] = live.Snapshot
		}
	}

	return &run{
		day:    day,
		roster: roster,
		sess: simulation.Session{
			History: history.NewStoreFromPopulations(pops),
			Live:    book,
			Roster:  roster,
		},
		live: live,
	}, nil
}

func (s *OddsService) cachedToday(ctx context.Context, day time.Time) *TodayOdds {
	if s.cache == nil {
		return nil
	}

	results, ok, err := s.cache.FinalOdds(ctx, day)
	if err != nil {
		s.log.WithError(err).Warn("Final odds cache unavailable")
		return nil
	}
	if !ok {
		return nil
	}

	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Loading team names for cached odds")
	}

	odds := &TodayOdds{
		Date:        simulation.DayKey(day),
		Final:       true,
		Cached:      true,
		Teams:       teamNames(teams),
		Matchups:    results,
		GeneratedAt: s.clock.Now(),
	}
	if len(results) > 0 {
		odds.RunID = results[0].RunID
		odds.Trials = results[0].Trials
	}
	return odds
}

func (s *OddsService) findMatchup(ctx context.Context, weekStart time.Time, teamA, teamB string) (*store.Matchup, error) {
	m, err := s.matchups.Find(ctx, weekStart, teamA, teamB)
	if err != nil {
		return nil, fmt.Errorf("loading matchup: %w", err)
	}
	return m, nil
}

func (s *OddsService) banked(ctx context.Context, weekStart time.Time, teamA, teamB string) (float64, float64, error) {
	m, err := s.findMatchup(ctx, weekStart, teamA, teamB)
	if err != nil {
		return 0, 0, err
	}
	if m == nil {
		return 0, 0, nil
	}
	a, b := m.ScoresFor(teamA)
	return a, b, nil
}

func (s *OddsService) record(ctx context.Context, kind, runID string, results []simulation.MatchupResult) {
	if s.runs == nil {
		return
	}
	for _, res := range results {
		payload, err := json.Marshal(res)
		if err != nil {
			s.log.WithError(err).Warn("Encoding odds run")
			continue
		}
		err = s.runs.Save(ctx, store.OddsRun{
			RunID:   runID,
			Kind:    kind,
			TeamA:   res.TeamA,
			TeamB:   res.TeamB,
			Trials:  res.Trials,
			PTeamA:  res.PTeamA,
			PTeamB:  res.PTeamB,
			PTie:    res.PTie,
			Payload: payload,
		})
		if err != nil {
			s.log.WithError(err).WithField("run_id", runID).Warn("Failed to record odds run")
		}
	}
}

func (s *OddsService) today() time.Time {
	return league.Day(s.clock.Now().In(s.loc))
}

func resolvePair(roster *league.Roster, teamA, teamB string) (league.Team, league.Team, error) {
	a, err := roster.Resolve(teamA)
	if err != nil {
		return league.Team{}, league.Team{}, err
	}
	b, err := roster.Resolve(teamB)
	if err != nil {
		return league.Team{}, league.Team{}, err
	}
	return a, b, nil
}

func teamNames(teams []league.Team) map[string]string {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}
