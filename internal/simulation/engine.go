package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/logger"
)

// EngineConfig tunes the trial loop.
type EngineConfig struct {
	// Workers running trials in parallel. Zero means one per CPU.
	Workers int
	// Seed fixes the random streams. Zero seeds from the clock.
	Seed int64
	// Sampler overrides SampleFinalScore.
	Sampler Sampler
}

// Engine runs Monte Carlo matchups between two fantasy teams.
type Engine struct {
	workers int
	seed    int64
	sample  Sampler
	log     *logrus.Entry
}

// NewEngine creates an engine. A nil log discards output.
func NewEngine(cfg EngineConfig, log *logrus.Entry) *Engine {
	sample := cfg.Sampler
	if sample == nil {
		sample = SampleFinalScore
	}
	return &Engine{
		workers: cfg.Workers,
		seed:    cfg.Seed,
		sample:  sample,
		log:     logger.OrDiscard(log),
	}
}

// MatchupRequest asks for a single-day matchup.
type MatchupRequest struct {
	TeamA  string
	TeamB  string
	Day    time.Time
	Trials int
	// Points already banked by each side, added to every trial.
	BaseA float64
	BaseB float64
}

// WeekRequest asks for a matchup over an ordered range of days.
type WeekRequest struct {
	TeamA  string
	TeamB  string
	Days   []time.Time
	Trials int
	BaseA  float64
	BaseB  float64
}

// slate is the precomputed active entries of both sides for one day.
type slate struct {
	a, b []PlayerEntry
}

type tally struct {
	winsA, winsB, ties int
	sumA, sumB         float64
	daySumA, daySumB   []float64
}

// Simulate runs trials over already resolved entries.
func (e *Engine) Simulate(a, b []PlayerEntry, trials int, baseA, baseB float64) (*MatchupResult, error) {
	if trials <= 0 {
		return nil, ErrInvalidTrialCount
	}
	res, _ := e.run([]slate{{a: a, b: b}}, trials, baseA, baseB)
	return res, nil
}

// RunMatchup resolves both rosters for req.Day and simulates the day.
func (e *Engine) RunMatchup(ctx context.Context, sess Session, req MatchupRequest) (*MatchupResult, error) {
	if req.Trials <= 0 {
		return nil, ErrInvalidTrialCount
	}

	day, err := e.resolveDay(ctx, sess, req.TeamA, req.TeamB, req.Day)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, _ := e.run([]slate{day}, req.Trials, req.BaseA, req.BaseB)
	res.TeamA, res.TeamB = req.TeamA, req.TeamB

	e.log.WithFields(logrus.Fields{
		"team_a":   req.TeamA,
		"team_b":   req.TeamB,
		"day":      DayKey(req.Day),
		"trials":   req.Trials,
		"p_team_a": res.PTeamA,
		"elapsed":  time.Since(start).String(),
	}).Debug("matchup simulated")

	return res, nil
}

// RunWeek simulates every day in req.Days and sums them per trial. Active
// entries are resolved once per day before any trial runs.
func (e *Engine) RunWeek(ctx context.Context, sess Session, req WeekRequest) (*WeeklyResult, error) {
	if req.Trials <= 0 {
		return nil, ErrInvalidTrialCount
	}
	if len(req.Days) == 0 {
		return nil, ErrEmptyDayRange
	}

	days := make([]slate, 0, len(req.Days))
	for _, d := range req.Days {
		s, err := e.resolveDay(ctx, sess, req.TeamA, req.TeamB, d)
		if err != nil {
			return nil, err
		}
		days = append(days, s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, t := e.run(days, req.Trials, req.BaseA, req.BaseB)
	res.TeamA, res.TeamB = req.TeamA, req.TeamB

	week := &WeeklyResult{
		MatchupResult: *res,
		Days:          make([]DayProjection, len(req.Days)),
	}
	n := float64(req.Trials)
	for i, d := range req.Days {
		week.Days[i] = DayProjection{
			Date:     DayKey(d),
			AvgTeamA: t.daySumA[i] / n,
			AvgTeamB: t.daySumB[i] / n,
			ActiveA:  len(days[i].a),
			ActiveB:  len(days[i].b),
		}
	}

	e.log.WithFields(logrus.Fields{
		"team_a":   req.TeamA,
		"team_b":   req.TeamB,
		"days":     len(req.Days),
		"trials":   req.Trials,
		"p_team_a": res.PTeamA,
		"elapsed":  time.Since(start).String(),
	}).Debug("week simulated")

	return week, nil
}

func (e *Engine) resolveDay(ctx context.Context, sess Session, teamA, teamB string, day time.Time) (slate, error) {
	a, err := e.entries(ctx, sess, teamA, day)
	if err != nil {
		return slate{}, err
	}
	b, err := e.entries(ctx, sess, teamB, day)
	if err != nil {
		return slate{}, err
	}
	return slate{a: a, b: b}, nil
}

// entries resolves a team's active players into sampler inputs. A day
// without any snapshot treats everyone as not yet started; once a snapshot
// exists, players missing from it have no game.
func (e *Engine) entries(ctx context.Context, sess Session, teamID string, day time.Time) ([]PlayerEntry, error) {
	if sess.Roster == nil {
		return nil, errors.New("session has no roster source")
	}

	ids, err := sess.Roster.ActiveRoster(ctx, teamID, day)
	if err != nil {
		return nil, fmt.Errorf("active roster for %s on %s: %w", teamID, DayKey(day), err)
	}

	var snap LiveSnapshot
	hasSnap := false
	if sess.Live != nil {
		snap, hasSnap = sess.Live.Snapshot(day)
	}

	out := make([]PlayerEntry, 0, len(ids))
	for _, id := range ids {
		entry := PlayerEntry{PlayerID: id}

		if hasSnap {
			if st, ok := snap[id]; ok {
				state := st
				entry.State = &state
			}
		} else {
			entry.State = &LiveState{HasGameToday: true}
		}

		if sess.History != nil {
			if pop, ok := sess.History.Population(id); ok && len(pop) > 0 {
				entry.Population = pop
			}
		}
		if entry.Population == nil && entry.State != nil && entry.State.HasGameToday && entry.State.FractionDone < 1 {
			e.log.WithFields(logrus.Fields{
				"team":      teamID,
				"player_id": id,
				"day":       DayKey(day),
			}).Debug(ErrMissingHistory.Error())
		}

		out = append(out, entry)
	}
	return out, nil
}

// run splits trials across workers, each with its own random stream.
// Worker i always gets the same share and seed, so a fixed seed and
// worker count reproduce a run exactly.
func (e *Engine) run(days []slate, trials int, baseA, baseB float64) (*MatchupResult, *tally) {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	seed := e.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	totalsA := make([]float64, trials)
	totalsB := make([]float64, trials)
	partials := make([]*tally, workers)

	var wg sync.WaitGroup
	share, rem := trials/workers, trials%workers
	offset := 0
	for w := 0; w < workers; w++ {
		n := share
		if w < rem {
			n++
		}
		from, to := offset, offset+n
		offset = to

		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			partials[w] = e.trialWorker(days, baseA, baseB, totalsA[from:to], totalsB[from:to], rng)
		}(w, from, to)
	}
	wg.Wait()

	t := &tally{
		daySumA: make([]float64, len(days)),
		daySumB: make([]float64, len(days)),
	}
	for _, p := range partials {
		t.winsA += p.winsA
		t.winsB += p.winsB
		t.ties += p.ties
		t.sumA += p.sumA
		t.sumB += p.sumB
		for d := range days {
			t.daySumA[d] += p.daySumA[d]
			t.daySumB[d] += p.daySumB[d]
		}
	}

	n := float64(trials)
	res := &MatchupResult{
		Trials:    trials,
		TeamAWins: t.winsA,
		TeamBWins: t.winsB,
		Ties:      t.ties,
		PTeamA:    float64(t.winsA) / n,
		PTeamB:    float64(t.winsB) / n,
		PTie:      float64(t.ties) / n,
		AvgTeamA:  t.sumA / n,
		AvgTeamB:  t.sumB / n,
		BaselineA: baseA,
		BaselineB: baseB,
		SpreadA:   summarize(totalsA),
		SpreadB:   summarize(totalsB),
	}
	return res, t
}

// trialWorker fills totalsA and totalsB, one slot per trial.
func (e *Engine) trialWorker(days []slate, baseA, baseB float64, totalsA, totalsB []float64, rng *rand.Rand) *tally {
	t := &tally{
		daySumA: make([]float64, len(days)),
		daySumB: make([]float64, len(days)),
	}

	for i := range totalsA {
		a, b := baseA, baseB
		for d := range days {
			da := SampleTeamScore(days[d].a, e.sample, rng)
			db := SampleTeamScore(days[d].b, e.sample, rng)
			t.daySumA[d] += da
			t.daySumB[d] += db
			a += da
			b += db
		}

		totalsA[i], totalsB[i] = a, b
		t.sumA += a
		t.sumB += b

		switch {
		case a > b:
			t.winsA++
		case b > a:
			t.winsB++
		default:
			t.ties++
		}
	}
	return t
}
