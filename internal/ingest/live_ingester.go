package ingest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/common/clock"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/reconciliation"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/simulation"
)

// scrapedPrefix marks games known only from the Google fallback. They carry
// progress but no box score.
const scrapedPrefix = "google_"

// LiveIngesterConfig wires a LiveIngester.
type LiveIngesterConfig struct {
	Feed ScoreFeed
	// Scraper is optional. When set it refreshes in-progress games of the
	// current day and stands in for the feed when the feed is down.
	Scraper    LiveScraper
	Reconciler *reconciliation.Engine
	Weights    scoring.Weights
	Clock      clock.Clock
}

// LiveIngester builds live snapshots from ESPN, with Google as a live overlay.
type LiveIngester struct {
	feed       ScoreFeed
	scraper    LiveScraper
	reconciler *reconciliation.Engine
	weights    scoring.Weights
	clock      clock.Clock
	log        *logrus.Entry
}

// NewLiveIngester creates a live ingester.
func NewLiveIngester(cfg LiveIngesterConfig, log *logrus.Entry) *LiveIngester {
	log = logger.OrDiscard(log)

	reconciler := cfg.Reconciler
	if reconciler == nil {
		reconciler = reconciliation.NewEngine(reconciliation.SmartMerge, log)
	}
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &LiveIngester{
		feed:       cfg.Feed,
		scraper:    cfg.Scraper,
		reconciler: reconciler,
		weights:    cfg.Weights,
		clock:      clk,
		log:        log,
	}
}

// Games returns the day's games. For the current day, Google cards refresh
// live games and replace the scoreboard entirely if ESPN cannot be reached.
func (li *LiveIngester) Games(ctx context.Context, day time.Time) ([]espn.Game, error) {
	games, err := li.feed.Games(ctx, day)
	if li.scraper == nil || !li.isToday(day) {
		return games, err
	}

	if err != nil {
		li.log.WithError(err).Warn("ESPN scoreboard unavailable, trying Google")
		cards, gerr := li.scraper.LiveGames(ctx)
		if gerr != nil {
			return nil, fmt.Errorf("scoreboard: %w (google fallback: %v)", err, gerr)
		}
		return reconciliation.MatchAndReconcileAll(nil, cards, li.reconciler), nil
	}

	if !anyUnfinished(games) {
		return games, nil
	}

	cards, err := li.scraper.LiveGames(ctx)
	if err != nil {
		li.log.WithError(err).Warn("Google live scores unavailable, using ESPN only")
		return games, nil
	}
	return reconciliation.MatchAndReconcileAll(games, cards, li.reconciler), nil
}

// TeamsPlaying implements league.Schedule from the ESPN scoreboard.
func (li *LiveIngester) TeamsPlaying(ctx context.Context, day time.Time) (map[string]bool, error) {
	games, err := li.feed.Games(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("teams playing on %s: %w", simulation.DayKey(day), err)
	}

	teams := make(map[string]bool, len(games)*2)
	for _, g := range games {
		teams[g.Home.Abbreviation] = true
		teams[g.Away.Abbreviation] = true
	}
	return teams, nil
}

// LiveDay is the live view of one slate.
type LiveDay struct {
	Snapshot simulation.LiveSnapshot
	Games    int
	// Final is set once every game of a non-empty slate has finished.
	Final bool
}

// Snapshot builds the live state of every player for day. Box scores are
// fetched only for games that have started. A box score that cannot be
// fetched leaves that game's players at zero points so far.
func (li *LiveIngester) Snapshot(ctx context.Context, day time.Time, players []simulation.PlayerRef) (*LiveDay, error) {
	start := time.Now()

	games, err := li.Games(ctx, day)
	if err != nil {
		return nil, err
	}

	progress := make([]simulation.GameProgress, 0, len(games))
	var started []string
	for _, g := range games {
		progress = append(progress, g.Progress())

		if g.Status == simulation.StatusInProgress {
			if _, err := simulation.ParseClock(g.Clock); err != nil {
				li.log.WithFields(logrus.Fields{
					"game_id": g.ID,
					"period":  g.Period,
				}).WithError(err).Warn("Unreadable game clock, assuming mid-period")
			}
		}
		if g.Status != simulation.StatusScheduled && !strings.HasPrefix(g.ID, scrapedPrefix) {
			started = append(started, g.ID)
		}
	}

	lines := li.boxLines(ctx, started)
	snap := simulation.BuildLiveSnapshot(progress, lines, players, li.weights)

	li.log.WithFields(logrus.Fields{
		"day":      simulation.DayKey(day),
		"games":    len(games),
		"started":  len(started),
		"lines":    len(lines),
		"players":  len(snap),
		"duration": time.Since(start).String(),
	}).Debug("Built live snapshot")

	return &LiveDay{
		Snapshot: snap,
		Games:    len(games),
		Final:    len(games) > 0 && !anyUnfinished(games),
	}, nil
}

func (li *LiveIngester) boxLines(ctx context.Context, gameIDs []string) []simulation.BoxLine {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		lines []simulation.BoxLine
	)

	for _, id := range gameIDs {
		wg.Add(1)
		go func(gameID string) {
			defer wg.Done()

			gameLines, err := li.feed.BoxLines(ctx, gameID)
			if err != nil {
				li.log.WithField("game_id", gameID).WithError(err).Warn("Box score unavailable")
				return
			}

			mu.Lock()
			lines = append(lines, gameLines...)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return lines
}

func (li *LiveIngester) isToday(day time.Time) bool {
	return simulation.DayKey(day) == simulation.DayKey(li.clock.Now().In(day.Location()))
}

func anyUnfinished(games []espn.Game) bool {
	for _, g := range games {
		if g.Status != simulation.StatusFinal {
			return true
		}
	}
	return false
}
