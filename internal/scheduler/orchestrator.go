// Package scheduler drives the periodic odds refresh and nightly history
// ingest.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/common/clock"
	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/service"
	"github.com/fortuna/pythia/internal/simulation"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_orchestrator.go github.com/fortuna/pythia/internal/scheduler OddsRefresher,DayIngester,TeamLoader

// OddsRefresher recomputes and publishes the current day's odds.
type OddsRefresher interface {
	Refresh(ctx context.Context) (*service.TodayOdds, error)
}

// DayIngester appends one day of final box scores to player history.
type DayIngester interface {
	IngestDay(ctx context.Context, day time.Time, players []simulation.PlayerRef) (int, error)
}

// TeamLoader lists the league's fantasy teams.
type TeamLoader interface {
	GetAll(ctx context.Context) ([]league.Team, error)
}

// Config holds scheduler configuration
type Config struct {
	LiveRefresh          string // cron spec, default "@every 30s"
	HistoryRefresh       string // cron spec, default "0 5 * * *"
	EnableLiveRefresh    bool
	EnableHistoryRefresh bool
	MaxRetries           int
	RetryDelay           time.Duration
	Location             *time.Location
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		LiveRefresh:          "@every 30s",
		HistoryRefresh:       "0 5 * * *",
		EnableLiveRefresh:    true,
		EnableHistoryRefresh: true,
		MaxRetries:           3,
		RetryDelay:           5 * time.Second,
		Location:             time.UTC,
	}
}

// Orchestrator manages scheduled refresh and ingest jobs.
type Orchestrator struct {
	odds     OddsRefresher
	ingester DayIngester
	teams    TeamLoader
	config   *Config
	clock    clock.Clock

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	lastRefresh time.Time
	lastIngest  time.Time
	failures    int

	log *logrus.Entry
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(odds OddsRefresher, ingester DayIngester, teams TeamLoader, config *Config, clk clock.Clock, log *logrus.Entry) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 1
	}
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &Orchestrator{
		odds:     odds,
		ingester: ingester,
		teams:    teams,
		config:   config,
		clock:    clk,
		cron: cron.New(
			cron.WithLocation(config.Location),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log: logger.OrDiscard(log),
	}
}

// Start registers the enabled jobs and starts the cron loop. It returns
// once the jobs are scheduled.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.ctx, o.cancel = context.WithCancel(ctx)

	if o.config.EnableLiveRefresh {
		if _, err := o.cron.AddFunc(o.config.LiveRefresh, func() { o.refreshOdds(o.ctx) }); err != nil {
			return fmt.Errorf("schedule live refresh %q: %w", o.config.LiveRefresh, err)
		}
	}
	if o.config.EnableHistoryRefresh {
		if _, err := o.cron.AddFunc(o.config.HistoryRefresh, func() { o.ingestYesterday(o.ctx) }); err != nil {
			return fmt.Errorf("schedule history refresh %q: %w", o.config.HistoryRefresh, err)
		}
	}

	o.cron.Start()
	o.log.WithFields(logrus.Fields{
		"live_refresh":    o.config.LiveRefresh,
		"live_enabled":    o.config.EnableLiveRefresh,
		"history_refresh": o.config.HistoryRefresh,
		"history_enabled": o.config.EnableHistoryRefresh,
	}).Info("Scheduler started")

	if o.config.EnableLiveRefresh {
		go o.refreshOdds(o.ctx)
	}
	return nil
}

// Stop cancels running jobs and waits for the cron loop to drain.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	<-o.cron.Stop().Done()
	o.log.Info("Scheduler stopped")
}

// refreshOdds runs one odds refresh, retrying transient failures.
func (o *Orchestrator) refreshOdds(ctx context.Context) {
	var (
		odds *service.TodayOdds
		err  error
	)

	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		odds, err = o.odds.Refresh(ctx)
		if err == nil {
			break
		}

		o.log.WithError(err).WithField("attempt", attempt).Warn("Odds refresh failed")
		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.failures++
		o.log.WithError(err).WithField("consecutive_failures", o.failures).Error("Odds refresh gave up")
		return
	}

	o.failures = 0
	o.lastRefresh = o.clock.Now()
	o.log.WithFields(logrus.Fields{
		"matchups": len(odds.Matchups),
		"final":    odds.Final,
		"cached":   odds.Cached,
	}).Debug("Odds refreshed")
}

func (o *Orchestrator) ingestYesterday(ctx context.Context) {
	yesterday := league.Day(o.clock.Now().In(o.config.Location)).AddDate(0, 0, -1)
	if _, err := o.TriggerManualIngestion(ctx, yesterday); err != nil {
		o.log.WithError(err).Error("Nightly history ingest failed")
	}
}

// TriggerManualIngestion ingests final games of date for every rostered
// player and returns the rows added.
func (o *Orchestrator) TriggerManualIngestion(ctx context.Context, date time.Time) (int, error) {
	started := o.clock.Now()
	day := simulation.DayKey(date)

	teams, err := o.teams.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading league players: %w", err)
	}
	players := league.NewRoster(teams, nil).Players()

	added, err := o.ingester.IngestDay(ctx, date, players)
	if err != nil {
		return added, fmt.Errorf("ingest %s: %w", day, err)
	}

	o.mu.Lock()
	o.lastIngest = o.clock.Now()
	o.mu.Unlock()

	o.log.WithFields(logrus.Fields{
		"date":     day,
		"added":    added,
		"duration": o.clock.Now().Sub(started).Round(time.Millisecond),
	}).Info("History ingest complete")
	return added, nil
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := map[string]interface{}{
		"live_refresh_enabled":    o.config.EnableLiveRefresh,
		"live_refresh":            o.config.LiveRefresh,
		"history_refresh_enabled": o.config.EnableHistoryRefresh,
		"history_refresh":         o.config.HistoryRefresh,
		"consecutive_failures":    o.failures,
	}
	if !o.lastRefresh.IsZero() {
		status["last_refresh"] = o.lastRefresh
	}
	if !o.lastIngest.IsZero() {
		status["last_ingest"] = o.lastIngest
	}
	return status
}
