package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/api/rest"
	"github.com/fortuna/pythia/internal/api/websocket"
	"github.com/fortuna/pythia/internal/backfill"
	"github.com/fortuna/pythia/internal/cache"
	"github.com/fortuna/pythia/internal/common/clock"
	"github.com/fortuna/pythia/internal/common/uuid"
	"github.com/fortuna/pythia/internal/config"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/publisher"
	"github.com/fortuna/pythia/internal/reconciliation"
	"github.com/fortuna/pythia/internal/scheduler"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/service"
	"github.com/fortuna/pythia/internal/simulation"
	"github.com/fortuna/pythia/internal/store"
	"github.com/fortuna/pythia/internal/store/repository"
)

const (
	serviceName    = "pythia"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	root := logger.New(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent(root, "main")

	log.WithField("version", serviceVersion).Infof("Starting %s", serviceName)

	db, err := store.NewDatabase(cfg.AtlasDSN, logger.WithComponent(root, "store"))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Atlas database")
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.RunMigrations(ctx); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	redisCache := connectRedis(cfg.RedisURL, log)
	defer redisCache.Close()

	clk := &clock.DefaultClock{}
	weights := scoring.DefaultWeights()

	espnClient := espn.New(cfg.ESPNAPIBase, espn.ClientOptions{RatePerSecond: cfg.ESPNRatePerSecond}, logger.WithComponent(root, "espn"))
	liveCfg := ingest.LiveIngesterConfig{
		Feed:       espnClient,
		Reconciler: reconciliation.NewEngine(reconciliation.SmartMerge, logger.WithComponent(root, "reconciliation")),
		Weights:    weights,
		Clock:      clk,
	}
	if cfg.EnableGoogleFallback {
		scraper := google.NewClient(logger.WithComponent(root, "google"))
		defer scraper.Close()
		liveCfg.Scraper = scraper
	}
	liveIngester := ingest.NewLiveIngester(liveCfg, logger.WithComponent(root, "live"))

	teams := repository.NewTeamRepository(db)
	matchups := repository.NewMatchupRepository(db)
	histories := repository.NewHistoryRepository(db)
	runs := repository.NewOddsRunRepository(db)

	hub := websocket.NewHub(logger.WithComponent(root, "websocket"))

	engine := simulation.NewEngine(simulation.EngineConfig{
		Workers: cfg.SimWorkers,
		Seed:    cfg.SimSeed,
	}, logger.WithComponent(root, "engine"))

	odds := service.NewOddsService(service.Config{
		Engine:   engine,
		Teams:    teams,
		Matchups: matchups,
		History:  histories,
		Schedule: liveIngester,
		Live:     liveIngester,
		Cache:    redisCache,
		Runs:     runs,
		Publishers: []service.Publisher{
			publisher.NewRedisStreamPublisher(redisCache.Client()),
			hub,
		},
		Clock:         clk,
		UUID:          uuid.New(),
		Location:      cfg.Location(),
		DefaultTrials: cfg.DefaultTrials,
		MaxTrials:     cfg.MaxTrials,
	}, logger.WithComponent(root, "odds"))

	updater := ingest.NewHistoryUpdater(espnClient, histories, weights, logger.WithComponent(root, "history"))

	backfillService := backfill.NewService(
		backfill.NewRepository(db),
		backfill.NewRunner(updater, teams, logger.WithComponent(root, "backfill")),
		logger.WithComponent(root, "backfill"),
	)
	backfillService.Start()

	sched := scheduler.NewOrchestrator(odds, updater, teams, &scheduler.Config{
		LiveRefresh:          cfg.LiveRefresh,
		HistoryRefresh:       cfg.HistoryRefresh,
		EnableLiveRefresh:    cfg.EnableLiveRefresh,
		EnableHistoryRefresh: cfg.EnableHistoryRefresh,
		MaxRetries:           3,
		RetryDelay:           5 * time.Second,
		Location:             cfg.Location(),
	}, clk, logger.WithComponent(root, "scheduler"))
	if err := sched.Start(ctx); err != nil {
		log.WithError(err).Fatal("Failed to start scheduler")
	}

	restServer := rest.NewServer(cfg.RESTPort, rest.Dependencies{
		Odds:     odds,
		Runs:     runs,
		Backfill: backfillService,
		Checks: map[string]rest.HealthChecker{
			"database": db,
			"redis":    redisCache,
		},
	}, logger.WithComponent(root, "rest"))
	go serve("REST API", restServer.Start, log)

	wsServer := websocket.NewServer(cfg.WSPort, hub, logger.WithComponent(root, "websocket"))
	go serve("WebSocket", wsServer.Start, log)

	log.WithFields(logrus.Fields{
		"rest_port": cfg.RESTPort,
		"ws_port":   cfg.WSPort,
		"timezone":  cfg.LeagueTimezone,
	}).Info("Pythia started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down gracefully")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("REST API server shutdown error")
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("WebSocket server shutdown error")
	}
	if err := backfillService.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Backfill worker shutdown error")
	}

	log.Info("Pythia stopped")
}

func serve(name string, start func() error, log *logrus.Entry) {
	if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Errorf("%s server error", name)
	}
}

// connectRedis retries while Redis comes up alongside the service.
func connectRedis(url string, log *logrus.Entry) *cache.RedisCache {
	const (
		maxRetries = 30
		retryDelay = 2 * time.Second
	)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		redisCache, err := cache.NewRedisCache(url)
		if err == nil {
			return redisCache
		}
		lastErr = err
		log.WithError(err).WithField("attempt", i+1).Warn("Redis connection failed, retrying")
		time.Sleep(retryDelay)
	}

	log.WithError(lastErr).Fatalf("Failed to connect to Redis after %d attempts", maxRetries)
	return nil
}
