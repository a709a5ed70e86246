// Command probe prints one day's slate as the live ingester sees it. Handy
// for checking ESPN access and the Google overlay by hand.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fortuna/pythia/internal/config"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/reconciliation"
	"github.com/fortuna/pythia/internal/scoring"
)

type gameView struct {
	ID        string `json:"id"`
	Matchup   string `json:"matchup"`
	Score     string `json:"score"`
	Status    string `json:"status"`
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	StartTime string `json:"start_time"`
}

func main() {
	cfg := config.Load()
	root := logger.New(cfg.LogLevel, "text")
	log := logger.WithComponent(root, "probe")

	var (
		date    = flag.String("date", "", "Day to fetch (YYYY-MM-DD), default today")
		useGoog = flag.Bool("google", cfg.EnableGoogleFallback, "Overlay Google live scores")
		timeout = flag.Duration("timeout", 45*time.Second, "Overall timeout")
	)
	flag.Parse()

	loc := cfg.Location()
	day := league.Day(time.Now().In(loc))
	if *date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *date, loc)
		if err != nil {
			log.WithError(err).Fatal("Invalid --date")
		}
		day = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	reconciler := reconciliation.NewEngine(reconciliation.SmartMerge, log)
	liveCfg := ingest.LiveIngesterConfig{
		Feed:       espn.New(cfg.ESPNAPIBase, espn.ClientOptions{RatePerSecond: cfg.ESPNRatePerSecond}, log),
		Reconciler: reconciler,
		Weights:    scoring.DefaultWeights(),
	}
	if *useGoog {
		scraper := google.NewClient(log)
		defer scraper.Close()
		liveCfg.Scraper = scraper
	}

	games, err := ingest.NewLiveIngester(liveCfg, log).Games(ctx, day)
	if err != nil {
		log.WithError(err).Fatal("Fetch slate failed")
	}

	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, gameView{
			ID:        g.ID,
			Matchup:   g.Away.Abbreviation + " @ " + g.Home.Abbreviation,
			Score:     fmt.Sprintf("%d-%d", g.AwayScore, g.HomeScore),
			Status:    g.Status.String(),
			Period:    g.Period,
			Clock:     g.Clock,
			StartTime: g.StartTime.In(loc).Format(time.Kitchen),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]interface{}{
		"date":           day.Format("2006-01-02"),
		"games":          views,
		"reconciliation": reconciler.GetMetrics(),
	})
}
