package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/backfill"
	"github.com/fortuna/pythia/internal/config"
	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/store"
	"github.com/fortuna/pythia/internal/store/repository"
)

const (
	appName    = "pythia-backfill"
	appVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	root := logger.New(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent(root, "backfill")

	log.WithField("version", appVersion).Infof("=== %s ===", appName)

	var (
		atlasDSN    = flag.String("dsn", cfg.AtlasDSN, "Atlas DSN")
		espnBase    = flag.String("espn-url", cfg.ESPNAPIBase, "ESPN API base URL")
		rosterFile  = flag.String("roster", "", "League roster JSON to load before backfilling")
		matchupFile = flag.String("matchups", "", "Weekly matchups JSON with banked scores")
		historyFile = flag.String("history", "", "Season history JSON to import")
		season      = flag.String("season", "", "Season to backfill (e.g., 2024-25)")
		startDate   = flag.String("start", "", "Start date (YYYY-MM-DD)")
		endDate     = flag.String("end", "", "End date (YYYY-MM-DD)")
		dryRun      = flag.Bool("dry-run", false, "Dry run (do not write to DB)")
	)

	flag.Parse()

	if *rosterFile == "" && *matchupFile == "" && *historyFile == "" && *season == "" && *startDate == "" {
		log.Fatal("Specify --roster, --matchups, --history, --season, or --start/--end")
	}

	db, err := store.NewDatabase(*atlasDSN, logger.WithComponent(root, "store"))
	if err != nil {
		log.WithError(err).Fatal("Connect database failed")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.RunMigrations(ctx); err != nil {
		log.WithError(err).Fatal("Migrations failed")
	}

	teams := repository.NewTeamRepository(db)
	histories := repository.NewHistoryRepository(db)

	if *rosterFile != "" {
		loaded, err := league.LoadTeams(*rosterFile)
		if err != nil {
			log.WithError(err).Fatal("Load roster failed")
		}
		if !*dryRun {
			if err := teams.ReplaceAll(ctx, loaded); err != nil {
				log.WithError(err).Fatal("Store roster failed")
			}
		}
		log.WithField("teams", len(loaded)).Info("Roster loaded")
	}

	if *matchupFile != "" {
		loaded, err := league.LoadMatchups(*matchupFile)
		if err != nil {
			log.WithError(err).Fatal("Load matchups failed")
		}
		if !*dryRun {
			matchups := repository.NewMatchupRepository(db)
			for _, m := range loaded {
				if err := matchups.Upsert(ctx, m); err != nil {
					log.WithError(err).Fatal("Store matchup failed")
				}
			}
		}
		log.WithField("matchups", len(loaded)).Info("Matchups loaded")
	}

	if *historyFile != "" {
		doc, err := history.LoadFile(*historyFile)
		if err != nil {
			log.WithError(err).Fatal("Load history failed")
		}
		added := 0
		if !*dryRun {
			if added, err = histories.Import(ctx, doc); err != nil {
				log.WithError(err).Fatal("Import history failed")
			}
		}
		log.WithFields(logrus.Fields{"players": len(doc), "added": added}).Info("History imported")
	}

	if *season == "" && *startDate == "" {
		return
	}

	spec, err := buildSpec(*season, *startDate, *endDate)
	if err != nil {
		log.WithError(err).Fatal("Build spec failed")
	}
	spec.DryRun = *dryRun

	client := espn.New(*espnBase, espn.ClientOptions{RatePerSecond: cfg.ESPNRatePerSecond}, logger.WithComponent(root, "espn"))
	updater := ingest.NewHistoryUpdater(client, histories, scoring.DefaultWeights(), log)
	runner := backfill.NewRunner(updater, teams, log)

	added, err := runner.Run(ctx, spec, &consoleReporter{log: log})
	if err != nil {
		log.WithError(err).WithField("added", added).Error("Backfill failed")
		os.Exit(1)
	}

	log.WithField("added", added).Info("Backfill completed successfully")
}

func buildSpec(season, startStr, endStr string) (backfill.JobSpec, error) {
	spec := backfill.JobSpec{SeasonID: season}

	switch {
	case startStr != "" && endStr != "":
		spec.Type = backfill.JobTypeDateRange
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return spec, fmt.Errorf("invalid start date: %w", err)
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return spec, fmt.Errorf("invalid end date: %w", err)
		}
		spec.Start = start
		spec.End = end
	case season != "":
		spec.Type = backfill.JobTypeSeason
		start, end, err := backfill.SeasonWindow(season)
		if err != nil {
			return spec, err
		}
		spec.Start = start
		spec.End = end
	default:
		return spec, fmt.Errorf("unable to determine job type")
	}

	return spec, nil
}

type consoleReporter struct {
	log *logrus.Entry
}

func (c *consoleReporter) OnJobStart(spec backfill.JobSpec) {
	c.log.WithFields(logrus.Fields{"type": spec.Type, "dry_run": spec.DryRun}).Info("Starting job")
}

func (c *consoleReporter) OnDateStart(date time.Time, index int, total int) {
	c.log.Infof("[%d/%d] %s", index+1, total, date.Format("2006-01-02"))
}

func (c *consoleReporter) OnDateComplete(date time.Time, added int) {
	c.log.WithField("added", added).Debugf("Finished %s", date.Format("2006-01-02"))
}

func (c *consoleReporter) OnProgress(message string, current int, total int) {
	c.log.Debugf("Progress: %s (%d/%d)", message, current, total)
}

func (c *consoleReporter) OnJobComplete(added int) {
	c.log.WithField("added", added).Info("Job complete")
}

func (c *consoleReporter) OnJobError(err error) {
	c.log.WithError(err).Warn("Job error")
}
