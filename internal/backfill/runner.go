package backfill

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/simulation"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_runner.go github.com/fortuna/pythia/internal/backfill DayIngester,TeamLoader

// DayIngester appends one day of final box scores to player history.
type DayIngester interface {
	IngestDay(ctx context.Context, day time.Time, players []simulation.PlayerRef) (int, error)
}

// TeamLoader lists the league's fantasy teams.
type TeamLoader interface {
	GetAll(ctx context.Context) ([]league.Team, error)
}

// Runner executes backfill specs one calendar day at a time.
type Runner struct {
	ingester DayIngester
	teams    TeamLoader
	log      *logrus.Entry
}

// NewRunner constructs a runner.
func NewRunner(ingester DayIngester, teams TeamLoader, log *logrus.Entry) *Runner {
	return &Runner{
		ingester: ingester,
		teams:    teams,
		log:      logger.OrDiscard(log),
	}
}

// Run executes the job spec, reporting progress via the Reporter if
// provided, and returns the number of history rows added. A day that fails
// is reported and skipped; the job fails at the end if any day did.
func (r *Runner) Run(ctx context.Context, spec JobSpec, reporter Reporter) (int, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}
	reporter.OnJobStart(spec)

	if spec.DryRun {
		reporter.OnProgress("Dry-run mode: no data will be written", 0, 0)
		reporter.OnJobComplete(0)
		return 0, nil
	}

	switch spec.Type {
	case JobTypeSeason, JobTypeDateRange:
	default:
		return 0, fmt.Errorf("unsupported job type %s", spec.Type)
	}

	teams, err := r.teams.GetAll(ctx)
	if err != nil {
		reporter.OnJobError(err)
		return 0, fmt.Errorf("loading league players: %w", err)
	}
	players := league.NewRoster(teams, nil).Players()

	dates := enumerateDates(spec.Start, spec.End)
	if len(dates) == 0 {
		reporter.OnProgress("No dates to process", 0, 0)
	}

	total := len(dates)
	added, failed := 0, 0
	for idx, date := range dates {
		if err := ctx.Err(); err != nil {
			return added, err
		}

		reporter.OnDateStart(date, idx, total)

		n, err := r.ingester.IngestDay(ctx, date, players)
		added += n
		if err != nil {
			failed++
			r.log.WithField("date", simulation.DayKey(date)).WithError(err).Warn("Backfill day incomplete")
			reporter.OnJobError(fmt.Errorf("%s: %w", simulation.DayKey(date), err))
		}

		reporter.OnDateComplete(date, n)
		reporter.OnProgress(fmt.Sprintf("Processed %s", date.Format("Jan 2, 2006")), idx+1, total)
	}

	if failed > 0 {
		return added, fmt.Errorf("%d of %d days incomplete", failed, total)
	}

	reporter.OnJobComplete(added)
	return added, nil
}

func enumerateDates(start, end time.Time) []time.Time {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	if end.Before(start) {
		start, end = end, start
	}
	return league.DaysBetween(truncateDate(start), truncateDate(end))
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type nopReporter struct{}

func (nopReporter) OnJobStart(JobSpec) {}
func (nopReporter) OnDateStart(time.Time, int, int) {}
func (nopReporter) OnDateComplete(time.Time, int) {}
func (nopReporter) OnProgress(string, int, int) {}
func (nopReporter) OnJobComplete(int) {}
func (nopReporter) OnJobError(error) {}
