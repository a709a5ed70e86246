package rest

import (
	"context"

	"github.com/fortuna/pythia/internal/backfill"
	"github.com/fortuna/pythia/internal/service"
	"github.com/fortuna/pythia/internal/store"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_dependencies.go github.com/fortuna/pythia/internal/api/rest OddsProvider,RunLister,HealthChecker,BackfillService

// OddsProvider runs the projections behind the odds endpoints.
type OddsProvider interface {
	Today(ctx context.Context, trials int) (*service.TodayOdds, error)
	Custom(ctx context.Context, teamA, teamB string, trials int) (*service.CustomOdds, error)
	Week(ctx context.Context, teamA, teamB string, trials int) (*service.WeekOdds, error)
}

// RunLister reads recorded simulation runs.
type RunLister interface {
	Recent(ctx context.Context, limit int) ([]store.OddsRun, error)
}

// HealthChecker is implemented by every backing store the server reports on.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BackfillService queues and reports history backfill jobs.
type BackfillService interface {
	Enqueue(ctx context.Context, req backfill.Request) (*backfill.Job, error)
	GetStatus(ctx context.Context) (*backfill.StatusSummary, error)
}

var (
	_ OddsProvider    = (*service.OddsService)(nil)
	_ BackfillService = (*backfill.Service)(nil)
	_ HealthChecker   = (*store.Database)(nil)
)
