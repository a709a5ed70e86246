package service

import (
	"context"
	"time"

	"github.com/fortuna/pythia/internal/ingest"
	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/simulation"
	"github.com/fortuna/pythia/internal/store"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_dependencies.go github.com/fortuna/pythia/internal/service TeamStore,MatchupStore,HistorySource,LiveSource,ResultCache,RunRecorder,Publisher

// TeamStore loads the league's fantasy teams with their rosters.
type TeamStore interface {
	GetAll(ctx context.Context) ([]league.Team, error)
}

// MatchupStore serves the week's pairings and banked scores.
type MatchupStore interface {
	ListWeek(ctx context.Context, weekStart time.Time) ([]store.Matchup, error)
	Find(ctx context.Context, weekStart time.Time, teamA, teamB string) (*store.Matchup, error)
}

// HistorySource loads each player's completed-game scores for a season.
type HistorySource interface {
	Populations(ctx context.Context, season string) (map[string][]float64, error)
}

// LiveSource captures the current day's live state.
type LiveSource interface {
	Snapshot(ctx context.Context, day time.Time, players []simulation.PlayerRef) (*ingest.LiveDay, error)
}

// ResultCache keeps settled daily projections.
type ResultCache interface {
	FinalOdds(ctx context.Context, day time.Time) ([]simulation.MatchupResult, bool, error)
	StoreFinalOdds(ctx context.Context, day time.Time, results []simulation.MatchupResult, ttl time.Duration) error
}

// RunRecorder persists simulation results.
type RunRecorder interface {
	Save(ctx context.Context, run store.OddsRun) error
}

// Publisher fans odds updates out to subscribers.
type Publisher interface {
	PublishOdds(ctx context.Context, update interface{}) error
}
