package simulation

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roster_source.go github.com/fortuna/pythia/internal/simulation RosterSource

// RosterSource lists the players able to score for a team on a day. Bench,
// reserve, injured and players without a game that day are already excluded.
type RosterSource interface {
	ActiveRoster(ctx context.Context, teamID string, day time.Time) ([]string, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_history_store.go github.com/fortuna/pythia/internal/simulation HistoryStore

// HistoryStore returns a player's full-game fantasy scores for the season.
type HistoryStore interface {
	Population(playerID string) ([]float64, bool)
}

// LiveFeed returns the live snapshot for a day, if one was taken.
type LiveFeed interface {
	Snapshot(day time.Time) (LiveSnapshot, bool)
}

// Session carries the data sources of one run. Sources are read only while a
// run is in flight and are rebuilt, not patched, between runs.
type Session struct {
	History HistoryStore
	Live    LiveFeed
	Roster  RosterSource
}
