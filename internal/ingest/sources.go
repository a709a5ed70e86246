// Package ingest turns scoreboard and box score feeds into simulation inputs:
// live snapshots for the current day and history rows for finished games.
package ingest

import (
	"context"
	"time"

	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/simulation"
)

// ScoreFeed is the authoritative scoreboard and box score source.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_sources.go github.com/fortuna/pythia/internal/ingest ScoreFeed,LiveScraper,HistoryWriter
type ScoreFeed interface {
	Games(ctx context.Context, day time.Time) ([]espn.Game, error)
	BoxLines(ctx context.Context, gameID string) ([]simulation.BoxLine, error)
}

// LiveScraper reports games in progress right now.
type LiveScraper interface {
	LiveGames(ctx context.Context) ([]google.LiveGame, error)
}

// HistoryWriter persists completed games for one player and returns how many
// were new.
type HistoryWriter interface {
	AppendGames(ctx context.Context, playerID string, games []history.Game) (int, error)
}

var (
	_ ScoreFeed     = (*espn.Client)(nil)
	_ LiveScraper   = (*google.Client)(nil)
	_ HistoryWriter = history.Document(nil)
)
