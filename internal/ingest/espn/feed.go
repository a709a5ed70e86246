package espn

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/pythia/internal/simulation"
)

// Games fetches and parses the scoreboard for day.
func (c *Client) Games(ctx context.Context, day time.Time) ([]Game, error) {
	scoreboard, err := c.FetchScoreboard(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard: %w", err)
	}

	games, err := ParseScoreboard(scoreboard)
	if err != nil {
		return nil, fmt.Errorf("parse scoreboard: %w", err)
	}
	return games, nil
}

// BoxLines fetches and parses one game's box score.
func (c *Client) BoxLines(ctx context.Context, gameID string) ([]simulation.BoxLine, error) {
	summary, err := c.FetchGameSummary(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetch summary %s: %w", gameID, err)
	}

	lines, err := ParseBoxScore(summary, gameID)
	if err != nil {
		return nil, fmt.Errorf("parse box score %s: %w", gameID, err)
	}
	return lines, nil
}
