package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/history"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/simulation"
)

// HistoryUpdater records the fantasy score of every league player in each
// finished game of a day.
type HistoryUpdater struct {
	feed    ScoreFeed
	writer  HistoryWriter
	weights scoring.Weights
	log     *logrus.Entry
}

// NewHistoryUpdater creates a history updater.
func NewHistoryUpdater(feed ScoreFeed, writer HistoryWriter, weights scoring.Weights, log *logrus.Entry) *HistoryUpdater {
	return &HistoryUpdater{
		feed:    feed,
		writer:  writer,
		weights: weights,
		log:     logger.OrDiscard(log),
	}
}

// IngestDay appends the day's final box scores for players and returns the
// number of new history rows. Games still in progress are left for a later
// run. A failing box score does not stop the others.
func (u *HistoryUpdater) IngestDay(ctx context.Context, day time.Time, players []simulation.PlayerRef) (int, error) {
	games, err := u.feed.Games(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("ingest %s: %w", simulation.DayKey(day), err)
	}

	byStatsID := make(map[string]string, len(players))
	for _, p := range players {
		id := p.StatsID
		if id == "" {
			id = p.PlayerID
		}
		byStatsID[id] = p.PlayerID
	}

	date := simulation.DayKey(day)
	fresh := make(map[string][]history.Game)
	var errs []error

	for _, g := range games {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if g.Status != simulation.StatusFinal {
			continue
		}

		lines, err := u.feed.BoxLines(ctx, g.ID)
		if err != nil {
			u.log.WithField("game_id", g.ID).WithError(err).Warn("Skipping game without box score")
			errs = append(errs, err)
			continue
		}

		for _, line := range lines {
			playerID, ok := byStatsID[line.PlayerID]
			if !ok {
				continue
			}
			points := u.weights.FantasyPoints(line.Stats)
			fresh[playerID] = append(fresh[playerID], history.Game{
				Date:          date,
				FantasyPoints: &points,
				Opponent:      g.Opponent(line.Team),
				GameID:        g.ID,
			})
		}
	}

	ids := make([]string, 0, len(fresh))
	for id := range fresh {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	added := 0
	for _, id := range ids {
		n, err := u.writer.AppendGames(ctx, id, fresh[id])
		if err != nil {
			return added, fmt.Errorf("append history for %s: %w", id, err)
		}
		added += n
	}

	u.log.WithFields(logrus.Fields{
		"day":     date,
		"games":   len(games),
		"players": len(ids),
		"added":   added,
	}).Info("History updated")

	return added, errors.Join(errs...)
}
