package reconciliation

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/simulation"
)

// Strategy defines how to merge conflicting data
type Strategy string

const (
	// PreferLatest prioritizes Google's fresher live data
	PreferLatest Strategy = "prefer_latest"

	// PreferAuthoritative prioritizes ESPN over Google
	PreferAuthoritative Strategy = "prefer_authoritative"

	// SmartMerge uses context-aware logic (default)
	SmartMerge Strategy = "smart_merge"
)

// conflictScoreGap is the score difference above which sources disagree.
const conflictScoreGap = 20

// Metrics tracks reconciliation statistics
type Metrics struct {
	TotalReconciliations int       `json:"total_reconciliations"`
	Conflicts            int       `json:"conflicts"`
	GooglePreferred      int       `json:"google_preferred"`
	ESPNPreferred        int       `json:"espn_preferred"`
	LastReconciliation   time.Time `json:"last_reconciliation"`
}

// Engine reconciles game progress from ESPN and Google. ESPN owns game
// identity; Google may only refresh period, clock and score of live games.
type Engine struct {
	strategy Strategy
	log      *logrus.Entry

	mu      sync.Mutex
	metrics Metrics
}

// NewEngine creates a new reconciliation engine
func NewEngine(strategy Strategy, log *logrus.Entry) *Engine {
	if strategy == "" {
		strategy = SmartMerge
	}
	return &Engine{
		strategy: strategy,
		log:      logger.OrDiscard(log),
	}
}

// ReconcileGame merges g with its Google counterpart, which may be nil.
func (e *Engine) ReconcileGame(g espn.Game, lg *google.LiveGame) espn.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.metrics.TotalReconciliations++
	e.metrics.LastReconciliation = time.Now()

	if lg == nil {
		e.metrics.ESPNPreferred++
		return g
	}

	// normalise the Google card to ESPN's home/away orientation
	card := *lg
	if swapped(g, card) {
		card.HomeTeam, card.AwayTeam = card.AwayTeam, card.HomeTeam
		card.HomeScore, card.AwayScore = card.AwayScore, card.HomeScore
	}

	switch e.strategy {
	case PreferAuthoritative:
		e.metrics.ESPNPreferred++
		return g
	case PreferLatest:
		e.metrics.GooglePreferred++
		return overlay(g, card)
	}

	switch determineGameState(g, card) {
	case StateLive:
		e.metrics.GooglePreferred++
		return overlay(g, card)
	case StateConflict:
		e.metrics.Conflicts++
		e.metrics.ESPNPreferred++
		e.log.WithFields(logrus.Fields{
			"game_id":      g.ID,
			"espn_status":  g.Status.String(),
			"google_state": card.GameStatus,
			"espn_home":    g.HomeScore,
			"google_home":  card.HomeScore,
		}).Warn("Conflict between ESPN and Google, keeping ESPN")
		return g
	default:
		e.metrics.ESPNPreferred++
		return g
	}
}

// overlay takes live period, clock and score from Google, keeping ESPN's
// values wherever Google has none.
func overlay(g espn.Game, card google.LiveGame) espn.Game {
	merged := g
	if card.Status() == simulation.StatusInProgress {
		merged.Status = simulation.StatusInProgress
	}
	if card.HomeScore > 0 || card.AwayScore > 0 {
		merged.HomeScore = card.HomeScore
		merged.AwayScore = card.AwayScore
	}
	if card.Period > 0 {
		merged.Period = card.Period
	}
	if card.TimeRemaining != "" {
		merged.Clock = card.TimeRemaining
	}
	return merged
}

// GameState represents the current state of a game
type GameState string

const (
	StatePreGame  GameState = "pre_game"
	StateLive     GameState = "live"
	StateFinal    GameState = "final"
	StateConflict GameState = "conflict"
)

// determineGameState analyzes both sources to determine game state
func determineGameState(g espn.Game, card google.LiveGame) GameState {
	if hasConflict(g, card) {
		return StateConflict
	}
	if g.Status == simulation.StatusFinal || card.Status() == simulation.StatusFinal {
		return StateFinal
	}
	if g.Status == simulation.StatusInProgress || card.IsLive {
		return StateLive
	}
	return StatePreGame
}

// hasConflict detects obvious data inconsistencies
func hasConflict(g espn.Game, card google.LiveGame) bool {
	if card.HomeScore > 0 && abs(g.HomeScore-card.HomeScore) > conflictScoreGap {
		return true
	}
	if card.AwayScore > 0 && abs(g.AwayScore-card.AwayScore) > conflictScoreGap {
		return true
	}
	// ESPN says final while Google still shows the game live
	return g.Status == simulation.StatusFinal && card.IsLive
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GetMetrics returns a copy of the current reconciliation metrics
func (e *Engine) GetMetrics() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metrics
}

// ResetMetrics clears all metrics
func (e *Engine) ResetMetrics() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics = Metrics{}
}
