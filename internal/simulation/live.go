package simulation

import (
	"strings"
	"time"

	"github.com/fortuna/pythia/internal/scoring"
)

// LiveState is one player's game progress for one day.
type LiveState struct {
	HasGameToday bool    `json:"has_game_today"`
	FractionDone float64 `json:"fraction_done"`
	PointsSoFar  float64 `json:"points_so_far"`
}

// LiveSnapshot maps fantasy player id to live state for a single day.
type LiveSnapshot map[string]LiveState

// LiveBook holds the snapshots of one run, keyed by DayKey.
type LiveBook map[string]LiveSnapshot

// DayKey formats the calendar day used to key snapshots and caches.
func DayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Snapshot implements LiveFeed.
func (b LiveBook) Snapshot(day time.Time) (LiveSnapshot, bool) {
	snap, ok := b[DayKey(day)]
	return snap, ok
}

// GameProgress is the scoreboard view of one pro game.
type GameProgress struct {
	GameID   string     `json:"game_id"`
	HomeTeam string     `json:"home_team"`
	AwayTeam string     `json:"away_team"`
	Status   GameStatus `json:"status"`
	Period   int        `json:"period"`
	Clock    string     `json:"clock"`

	// RegulationPeriods defaults to four when zero.
	RegulationPeriods int `json:"regulation_periods,omitempty"`
}

// BoxLine is one player's running box score in one game.
type BoxLine struct {
	GameID   string           `json:"game_id"`
	PlayerID string           `json:"player_id"`
	Team     string           `json:"team"`
	Stats    scoring.StatLine `json:"stats"`
}

// PlayerRef ties a fantasy player to the ids used by the stats feed.
type PlayerRef struct {
	PlayerID string // fantasy player id
	StatsID  string // box score athlete id, PlayerID when empty
	ProTeam  string // canonical team abbreviation
}

// BuildLiveSnapshot joins game progress with box scores into one state per
// player. Players whose pro team is not on the slate get HasGameToday false.
// A player without a box line in a started game has scored nothing yet.
func BuildLiveSnapshot(games []GameProgress, lines []BoxLine, players []PlayerRef, weights scoring.Weights) LiveSnapshot {
	byTeam := make(map[string]GameProgress, len(games)*2)
	for _, g := range games {
		byTeam[strings.ToUpper(g.HomeTeam)] = g
		byTeam[strings.ToUpper(g.AwayTeam)] = g
	}

	type lineKey struct{ game, player string }
	byPlayer := make(map[lineKey]scoring.StatLine, len(lines))
	for _, l := range lines {
		byPlayer[lineKey{l.GameID, l.PlayerID}] = l.Stats
	}

	snap := make(LiveSnapshot, len(players))
	for _, p := range players {
		game, ok := byTeam[strings.ToUpper(p.ProTeam)]
		if !ok {
			snap[p.PlayerID] = LiveState{}
			continue
		}

		statsID := p.StatsID
		if statsID == "" {
			statsID = p.PlayerID
		}

		state := LiveState{
			HasGameToday: true,
			FractionDone: EstimateFraction(game.Status, game.Period, game.Clock, game.RegulationPeriods),
		}
		if line, ok := byPlayer[lineKey{game.GameID, statsID}]; ok {
			state.PointsSoFar = weights.FantasyPoints(line)
		}
		snap[p.PlayerID] = state
	}

	return snap
}
