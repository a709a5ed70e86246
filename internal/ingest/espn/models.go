package espn

import (
	"time"

	"github.com/fortuna/pythia/internal/simulation"
)

// TeamMeta captures ESPN team identifiers needed for mapping.
type TeamMeta struct {
	Abbreviation string // canonical
	ESPNID       string
	DisplayName  string
}

// Game is one scoreboard event.
type Game struct {
	ID        string
	StartTime time.Time
	Home      TeamMeta
	Away      TeamMeta
	HomeScore int
	AwayScore int
	Status    simulation.GameStatus
	Period    int
	Clock     string
}

// Progress converts the event into the simulation's view of it.
func (g Game) Progress() simulation.GameProgress {
	return simulation.GameProgress{
		GameID:   g.ID,
		HomeTeam: g.Home.Abbreviation,
		AwayTeam: g.Away.Abbreviation,
		Status:   g.Status,
		Period:   g.Period,
		Clock:    g.Clock,
	}
}

// Opponent returns the other side of team, or "" when team did not play.
func (g Game) Opponent(team string) string {
	switch team {
	case g.Home.Abbreviation:
		return g.Away.Abbreviation
	case g.Away.Abbreviation:
		return g.Home.Abbreviation
	default:
		return ""
	}
}
