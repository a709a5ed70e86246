package reconciliation

import (
	"github.com/fortuna/pythia/internal/ingest/espn"
	"github.com/fortuna/pythia/internal/ingest/google"
	"github.com/fortuna/pythia/internal/league"
)

// FindMatchingGoogleGame returns the index of the Google game with the same
// home and away teams as g, or -1.
func FindMatchingGoogleGame(g espn.Game, googleGames []google.LiveGame) int {
	for i := range googleGames {
		if sameMatchup(g.Home.Abbreviation, g.Away.Abbreviation, googleGames[i].HomeTeam, googleGames[i].AwayTeam) {
			return i
		}
	}
	return -1
}

// sameMatchup compares canonical codes. Google's card order is not reliable,
// so swapped home and away still match.
func sameMatchup(home, away, otherHome, otherAway string) bool {
	home, away = league.CanonicalTeam(home), league.CanonicalTeam(away)
	otherHome, otherAway = league.CanonicalTeam(otherHome), league.CanonicalTeam(otherAway)
	if home == "" || away == "" {
		return false
	}
	return (home == otherHome && away == otherAway) || (home == otherAway && away == otherHome)
}

// swapped reports whether the Google card lists the teams the other way round.
func swapped(g espn.Game, lg google.LiveGame) bool {
	return league.CanonicalTeam(g.Home.Abbreviation) == league.CanonicalTeam(lg.AwayTeam) &&
		league.CanonicalTeam(g.Away.Abbreviation) == league.CanonicalTeam(lg.HomeTeam)
}

// MatchAndReconcileAll reconciles every ESPN game with its Google
// counterpart. Google games ESPN does not list are appended as-is.
func MatchAndReconcileAll(espnGames []espn.Game, googleGames []google.LiveGame, engine *Engine) []espn.Game {
	reconciled := make([]espn.Game, 0, len(espnGames))
	matched := make(map[int]bool)

	for _, g := range espnGames {
		var googleGame *google.LiveGame
		if idx := FindMatchingGoogleGame(g, googleGames); idx >= 0 {
			matched[idx] = true
			googleGame = &googleGames[idx]
		}
		reconciled = append(reconciled, engine.ReconcileGame(g, googleGame))
	}

	for i, lg := range googleGames {
		if matched[i] || lg.HomeTeam == "" || lg.AwayTeam == "" {
			continue
		}
		reconciled = append(reconciled, fromGoogle(lg))
	}

	return reconciled
}

func fromGoogle(lg google.LiveGame) espn.Game {
	return espn.Game{
		ID:        "google_" + lg.AwayTeam + "_" + lg.HomeTeam,
		Home:      espn.TeamMeta{Abbreviation: league.CanonicalTeam(lg.HomeTeam)},
		Away:      espn.TeamMeta{Abbreviation: league.CanonicalTeam(lg.AwayTeam)},
		HomeScore: lg.HomeScore,
		AwayScore: lg.AwayScore,
		Status:    lg.Status(),
		Period:    lg.Period,
		Clock:     lg.TimeRemaining,
	}
}
