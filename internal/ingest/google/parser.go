package google

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/simulation"
)

// LiveGame represents a live game scraped from Google
type LiveGame struct {
	HomeTeam      string // canonical abbreviation when resolvable
	AwayTeam      string
	HomeScore     int
	AwayScore     int
	GameStatus    string
	Period        int
	TimeRemaining string
	IsLive        bool
}

// Status maps the scraped status text onto the simulation's game status.
func (g LiveGame) Status() simulation.GameStatus {
	if g.IsLive {
		return simulation.StatusInProgress
	}
	if strings.Contains(strings.ToLower(g.GameStatus), "final") {
		return simulation.StatusFinal
	}
	return simulation.StatusScheduled
}

// Progress converts the scraped game into the simulation's view of it.
func (g LiveGame) Progress() simulation.GameProgress {
	return simulation.GameProgress{
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		Status:   g.Status(),
		Period:   g.Period,
		Clock:    g.TimeRemaining,
	}
}

var (
	clockPattern    = regexp.MustCompile(`(\d{1,2}:\d{2}(?:\.\d)?)`)
	overtimePattern = regexp.MustCompile(`\b(\d)?\s*ot\b`)
	scorePattern    = regexp.MustCompile(`([A-Za-z0-9]+)\s+(\d+)\s*-\s*(\d+)\s+([A-Za-z0-9]+)`)
)

// periodMarkers is checked in order; the first marker found wins.
var periodMarkers = []struct {
	marker string
	period int
}{
	{"q1", 1}, {"1st", 1}, {"first", 1},
	{"q2", 2}, {"2nd", 2}, {"second", 2},
	{"q3", 3}, {"3rd", 3}, {"third", 3},
	{"q4", 4}, {"4th", 4}, {"fourth", 4},
	{"overtime", 5},
}

// ParseLiveGames extracts NBA games from Google search results
func ParseLiveGames(doc *goquery.Document) []LiveGame {
	var games []LiveGame

	// Strategy 1: sports card widgets
	doc.Find("div.imso_mh__lv-m-stl-cont").Each(func(i int, s *goquery.Selection) {
		if game := parseSportsCard(s); game != nil {
			games = append(games, *game)
		}
	})

	// Strategy 2: loose result divs
	if len(games) == 0 {
		doc.Find("div[class*='sports']").Each(func(i int, s *goquery.Selection) {
			if game := parseSportsDiv(s); game != nil {
				games = append(games, *game)
			}
		})
	}

	return games
}

// parseSportsCard extracts game info from a Google sports card widget
func parseSportsCard(s *goquery.Selection) *LiveGame {
	game := &LiveGame{}

	s.Find("div.imso_mh__first-tn-ed").Each(func(i int, team *goquery.Selection) {
		abbr := league.AbbreviationForName(team.Text())
		if i == 0 {
			game.HomeTeam = abbr
		} else if i == 1 {
			game.AwayTeam = abbr
		}
	})

	s.Find("div.imso_mh__l-tm-sc").Each(func(i int, score *goquery.Selection) {
		scoreVal, err := strconv.Atoi(strings.TrimSpace(score.Text()))
		if err != nil {
			return
		}
		if i == 0 {
			game.HomeScore = scoreVal
		} else if i == 1 {
			game.AwayScore = scoreVal
		}
	})

	game.GameStatus = strings.TrimSpace(s.Find("span.imso_mh__ft-mtch").Text())
	game.Period, game.TimeRemaining = parseGameClock(game.GameStatus)
	game.IsLive = game.Period > 0 || strings.Contains(strings.ToLower(game.GameStatus), "live")
	if strings.Contains(strings.ToLower(game.GameStatus), "final") {
		game.IsLive = false
	}

	if game.HomeTeam == "" || game.AwayTeam == "" {
		return nil
	}
	return game
}

// parseSportsDiv is a fallback parser for "Lakers 105 - 98 Celtics" text
func parseSportsDiv(s *goquery.Selection) *LiveGame {
	text := s.Text()
	if !strings.Contains(strings.ToLower(text), "nba") {
		return nil
	}

	matches := scorePattern.FindStringSubmatch(text)
	if len(matches) != 5 {
		return nil
	}

	away := league.AbbreviationForName(matches[1])
	home := league.AbbreviationForName(matches[4])
	if away == "" || home == "" {
		return nil
	}
	awayScore, _ := strconv.Atoi(matches[2])
	homeScore, _ := strconv.Atoi(matches[3])

	return &LiveGame{
		AwayTeam:   away,
		HomeTeam:   home,
		AwayScore:  awayScore,
		HomeScore:  homeScore,
		GameStatus: "Unknown",
	}
}

// parseGameClock extracts period and time remaining from status text such as
// "Q4 2:30", "3rd 5:45", "2OT 1:10", "Halftime" or "End of 3rd".
func parseGameClock(statusText string) (int, string) {
	statusLower := strings.ToLower(statusText)
	if strings.Contains(statusLower, "final") {
		return 0, ""
	}

	if strings.Contains(statusLower, "half") {
		return 2, "0:00"
	}

	clock := ""
	if m := clockPattern.FindStringSubmatch(statusText); len(m) > 0 {
		clock = m[1]
	}
	if strings.HasPrefix(statusLower, "end of") {
		clock = "0:00"
	}

	if m := overtimePattern.FindStringSubmatch(statusLower); len(m) > 0 {
		n := 1
		if m[1] != "" {
			n, _ = strconv.Atoi(m[1])
		}
		return 4 + n, clock
	}

	for _, pm := range periodMarkers {
		if strings.Contains(statusLower, pm.marker) {
			return pm.period, clock
		}
	}

	return 0, ""
}
