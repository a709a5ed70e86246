package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/pythia/internal/league"
	"github.com/fortuna/pythia/internal/scoring"
	"github.com/fortuna/pythia/internal/simulation"
)

// ESPN stat labels for dynamic parsing (more robust than hardcoded indices)
const (
	statLabelPoints = "PTS"
	statLabelReb    = "REB"
	statLabelAst    = "AST"
	statLabelStl    = "STL"
	statLabelBlk    = "BLK"
	statLabelTO     = "TO"
	statLabelFG     = "FG"  // Format: "X-Y"
	statLabel3PT    = "3PT" // Format: "X-Y"
	statLabelFT     = "FT"  // Format: "X-Y"
)

// ParseScoreboard extracts the events of a scoreboard response.
func ParseScoreboard(scoreboardData map[string]interface{}) ([]Game, error) {
	events := extractArray(scoreboardData, "events")
	if len(events) == 0 {
		// No games on this date - this is normal, not an error
		return []Game{}, nil
	}

	games := make([]Game, 0, len(events))
	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}
		game, err := parseEvent(event)
		if err != nil {
			continue
		}
		games = append(games, game)
	}

	return games, nil
}

func parseEvent(event map[string]interface{}) (Game, error) {
	game := Game{ID: extractString(event, "id")}

	if dateStr := extractString(event, "date"); dateStr != "" {
		gameTime, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			// ESPN sometimes omits seconds: "2025-11-15T01:00Z"
			gameTime, err = time.Parse("2006-01-02T15:04Z", dateStr)
		}
		if err == nil {
			game.StartTime = gameTime
		}
	}

	status := extractMap(event, "status")
	game.Status = parseGameStatus(status)
	game.Period = extractInt(status, "period")
	game.Clock = extractString(status, "displayClock")

	competitions := extractArray(event, "competitions")
	if len(competitions) == 0 {
		return Game{}, fmt.Errorf("no competitions found for game %s", game.ID)
	}

	comp, _ := competitions[0].(map[string]interface{})
	competitors := extractArray(comp, "competitors")
	if len(competitors) < 2 {
		return Game{}, fmt.Errorf("insufficient competitors for game %s", game.ID)
	}

	for _, compInterface := range competitors {
		competitor, ok := compInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(competitor, "team")
		meta := TeamMeta{
			Abbreviation: league.CanonicalTeam(extractString(team, "abbreviation")),
			ESPNID:       extractString(team, "id"),
			DisplayName:  extractString(team, "displayName"),
		}
		score := extractInt(competitor, "score")

		switch extractString(competitor, "homeAway") {
		case "home":
			game.Home, game.HomeScore = meta, score
		case "away":
			game.Away, game.AwayScore = meta, score
		}
	}

	if game.Home.Abbreviation == "" || game.Away.Abbreviation == "" {
		return Game{}, fmt.Errorf("missing home or away team for game %s", game.ID)
	}
	return game, nil
}

// ParseBoxScore returns one line per athlete who played in the game.
// Athletes flagged didNotPlay are skipped.
func ParseBoxScore(summaryData map[string]interface{}, gameID string) ([]simulation.BoxLine, error) {
	boxscore := extractMap(summaryData, "boxscore")
	if len(boxscore) == 0 {
		return nil, fmt.Errorf("no boxscore data found")
	}

	// ESPN API uses either "players" or "teams" depending on the endpoint/version
	playersData := extractArray(boxscore, "players")
	if len(playersData) == 0 {
		playersData = extractArray(boxscore, "teams")
	}
	if len(playersData) == 0 {
		// Pre-game summaries carry no players yet
		return []simulation.BoxLine{}, nil
	}

	var lines []simulation.BoxLine
	for _, teamDataInterface := range playersData {
		teamData, ok := teamDataInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(teamData, "team")
		teamAbbr := league.CanonicalTeam(extractString(team, "abbreviation"))

		statistics := extractArray(teamData, "statistics")
		if len(statistics) == 0 {
			continue
		}
		statGroup, _ := statistics[0].(map[string]interface{})

		// Build stat name -> index mapping for dynamic parsing
		statIndexMap := make(map[string]int)
		for i, nameInterface := range extractArray(statGroup, "names") {
			if name, ok := nameInterface.(string); ok {
				statIndexMap[name] = i
			}
		}

		for _, athleteInterface := range extractArray(statGroup, "athletes") {
			athleteData, ok := athleteInterface.(map[string]interface{})
			if !ok {
				continue
			}
			if didNotPlay, ok := athleteData["didNotPlay"].(bool); ok && didNotPlay {
				continue
			}

			athleteID := extractString(extractMap(athleteData, "athlete"), "id")
			stats := extractArray(athleteData, "stats")
			if athleteID == "" || len(stats) == 0 {
				continue
			}

			lines = append(lines, simulation.BoxLine{
				GameID:   gameID,
				PlayerID: athleteID,
				Team:     teamAbbr,
				Stats:    parseStatLine(stats, statIndexMap),
			})
		}
	}

	return lines, nil
}

func parseStatLine(stats []interface{}, statIndexMap map[string]int) scoring.StatLine {
	getStat := func(label string) interface{} {
		if idx, ok := statIndexMap[label]; ok && idx < len(stats) {
			return stats[idx]
		}
		return nil
	}

	var line scoring.StatLine
	line.Points = parseInt(getStat(statLabelPoints))
	line.Rebounds = parseInt(getStat(statLabelReb))
	line.Assists = parseInt(getStat(statLabelAst))
	line.Steals = parseInt(getStat(statLabelStl))
	line.Blocks = parseInt(getStat(statLabelBlk))
	line.Turnovers = parseInt(getStat(statLabelTO))

	if fg := getStat(statLabelFG); fg != nil {
		line.FieldGoalsMade = parseShotFormat(fmt.Sprint(fg))[0]
	}
	if threes := getStat(statLabel3PT); threes != nil {
		line.ThreePointersMade = parseShotFormat(fmt.Sprint(threes))[0]
	}
	if ft := getStat(statLabelFT); ft != nil {
		made := parseShotFormat(fmt.Sprint(ft))
		line.FreeThrowsMade = made[0]
		line.FreeThrowsAttempted = made[1]
	}
	return line
}

// Helper functions

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func extractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	case int:
		return val
	default:
		return 0
	}
}

func parseShotFormat(shotStr string) [2]int {
	parts := strings.Split(shotStr, "-")
	if len(parts) != 2 {
		return [2]int{0, 0}
	}
	made, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	attempted, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	return [2]int{made, attempted}
}

func parseGameStatus(status map[string]interface{}) simulation.GameStatus {
	statusType := extractMap(status, "type")

	if completed, ok := statusType["completed"].(bool); ok && completed {
		return simulation.StatusFinal
	}

	switch extractString(statusType, "state") {
	case "in":
		return simulation.StatusInProgress
	case "post":
		return simulation.StatusFinal
	default:
		return simulation.StatusScheduled
	}
}
