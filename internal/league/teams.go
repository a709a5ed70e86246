// Package league models fantasy rosters and the pro teams they draw from.
package league

import "strings"

var teamAliases = map[string]string{
	"PHO":  "PHX",
	"GS":   "GSW",
	"SA":   "SAS",
	"NO":   "NOP",
	"NOK":  "NOP",
	"NY":   "NYK",
	"UTAH": "UTA",
	"WSH":  "WAS",
	"PHL":  "PHI",
	"BRK":  "BKN",
	"CHO":  "CHA",
}

// CanonicalTeam normalises a pro team code so every feed agrees.
func CanonicalTeam(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if canon, ok := teamAliases[code]; ok {
		return canon
	}
	return code
}

// teamNames maps lower-case nicknames and full names to abbreviations.
var teamNames = map[string]string{
	"hawks":         "ATL",
	"celtics":       "BOS",
	"nets":          "BKN",
	"hornets":       "CHA",
	"bulls":         "CHI",
	"cavaliers":     "CLE",
	"mavericks":     "DAL",
	"nuggets":       "DEN",
	"pistons":       "DET",
	"warriors":      "GSW",
	"rockets":       "HOU",
	"pacers":        "IND",
	"clippers":      "LAC",
	"la clippers":   "LAC",
	"lakers":        "LAL",
	"grizzlies":     "MEM",
	"heat":          "MIA",
	"bucks":         "MIL",
	"timberwolves":  "MIN",
	"pelicans":      "NOP",
	"knicks":        "NYK",
	"thunder":       "OKC",
	"magic":         "ORL",
	"76ers":         "PHI",
	"sixers":        "PHI",
	"suns":          "PHX",
	"trail blazers": "POR",
	"blazers":       "POR",
	"kings":         "SAC",
	"spurs":         "SAS",
	"raptors":       "TOR",
	"jazz":          "UTA",
	"wizards":       "WAS",
}

// AbbreviationForName resolves a scraped team name such as "Boston Celtics"
// or "Celtics". Codes pass through CanonicalTeam. Unknown names return "".
func AbbreviationForName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return ""
	}
	if abbr, ok := teamNames[lower]; ok {
		return abbr
	}

	// longest key first so "trail blazers" wins over "blazers"
	best := ""
	for key := range teamNames {
		if strings.Contains(lower, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		return teamNames[best]
	}

	if len(lower) <= 4 && !strings.Contains(lower, " ") {
		return CanonicalTeam(lower)
	}
	return ""
}
