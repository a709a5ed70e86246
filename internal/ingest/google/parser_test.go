package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pythia/internal/simulation"
)

const cardsHTML = `<html><body>
<div class="imso_mh__lv-m-stl-cont">
  <div class="imso_mh__first-tn-ed">Lakers</div>
  <div class="imso_mh__first-tn-ed">Boston Celtics</div>
  <div class="imso_mh__l-tm-sc">88</div>
  <div class="imso_mh__l-tm-sc">91</div>
  <span class="imso_mh__ft-mtch">Q4 2:30</span>
</div>
<div class="imso_mh__lv-m-stl-cont">
  <div class="imso_mh__first-tn-ed">Heat</div>
  <div class="imso_mh__first-tn-ed">Knicks</div>
  <div class="imso_mh__l-tm-sc">120</div>
  <div class="imso_mh__l-tm-sc">114</div>
  <span class="imso_mh__ft-mtch">Final</span>
</div>
<div class="imso_mh__lv-m-stl-cont">
  <div class="imso_mh__first-tn-ed">Nobodies</div>
</div>
</body></html>`

func TestParseLiveGamesCards(t *testing.T) {
	doc, err := ParseHTML(cardsHTML)
	require.NoError(t, err)

	games := ParseLiveGames(doc)
	require.Len(t, games, 2)

	assert.Equal(t, LiveGame{
		HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: 88, AwayScore: 91,
		GameStatus: "Q4 2:30", Period: 4, TimeRemaining: "2:30", IsLive: true,
	}, games[0])
	assert.Equal(t, simulation.StatusInProgress, games[0].Status())

	assert.Equal(t, "MIA", games[1].HomeTeam)
	assert.False(t, games[1].IsLive)
	assert.Equal(t, simulation.StatusFinal, games[1].Status())
	assert.Equal(t, simulation.GameProgress{HomeTeam: "MIA", AwayTeam: "NYK", Status: simulation.StatusFinal}, games[1].Progress())
}

func TestParseLiveGamesFallbackDiv(t *testing.T) {
	doc, err := ParseHTML(`<div class="sports-result">NBA Lakers 105 - 98 Celtics</div>`)
	require.NoError(t, err)

	games := ParseLiveGames(doc)
	require.Len(t, games, 1)
	assert.Equal(t, "LAL", games[0].AwayTeam)
	assert.Equal(t, "BOS", games[0].HomeTeam)
	assert.Equal(t, 105, games[0].AwayScore)
	assert.Equal(t, simulation.StatusScheduled, games[0].Status())
}

func TestParseGameClock(t *testing.T) {
	tests := []struct {
		in     string
		period int
		clock  string
	}{
		{"Q1 11:02", 1, "11:02"},
		{"3rd 5:45", 3, "5:45"},
		{"4th Quarter 1:23", 4, "1:23"},
		{"Halftime", 2, "0:00"},
		{"End of 3rd", 3, "0:00"},
		{"OT 1:12", 5, "1:12"},
		{"2OT 3:00", 6, "3:00"},
		{"Not started", 0, ""},
		{"Final", 0, ""},
		{"Final/OT", 0, ""},
		{"Today 7:30 PM", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			period, clock := parseGameClock(tt.in)
			assert.Equal(t, tt.period, period)
			assert.Equal(t, tt.clock, clock)
		})
	}
}
