package league

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekBounds(t *testing.T) {
	// Wednesday
	monday, sunday := WeekBounds(time.Date(2025, 11, 5, 21, 15, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), sunday)

	// Sunday stays in the week that started six days earlier
	monday, sunday = WeekBounds(time.Date(2025, 11, 9, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), sunday)

	// Monday is its own start
	monday, _ = WeekBounds(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), monday)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 12, 30, 18, 0, 0, 0, time.UTC)
	days := DaysBetween(start, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.Len(t, days, 4)
	assert.Equal(t, time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), days[3])

	assert.Empty(t, DaysBetween(start, start.AddDate(0, 0, -1)))
	assert.Len(t, DaysBetween(start, start), 1)
}

func TestLoadMatchups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchups.json")
	body := `[
		{"week_start":"2025-01-13","team_a":"1","team_b":"2","score_a":88.5,"score_b":101},
		{"week_start":"2025-01-15","team_a":"3","team_b":"4"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	matchups, err := LoadMatchups(path)
	require.NoError(t, err)
	require.Len(t, matchups, 2)

	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, matchups[0].WeekStart)
	assert.Equal(t, 88.5, matchups[0].ScoreA)
	assert.Equal(t, 101.0, matchups[0].ScoreB)
	// mid-week dates land on their Monday
	assert.Equal(t, monday, matchups[1].WeekStart)
	assert.Zero(t, matchups[1].ScoreA)
}

func TestLoadMatchupsRejectsBadRows(t *testing.T) {
	for name, body := range map[string]string{
		"date":      `[{"week_start":"13/01/2025","team_a":"1","team_b":"2"}]`,
		"same team": `[{"week_start":"2025-01-13","team_a":"1","team_b":"1"}]`,
		"missing":   `[{"week_start":"2025-01-13","team_a":"1"}]`,
		"json":      `{"week_start":"2025-01-13"}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "matchups.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := LoadMatchups(path)
			assert.Error(t, err)
		})
	}
}
