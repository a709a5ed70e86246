package espn

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBuildsURLs(t *testing.T) {
	var urls []string
	client := New("http://espn.test", ClientOptions{
		RatePerSecond: 1000,
		Fetch: func(_ context.Context, url string) ([]byte, error) {
			urls = append(urls, url)
			return []byte(`{"events": []}`), nil
		},
	}, nil)

	_, err := client.Games(context.Background(), time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = client.FetchGameSummary(context.Background(), "401810001")
	require.NoError(t, err)
	_, err = client.FetchScoreboard(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"http://espn.test/basketball/nba/scoreboard?dates=20251105",
		"http://espn.test/basketball/nba/summary?event=401810001",
		"http://espn.test/basketball/nba/scoreboard",
	}, urls)
}

func TestClientRejectsHTML(t *testing.T) {
	client := New("", ClientOptions{
		RatePerSecond: 1000,
		Fetch: func(context.Context, string) ([]byte, error) {
			return []byte("<html>403 Forbidden</html>"), nil
		},
	}, nil)

	_, err := client.FetchScoreboard(context.Background(), time.Time{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "HTML error page"))
}

func TestClientBreakerOpens(t *testing.T) {
	calls := 0
	client := New("", ClientOptions{
		RatePerSecond:   1000,
		BreakerFailures: 2,
		BreakerTimeout:  time.Hour,
		Fetch: func(context.Context, string) ([]byte, error) {
			calls++
			return nil, errors.New("connection reset")
		},
	}, nil)

	for i := 0; i < 2; i++ {
		_, err := client.FetchScoreboard(context.Background(), time.Time{})
		require.Error(t, err)
	}

	_, err := client.FetchScoreboard(context.Background(), time.Time{})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, calls)
}

func TestClientHonoursCancelledContext(t *testing.T) {
	client := New("", ClientOptions{
		RatePerSecond: 0.001,
		Fetch: func(context.Context, string) ([]byte, error) {
			return []byte(`{}`), nil
		},
	}, nil)

	// first call takes the only token
	_, err := client.FetchScoreboard(context.Background(), time.Time{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.FetchScoreboard(ctx, time.Time{})
	assert.ErrorIs(t, err, context.Canceled)
}
