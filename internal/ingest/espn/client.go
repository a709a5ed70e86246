package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/fortuna/pythia/internal/logger"
)

const (
	BaseURL       = "https://site.api.espn.com/apis/site/v2/sports"
	BasketballNBA = "basketball/nba"
)

// FetchFunc retrieves the raw body at url.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// ClientOptions tunes a Client. Zero values pick the defaults.
type ClientOptions struct {
	// RatePerSecond caps outgoing requests. Zero means 4/s.
	RatePerSecond float64
	// Fetch replaces the curl transport.
	Fetch FetchFunc
	// Breaker trips after this many consecutive failures. Zero means 5.
	BreakerFailures uint32
	// BreakerTimeout is how long the breaker stays open. Zero means 30s.
	BreakerTimeout time.Duration
}

// Client handles ESPN API requests
// Note: Uses curl internally because ESPN blocks Go's HTTP client fingerprint
type Client struct {
	baseURL string
	fetch   FetchFunc
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Entry
}

// New creates an ESPN client. An empty baseURL uses BaseURL.
func New(baseURL string, opts ClientOptions, log *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	log = logger.OrDiscard(log)

	perSecond := opts.RatePerSecond
	if perSecond <= 0 {
		perSecond = 4
	}
	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	timeout := opts.BreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: baseURL,
		fetch:   opts.Fetch,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		log:     log,
	}
	if c.fetch == nil {
		c.fetch = curlFetch
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "espn",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("ESPN circuit breaker state changed")
		},
	})

	log.WithField("base_url", baseURL).Debug("ESPN client created")
	return c
}

// FetchScoreboard fetches games for a specific date
// If date is zero, fetches ESPN's "today" (includes games within ~24 hours)
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) (map[string]interface{}, error) {
	var url string
	if date.IsZero() {
		url = fmt.Sprintf("%s/%s/scoreboard", c.baseURL, BasketballNBA)
	} else {
		url = fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.baseURL, BasketballNBA, date.Format("20060102"))
	}
	return c.get(ctx, url)
}

// FetchGameSummary fetches detailed game summary with box scores
func (c *Client) FetchGameSummary(ctx context.Context, gameID string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, BasketballNBA, gameID)
	return c.get(ctx, url)
}

// get waits for the limiter, then fetches and decodes through the breaker.
func (c *Client) get(ctx context.Context, url string) (map[string]interface{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		body, err := c.fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return decode(body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("espn unavailable: %w", err)
		}
		c.log.WithError(err).WithField("url", url).Warn("ESPN request failed")
		return nil, err
	}

	return out.(map[string]interface{}), nil
}

func decode(body []byte) (map[string]interface{}, error) {
	// ESPN answers blocked requests with an HTML error page
	if len(body) > 0 && body[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", string(body[:min(len(body), 200)]))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, string(body[:min(len(body), 200)]))
	}
	return result, nil
}

// curlFetch shells out to curl; ESPN rejects Go's HTTP client fingerprint.
func curlFetch(ctx context.Context, url string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "curl", "-s", "-L", "-m", "15", url)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("curl failed: %s (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("curl execution failed: %w", err)
	}
	return output, nil
}
