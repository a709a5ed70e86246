package google

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/fortuna/pythia/internal/logger"
)

const (
	// BaseURL for Google Sports searches
	BaseURL = "https://www.google.com/search"

	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval to prevent rate limiting
	MinRequestInterval = 2 * time.Second
)

// Client scrapes Google's live score widget with a headless browser.
type Client struct {
	limiter *rate.Limiter
	log     *logrus.Entry

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewClient creates a new Google Sports scraper client
func NewClient(log *logrus.Entry) *Client {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Client{
		limiter:  rate.NewLimiter(rate.Every(MinRequestInterval), 1),
		log:      logger.OrDiscard(log),
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Close releases the browser allocator.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// LiveGames scrapes today's NBA scores.
func (c *Client) LiveGames(ctx context.Context) ([]LiveGame, error) {
	htmlContent, err := c.fetch(ctx, "nba games today")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live games: %w", err)
	}

	doc, err := ParseHTML(htmlContent)
	if err != nil {
		return nil, err
	}

	games := ParseLiveGames(doc)
	c.log.WithField("games", len(games)).Debug("Parsed live games from Google")
	return games, nil
}

// fetch renders the search page for query and returns its HTML.
func (c *Client) fetch(ctx context.Context, query string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(c.allocCtx)
	defer cancelBrowser()

	// stop the browser tab when the caller's context ends
	stop := context.AfterFunc(ctx, cancelBrowser)
	defer stop()

	var htmlContent string
	target := fmt.Sprintf("%s?q=%s", BaseURL, url.QueryEscape(query))

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // Allow JS to render
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return htmlContent, nil
}

// ParseHTML converts raw HTML to a goquery Document for parsing
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
