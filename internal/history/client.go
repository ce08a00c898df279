// Package history fetches the day-in-history feed from the Wikimedia
// "on this day" API and guards the lookup against out-of-order responses.
package history

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

const defaultBaseURL = "https://api.wikimedia.org/feed/v1/wikipedia/en/onthisday/all"

// Event is one historical entry. Pages carry the linked Wikipedia articles
// with extract and thumbnail when present.
type Event struct {
	Text  string `json:"text"`
	Year  int    `json:"year"`
	Pages []Page `json:"pages,omitempty"`
}

// Page is a Wikipedia article attached to an event.
type Page struct {
	Title     string     `json:"title"`
	Extract   string     `json:"extract"`
	Thumbnail *Thumbnail `json:"thumbnail,omitempty"`
}

// Thumbnail is an article image reference.
type Thumbnail struct {
	Source string `json:"source"`
}

// Feed is the full response for one calendar day. Any section may be
// missing; absent sections decode as nil slices.
type Feed struct {
	Selected []Event `json:"selected,omitempty"`
	Events   []Event `json:"events,omitempty"`
	Births   []Event `json:"births,omitempty"`
	Deaths   []Event `json:"deaths,omitempty"`
}

// Client calls the Wikimedia feed API. Rate limited to stay inside the
// anonymous-access limits Wikimedia publishes.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates a history client against the public Wikimedia API.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Anonymous Wikimedia access allows 500 req/h; stay well under it.
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
		logger:      logger,
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint, used by
// tests to point at a local server.
func NewClientWithBaseURL(baseURL string, logger *slog.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

// OnThisDay fetches the feed for a month/day pair. Month must be 1-12 and
// day 1-31; the pair does not need to exist in every year (Feb 29 is fine).
// Transport failures and non-2xx responses surface as EXTERNAL errors.
func (c *Client) OnThisDay(ctx context.Context, month, day int) (*Feed, error) {
	if month < 1 || month > 12 {
		return nil, errors.Validationf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return nil, errors.Validationf("day %d out of range", day)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	lookupURL := fmt.Sprintf("%s/%d/%d", c.baseURL, month, day)
	c.logger.Debug("fetching on-this-day feed", "month", month, "day", day, "url", lookupURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeExternal, "history lookup for %d/%d", month, day)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Externalf("history lookup for %d/%d: status %d", month, day, resp.StatusCode)
	}

	var feed Feed
	if err := json.UnmarshalRead(resp.Body, &feed); err != nil {
		return nil, errors.Wrapf(err, errors.CodeExternal, "parse history response for %d/%d", month, day)
	}

	c.logger.Debug("on-this-day feed fetched",
		"month", month,
		"day", day,
		"events", len(feed.Events),
		"births", len(feed.Births),
		"deaths", len(feed.Deaths),
	)
	return &feed, nil
}
