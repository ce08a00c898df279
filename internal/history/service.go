package history

import (
	"context"
	"log/slog"
	"sync"

	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

// Key identifies one lookup date.
type Key struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Fetcher is the slice of the client the service needs.
type Fetcher interface {
	OnThisDay(ctx context.Context, month, day int) (*Feed, error)
}

// Service serializes history lookups against a latest-key guard. Lookups
// for different dates can overlap in flight; only the response matching the
// most recently requested key is kept. A superseded response is discarded
// so it can never clobber newer state. The last good feed is cached per key
// so repeat views of the same date skip the network.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu        sync.Mutex
	latestKey Key
	lastFeed  *Feed
	lastKey   Key
}

// NewService wraps a fetcher with the stale-discard guard.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

// ErrSuperseded reports that a newer lookup was requested while this one
// was in flight. Callers drop the result; the newer lookup carries on.
var ErrSuperseded = errors.Conflict("history lookup superseded by a newer date")

// Lookup fetches the feed for the given date. If the same date is already
// cached the cached feed is returned. If another Lookup for a different
// date starts while this one is in flight, this one returns ErrSuperseded
// no matter which response arrived first.
func (s *Service) Lookup(ctx context.Context, month, day int) (*Feed, error) {
	key := Key{Month: month, Day: day}

	s.mu.Lock()
	if s.lastFeed != nil && s.lastKey == key {
		feed := s.lastFeed
		s.latestKey = key
		s.mu.Unlock()
		return feed, nil
	}
	s.latestKey = key
	s.mu.Unlock()

	feed, err := s.fetcher.OnThisDay(ctx, month, day)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestKey != key {
		s.logger.Debug("discarding stale history response",
			"month", month, "day", day,
			"latest_month", s.latestKey.Month, "latest_day", s.latestKey.Day)
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	s.lastFeed = feed
	s.lastKey = key
	return feed, nil
}
