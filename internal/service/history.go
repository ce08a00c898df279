package service

import (
	"context"
	"log/slog"

	"github.com/writermorphosis/writermorphosis-server/internal/history"
)

// HistoryService fronts the day-in-history lookup. The stale-response
// discard and last-good caching live in the history package; this layer
// adds request validation.
type HistoryService struct {
	svc    *history.Service
	logger *slog.Logger
}

// NewHistoryService creates a history service.
func NewHistoryService(svc *history.Service, logger *slog.Logger) *HistoryService {
	return &HistoryService{svc: svc, logger: logger}
}

// HistoryRequest is a calendar date to look up.
type HistoryRequest struct {
	Month int `json:"month" validate:"required,gte=1,lte=12"`
	Day   int `json:"day" validate:"required,gte=1,lte=31"`
}

// OnThisDay returns the events feed for the given calendar date. A lookup
// superseded by a newer date surfaces as a CONFLICT the handler can drop.
func (s *HistoryService) OnThisDay(ctx context.Context, req HistoryRequest) (*history.Feed, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}
	return s.svc.Lookup(ctx, req.Month, req.Day)
}
