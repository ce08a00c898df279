package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/history"
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getDayInHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/{month}/{day}",
		Summary:     "Day in history",
		Description: "Returns historical events for a calendar date, cached per date.",
		Tags:        []string{"History"},
	}, s.handleDayInHistory)
}

// HistoryInput identifies a calendar date.
type HistoryInput struct {
	Month int `path:"month" minimum:"1" maximum:"12" doc:"Month, 1 through 12"`
	Day   int `path:"day" minimum:"1" maximum:"31" doc:"Day of month"`
}

// HistoryOutput wraps a day-in-history feed for Huma.
type HistoryOutput struct {
	Body *history.Feed
}

func (s *Server) handleDayInHistory(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	feed, err := s.services.History.OnThisDay(ctx, service.HistoryRequest{Month: input.Month, Day: input.Day})
	if err != nil {
		return nil, err
	}
	return &HistoryOutput{Body: feed}, nil
}
