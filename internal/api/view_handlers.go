package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func (s *Server) registerViewRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentView",
		Method:      http.MethodGet,
		Path:        "/api/v1/view",
		Summary:     "Current view",
		Description: "Resolves the session's navigation state into a fully populated screen.",
		Tags:        []string{"Navigation"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCurrentView)

	huma.Register(s.api, huma.Operation{
		OperationID: "navigate",
		Method:      http.MethodPost,
		Path:        "/api/v1/view/navigate",
		Summary:     "Navigate",
		Description: "Moves the session to a named page and returns the resolved screen.",
		Tags:        []string{"Navigation"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleNavigate)

	huma.Register(s.api, huma.Operation{
		OperationID: "navigateBack",
		Method:      http.MethodPost,
		Path:        "/api/v1/view/back",
		Summary:     "Go back",
		Description: "Applies the fixed back rule for the current page.",
		Tags:        []string{"Navigation"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleBack)

	huma.Register(s.api, huma.Operation{
		OperationID: "selectItem",
		Method:      http.MethodPost,
		Path:        "/api/v1/view/select/{kind}",
		Summary:     "Select item",
		Description: "Selects a post, category, tag, or author and moves to its detail page.",
		Tags:        []string{"Navigation"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSelect)
}

// NavigateInput names the destination page.
type NavigateInput struct {
	Body struct {
		Page string `json:"page" required:"true" doc:"Destination page token"`
	}
}

// SelectInput carries a selection target.
type SelectInput struct {
	Kind string `path:"kind" enum:"post,category,tag,author" doc:"Selection kind"`
	Body struct {
		Value string `json:"value" required:"true" doc:"Post ID, slug, or author name depending on kind"`
	}
}

// ScreenOutput wraps a resolved screen for Huma.
type ScreenOutput struct {
	Body *service.ScreenData
}

func (s *Server) handleCurrentView(ctx context.Context, _ *struct{}) (*ScreenOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	screen, err := s.services.View.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &ScreenOutput{Body: screen}, nil
}

func (s *Server) handleNavigate(ctx context.Context, input *NavigateInput) (*ScreenOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	screen, err := s.services.View.Navigate(ctx, sessionID, input.Body.Page)
	if err != nil {
		return nil, err
	}
	return &ScreenOutput{Body: screen}, nil
}

func (s *Server) handleBack(ctx context.Context, _ *struct{}) (*ScreenOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	screen, err := s.services.View.Back(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &ScreenOutput{Body: screen}, nil
}

func (s *Server) handleSelect(ctx context.Context, input *SelectInput) (*ScreenOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	screen, err := s.services.View.Select(ctx, sessionID, service.SelectionKind(input.Kind), input.Body.Value)
	if err != nil {
		return nil, err
	}
	return &ScreenOutput{Body: screen}, nil
}
