package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

const deepSearchLimit = 20

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search posts",
		Description: "Substring search over titles and excerpts with optional sorting.",
		Tags:        []string{"Search"},
	}, s.handleSearch)

	huma.Register(s.api, huma.Operation{
		OperationID: "deepSearchPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/deep",
		Summary:     "Full-text search",
		Description: "Ranked full-text search over post bodies with highlighted fragments.",
		Tags:        []string{"Search"},
	}, s.handleDeepSearch)
}

// SearchInput carries search query parameters.
type SearchInput struct {
	Query string `query:"q" doc:"Search query"`
	Sort  string `query:"sort" enum:"relevance,recent,popular" required:"false" doc:"Result ordering"`
}

// SearchOutput wraps search results for Huma.
type SearchOutput struct {
	Body *service.SearchResult
}

// DeepSearchResponse contains ranked full-text hits.
type DeepSearchResponse struct {
	Hits  []service.DeepHit `json:"hits" doc:"Ranked hits"`
	Total int               `json:"total" doc:"Number of hits"`
}

// DeepSearchOutput wraps full-text results for Huma.
type DeepSearchOutput struct {
	Body DeepSearchResponse
}

func (s *Server) handleSearch(_ context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := s.services.Search.Search(service.SearchRequest{Query: input.Query, Sort: input.Sort})
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Body: result}, nil
}

func (s *Server) handleDeepSearch(ctx context.Context, input *SearchInput) (*DeepSearchOutput, error) {
	hits, err := s.services.Search.Deep(ctx, input.Query, deepSearchLimit)
	if err != nil {
		return nil, err
	}
	return &DeepSearchOutput{Body: DeepSearchResponse{Hits: hits, Total: len(hits)}}, nil
}
