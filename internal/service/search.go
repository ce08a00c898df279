package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/feed"
	"github.com/writermorphosis/writermorphosis-server/internal/search"
)

// SearchService answers both search surfaces: the substring search the
// reader screens use, and the analyzed deep search over full post bodies.
// The deep index follows the catalog; a reload rebuilds it lazily on the
// next query.
type SearchService struct {
	source *content.Source
	logger *slog.Logger

	mu      sync.Mutex
	index   *search.Index
	indexed *content.Catalog
}

// NewSearchService creates a search service. The deep index is built on
// first use.
func NewSearchService(source *content.Source, logger *slog.Logger) *SearchService {
	return &SearchService{source: source, logger: logger}
}

// SearchRequest is a reader search.
type SearchRequest struct {
	Query string `json:"query"`
	Sort  string `json:"sort" validate:"omitempty,oneof=relevance recent popular"`
}

// SearchResult distinguishes an empty query from a query with no matches:
// an empty query is not a search at all.
type SearchResult struct {
	Posts      []domain.Post `json:"posts"`
	Total      int           `json:"total"`
	EmptyQuery bool          `json:"empty_query,omitempty"`
}

// Search runs the substring search over title, excerpt, author, category,
// and tags.
func (s *SearchService) Search(req SearchRequest) (*SearchResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	mode := feed.SortMode(req.Sort)
	if req.Sort == "" {
		mode = feed.SortRelevance
	}

	posts := feed.Search(s.source.Catalog().Posts(), req.Query, mode)
	if posts == nil {
		return &SearchResult{EmptyQuery: true}, nil
	}
	return &SearchResult{Posts: posts, Total: len(posts)}, nil
}

// DeepHit is one deep-search match: the post plus its score and highlight
// fragments.
type DeepHit struct {
	Post       domain.Post         `json:"post"`
	Score      float64             `json:"score"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Deep runs the analyzed full-text search over post bodies.
func (s *SearchService) Deep(ctx context.Context, query string, limit int) ([]DeepHit, error) {
	catalog := s.source.Catalog()
	index, err := s.indexFor(catalog)
	if err != nil {
		return nil, err
	}

	hits, err := index.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	results := make([]DeepHit, 0, len(hits))
	for _, hit := range hits {
		post := catalog.PostByID(hit.PostID)
		if post == nil {
			continue
		}
		results = append(results, DeepHit{
			Post:       *post,
			Score:      hit.Score,
			Highlights: hit.Highlights,
		})
	}
	return results, nil
}

// Close releases the deep index.
func (s *SearchService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.indexed = nil
	return err
}

// indexFor returns the deep index for the catalog snapshot, rebuilding it
// when the snapshot changed since the last query.
func (s *SearchService) indexFor(catalog *content.Catalog) (*search.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index != nil && s.indexed == catalog {
		return s.index, nil
	}

	index, err := search.NewIndex(catalog.Posts(), s.logger)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "build search index")
	}

	if s.index != nil {
		if err := s.index.Close(); err != nil && s.logger != nil {
			s.logger.Warn("failed to close old search index", "error", err)
		}
	}
	s.index = index
	s.indexed = catalog
	return index, nil
}
