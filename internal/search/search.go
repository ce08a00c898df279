// Package search provides full-text "deep search" over post bodies using
// Bleve. It complements the substring search in the feed package: feed
// search is the exact-semantics screen search, this one ranks matches
// inside full article content with stemming and typo tolerance.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
)

// postDocument is the indexed shape of a post.
type postDocument struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author"`
}

func (d *postDocument) toMap() map[string]any {
	return map[string]any{
		"title":    d.Title,
		"excerpt":  d.Excerpt,
		"content":  d.Content,
		"category": d.Category,
		"tags":     d.Tags,
		"author":   d.Author,
	}
}

// Index is an in-memory Bleve index over the catalog's posts. The index is
// rebuilt whenever the catalog is swapped; reads and rebuilds may overlap.
type Index struct {
	logger *slog.Logger

	mu    sync.RWMutex
	index bleve.Index
}

// Hit is one deep-search result.
type Hit struct {
	PostID     string            `json:"post_id"`
	Score      float64           `json:"score"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// NewIndex builds an index over the given posts.
func NewIndex(posts []domain.Post, logger *slog.Logger) (*Index, error) {
	idx := &Index{logger: logger}
	if err := idx.Rebuild(posts); err != nil {
		return nil, err
	}
	return idx, nil
}

// Rebuild replaces the index contents with the given posts. Used on
// catalog hot-reload.
func (s *Index) Rebuild(posts []domain.Post) error {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := index.NewBatch()
	for i := range posts {
		p := &posts[i]
		doc := postDocument{
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Content:  p.Content,
			Category: p.Category,
			Tags:     p.Tags,
			Author:   p.Author.Name,
		}
		if err := batch.Index(p.ID, doc.toMap()); err != nil {
			return fmt.Errorf("index post %s: %w", p.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	s.mu.Lock()
	old := s.index
	s.index = index
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	s.logger.Debug("search index rebuilt", "posts", len(posts))
	return nil
}

// Query runs a ranked full-text search and returns up to limit hits with
// title and content highlights. A blank query returns nil.
func (s *Index) Query(ctx context.Context, query string, limit int) ([]Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	titleMatch := bleve.NewMatchQuery(query)
	titleMatch.SetField("title")
	titleMatch.SetBoost(3.0)

	contentMatch := bleve.NewMatchQuery(query)
	contentMatch.SetField("content")

	excerptMatch := bleve.NewMatchQuery(query)
	excerptMatch.SetField("excerpt")
	excerptMatch.SetBoost(2.0)

	fuzzy := bleve.NewFuzzyQuery(query)
	fuzzy.SetField("title")
	fuzzy.SetFuzziness(1)

	combined := bleve.NewDisjunctionQuery(titleMatch, excerptMatch, contentMatch, fuzzy)

	request := bleve.NewSearchRequestOptions(combined, limit, 0, false)
	request.Highlight = bleve.NewHighlight()
	request.Highlight.AddField("title")
	request.Highlight.AddField("content")

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := s.index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	hits := make([]Hit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		h := Hit{PostID: hit.ID, Score: hit.Score}
		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string, len(hit.Fragments))
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// Close releases the index.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	return s.index.Close()
}

// buildIndexMapping maps the post document fields: English stemming on the
// prose fields, keyword matching on category and tags.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = en.AnalyzerName
	titleField.Store = true
	titleField.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("title", titleField)

	excerptField := bleve.NewTextFieldMapping()
	excerptField.Analyzer = en.AnalyzerName
	excerptField.Store = true
	docMapping.AddFieldMappingsAt("excerpt", excerptField)

	contentField := bleve.NewTextFieldMapping()
	contentField.Analyzer = en.AnalyzerName
	contentField.Store = true
	contentField.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("content", contentField)

	authorField := bleve.NewTextFieldMapping()
	authorField.Analyzer = en.AnalyzerName
	authorField.Store = true
	docMapping.AddFieldMappingsAt("author", authorField)

	categoryField := bleve.NewTextFieldMapping()
	categoryField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("category", categoryField)

	tagsField := bleve.NewTextFieldMapping()
	tagsField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("tags", tagsField)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}
