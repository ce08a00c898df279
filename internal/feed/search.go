package feed

import (
	"slices"
	"strings"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
)

// SortMode orders search results.
type SortMode string

// Search sort modes.
const (
	SortRelevance SortMode = "relevance"
	SortRecent    SortMode = "recent"
	SortPopular   SortMode = "popular"
)

// Valid reports whether the mode is one of the known values.
func (m SortMode) Valid() bool {
	switch m {
	case SortRelevance, SortRecent, SortPopular:
		return true
	}
	return false
}

// Search matches the query as a case-insensitive substring against title,
// excerpt, author name, category name, and tag names. An empty or blank
// query returns nil, which is a distinct state from a real query with no
// matches (an empty non-nil slice).
//
// Relevance mode ranks title matches ahead of everything else, stable
// within each group. Recent and popular reuse the date and view orderings.
func Search(posts []domain.Post, query string, mode SortMode) []domain.Post {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	matched := []domain.Post{}
	for i := range posts {
		if matchesQuery(&posts[i], query) {
			matched = append(matched, posts[i])
		}
	}

	switch mode {
	case SortRecent:
		slices.SortStableFunc(matched, func(a, b domain.Post) int {
			return b.PublishedDate.Compare(a.PublishedDate)
		})
	case SortPopular:
		slices.SortStableFunc(matched, func(a, b domain.Post) int {
			return b.Views - a.Views
		})
	default: // relevance
		slices.SortStableFunc(matched, func(a, b domain.Post) int {
			return titleRank(&a, query) - titleRank(&b, query)
		})
	}
	return matched
}

func matchesQuery(p *domain.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) ||
		strings.Contains(strings.ToLower(p.Author.Name), query) ||
		strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// titleRank is 0 for title matches and 1 otherwise. Relevance is only this
// binary split; there is no deeper scoring.
func titleRank(p *domain.Post, query string) int {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return 0
	}
	return 1
}
