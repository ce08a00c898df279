// Package domain defines the core entities of the WriterMorphosis content
// catalog. All catalog entities are immutable inputs for the lifetime of a
// server run; the only mutable state lives in per-session copies held by the
// session store.
package domain

import (
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/slug"
)

// Author is the byline on a post. Authors are not first-class accounts;
// they are identified by exact name match.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Post is a published article.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Image         string    `json:"image"`
	Category      string    `json:"category"` // must match exactly one Category.Name
	Tags          []string  `json:"tags"`     // display names; each normalizes to one Tag.Slug
	Author        Author    `json:"author"`
	PublishedDate time.Time `json:"published_date"` // calendar date, midnight local
	ReadTime      string    `json:"read_time"`      // display string, e.g. "8 min read"
	Views         int       `json:"views"`          // never mutated here
	Likes         int       `json:"likes"`
	CommentsCount int       `json:"comments_count"`
	URL           string    `json:"url,omitempty"` // optional external link
}

// TagSlugs returns the normalized slug form of the post's tag names.
func (p *Post) TagSlugs() []string {
	slugs := make([]string, len(p.Tags))
	for i, name := range p.Tags {
		slugs[i] = slug.Make(name)
	}
	return slugs
}

// HasTagSlug reports whether any of the post's tags normalizes to the slug.
func (p *Post) HasTagSlug(s string) bool {
	for _, name := range p.Tags {
		if slug.Make(name) == s {
			return true
		}
	}
	return false
}

// PublishedOn reports whether the post was published on the given calendar
// day. Comparison is by local year/month/day, ignoring the time component.
func (p *Post) PublishedOn(day time.Time) bool {
	y1, m1, d1 := p.PublishedDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
