// Package feed derives display slices from the content catalog: popular and
// latest rails, category/tag/author/date filters, search, related posts, the
// daily quote, and tag cloud sizing. Every function is pure and stable with
// respect to collection order, so the same catalog always produces the same
// feed.
package feed

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/slug"
)

// Popular returns up to n posts sorted by views descending. Ties keep
// collection order.
func Popular(posts []domain.Post, n int) []domain.Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b domain.Post) int {
		return b.Views - a.Views
	})
	return truncate(sorted, n)
}

// Latest returns up to n posts sorted by published date descending.
// Comparison is by calendar date, not by formatted string.
func Latest(posts []domain.Post, n int) []domain.Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b domain.Post) int {
		return b.PublishedDate.Compare(a.PublishedDate)
	})
	return truncate(sorted, n)
}

// ByDate returns posts published on the given calendar day. An empty result
// is a valid state, not an error.
func ByDate(posts []domain.Post, day time.Time) []domain.Post {
	var out []domain.Post
	for i := range posts {
		if posts[i].PublishedOn(day) {
			out = append(out, posts[i])
		}
	}
	return out
}

// ByCategory returns posts whose category resolves to the given slug.
func ByCategory(posts []domain.Post, categorySlug string) []domain.Post {
	var out []domain.Post
	for i := range posts {
		if slug.Make(posts[i].Category) == categorySlug {
			out = append(out, posts[i])
		}
	}
	return out
}

// ByTag returns posts carrying a tag that normalizes to the given slug.
func ByTag(posts []domain.Post, tagSlug string) []domain.Post {
	var out []domain.Post
	for i := range posts {
		if posts[i].HasTagSlug(tagSlug) {
			out = append(out, posts[i])
		}
	}
	return out
}

// ByAuthor returns posts with an exact author name match.
func ByAuthor(posts []domain.Post, authorName string) []domain.Post {
	var out []domain.Post
	for i := range posts {
		if posts[i].Author.Name == authorName {
			out = append(out, posts[i])
		}
	}
	return out
}

// Related returns up to n posts sharing the post's category, excluding the
// post itself, in collection order. No secondary ranking.
func Related(post *domain.Post, posts []domain.Post, n int) []domain.Post {
	var out []domain.Post
	for i := range posts {
		if posts[i].ID == post.ID {
			continue
		}
		if posts[i].Category == post.Category {
			out = append(out, posts[i])
		}
	}
	return truncate(out, n)
}

// SavedPosts returns the user's saved posts in saved order. Unresolvable
// IDs are skipped.
func SavedPosts(posts []domain.Post, user *domain.User) []domain.Post {
	byID := make(map[string]*domain.Post, len(posts))
	for i := range posts {
		byID[posts[i].ID] = &posts[i]
	}

	var out []domain.Post
	for _, id := range user.SavedPosts {
		if p, ok := byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// CommentsFor returns top-level comments on the post in collection order.
func CommentsFor(comments []domain.Comment, postID string) []domain.Comment {
	var out []domain.Comment
	for i := range comments {
		if comments[i].PostID == postID {
			out = append(out, comments[i])
		}
	}
	return out
}

// UnreadCount counts notifications not yet marked read.
func UnreadCount(notifications []domain.Notification) int {
	n := 0
	for i := range notifications {
		if !notifications[i].Read {
			n++
		}
	}
	return n
}

// Shuffle returns the posts in a random order drawn from rng. Callers pass
// a seeded source in tests for deterministic output.
func Shuffle(posts []domain.Post, rng *rand.Rand) []domain.Post {
	out := slices.Clone(posts)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// QuoteOfDay picks the quote at index (day of year mod quote count). The
// result depends only on the calendar day, never on the time of day.
func QuoteOfDay(quotes []domain.DailyQuote, now time.Time) *domain.DailyQuote {
	if len(quotes) == 0 {
		return nil
	}
	return &quotes[now.YearDay()%len(quotes)]
}

func truncate(posts []domain.Post, n int) []domain.Post {
	if n < 0 {
		n = 0
	}
	if n < len(posts) {
		return posts[:n]
	}
	return posts
}
