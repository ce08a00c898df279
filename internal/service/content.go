package service

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/feed"
)

// Home feed slice sizes.
const (
	homeLatestCount  = 6
	homePopularCount = 6
	relatedCount     = 3
)

// ContentService serves read-only views over the catalog: feeds, post
// detail, taxonomy listings, and the daily quote. Views never change here;
// they only move when a catalog reload brings new numbers.
type ContentService struct {
	source *content.Source
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewContentService creates a content service over the catalog source.
func NewContentService(source *content.Source, logger *slog.Logger) *ContentService {
	return &ContentService{
		source: source,
		logger: logger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Catalog returns the current catalog snapshot.
func (s *ContentService) Catalog() *content.Catalog {
	return s.source.Catalog()
}

// HomeFeed is everything the home screen renders. FilterDate echoes the
// active publication-day filter so clients can render a clear affordance.
type HomeFeed struct {
	Latest      []domain.Post      `json:"latest"`
	Popular     []domain.Post      `json:"popular"`
	Quote       *domain.DailyQuote `json:"quote,omitempty"`
	Categories  []domain.Category  `json:"categories"`
	TagWeights  []feed.TagWeight   `json:"tag_weights"`
	UnreadCount int                `json:"unread_count"`
	FilterDate  string             `json:"filter_date,omitempty"`
}

// Home assembles the home feed for the given moment. The quote rotates by
// calendar day; everything else follows the catalog. A non-nil filterDate
// restricts the latest and popular rails to posts published on that day.
// Both rails empty is a valid state, not an error.
func (s *ContentService) Home(now time.Time, filterDate *time.Time) *HomeFeed {
	catalog := s.Catalog()
	posts := catalog.Posts()
	home := &HomeFeed{
		Quote:       feed.QuoteOfDay(catalog.Quotes(), now),
		Categories:  catalog.Categories(),
		TagWeights:  feed.TagWeights(catalog.Tags()),
		UnreadCount: feed.UnreadCount(catalog.Notifications()),
	}
	if filterDate != nil {
		posts = feed.ByDate(posts, *filterDate)
		home.FilterDate = filterDate.Format(time.DateOnly)
	}
	home.Latest = feed.Latest(posts, homeLatestCount)
	home.Popular = feed.Popular(posts, homePopularCount)
	return home
}

// Posts returns every post in collection order.
func (s *ContentService) Posts() []domain.Post {
	return s.Catalog().Posts()
}

// PostDetail is a post plus the secondary content its screen shows.
type PostDetail struct {
	Post     domain.Post      `json:"post"`
	Related  []domain.Post    `json:"related"`
	Comments []domain.Comment `json:"comments"`
}

// Post returns one post with its related posts and comment thread.
func (s *ContentService) Post(id string) (*PostDetail, error) {
	catalog := s.Catalog()
	post := catalog.PostByID(id)
	if post == nil {
		return nil, errors.NotFoundf("post %q not found", id)
	}
	return &PostDetail{
		Post:     *post,
		Related:  feed.Related(post, catalog.Posts(), relatedCount),
		Comments: feed.CommentsFor(catalog.Comments(), post.ID),
	}, nil
}

// RandomPosts returns the posts in a fresh shuffled order.
func (s *ContentService) RandomPosts() []domain.Post {
	posts := s.Catalog().Posts()
	s.mu.Lock()
	defer s.mu.Unlock()
	return feed.Shuffle(posts, s.rng)
}

// Categories returns all categories.
func (s *ContentService) Categories() []domain.Category {
	return s.Catalog().Categories()
}

// CategoryPosts returns the category and its posts in collection order.
func (s *ContentService) CategoryPosts(slug string) (*domain.Category, []domain.Post, error) {
	catalog := s.Catalog()
	category := catalog.CategoryBySlug(slug)
	if category == nil {
		return nil, nil, errors.NotFoundf("category %q not found", slug)
	}
	return category, feed.ByCategory(catalog.Posts(), slug), nil
}

// TagWeights returns the tag cloud with computed font sizes.
func (s *ContentService) TagWeights() []feed.TagWeight {
	return feed.TagWeights(s.Catalog().Tags())
}

// TagPosts returns the tag and its posts.
func (s *ContentService) TagPosts(slug string) (*domain.Tag, []domain.Post, error) {
	catalog := s.Catalog()
	tag := catalog.TagBySlug(slug)
	if tag == nil {
		return nil, nil, errors.NotFoundf("tag %q not found", slug)
	}
	return tag, feed.ByTag(catalog.Posts(), slug), nil
}

// AuthorPosts returns the author's posts. An author with no posts does not
// exist as far as the catalog is concerned.
func (s *ContentService) AuthorPosts(name string) ([]domain.Post, error) {
	posts := feed.ByAuthor(s.Catalog().Posts(), name)
	if len(posts) == 0 {
		return nil, errors.NotFoundf("author %q not found", name)
	}
	return posts, nil
}

// QuoteOfDay returns the quote for the given moment, or nil when the
// catalog carries no quotes.
func (s *ContentService) QuoteOfDay(now time.Time) *domain.DailyQuote {
	return feed.QuoteOfDay(s.Catalog().Quotes(), now)
}

// Quizzes returns all quiz definitions.
func (s *ContentService) Quizzes() []domain.Quiz {
	return s.Catalog().Quizzes()
}
