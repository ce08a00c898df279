package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/feed"
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func (s *Server) registerFeedRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getHomeFeed",
		Method:      http.MethodGet,
		Path:        "/api/v1/feed/home",
		Summary:     "Home feed",
		Description: "Returns the home screen feed: latest posts, popular posts, the daily quote, categories, and the tag cloud. An optional date restricts the latest and popular rails to posts published on that day.",
		Tags:        []string{"Feed"},
	}, s.handleHomeFeed)

	huma.Register(s.api, huma.Operation{
		OperationID: "listPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/posts",
		Summary:     "List posts",
		Description: "Returns all posts in collection order.",
		Tags:        []string{"Posts"},
	}, s.handleListPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRandomPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/posts/random",
		Summary:     "Random posts",
		Description: "Returns all posts in a fresh shuffled order.",
		Tags:        []string{"Posts"},
	}, s.handleRandomPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPost",
		Method:      http.MethodGet,
		Path:        "/api/v1/posts/{id}",
		Summary:     "Get post",
		Description: "Returns a post with its related posts and comment thread.",
		Tags:        []string{"Posts"},
	}, s.handleGetPost)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Taxonomy"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategoryPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{slug}/posts",
		Summary:     "Posts in category",
		Tags:        []string{"Taxonomy"},
	}, s.handleCategoryPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "Tag cloud",
		Description: "Returns all tags with their computed font sizes.",
		Tags:        []string{"Taxonomy"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTagPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags/{slug}/posts",
		Summary:     "Posts with tag",
		Tags:        []string{"Taxonomy"},
	}, s.handleTagPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthorPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/{name}/posts",
		Summary:     "Posts by author",
		Description: "Returns an author's posts. The name must match the byline exactly.",
		Tags:        []string{"Posts"},
	}, s.handleAuthorPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getQuoteOfDay",
		Method:      http.MethodGet,
		Path:        "/api/v1/quote-of-day",
		Summary:     "Quote of the day",
		Tags:        []string{"Feed"},
	}, s.handleQuoteOfDay)
}

// === DTOs ===

// HomeFeedInput carries the optional publication-day filter.
type HomeFeedInput struct {
	Date string `query:"date" required:"false" doc:"Restrict latest and popular posts to this publication day (YYYY-MM-DD)"`
}

// HomeFeedOutput wraps the home feed for Huma.
type HomeFeedOutput struct {
	Body *service.HomeFeed
}

// PostsResponse contains a list of posts.
type PostsResponse struct {
	Posts []domain.Post `json:"posts" doc:"Posts"`
	Total int           `json:"total" doc:"Number of posts"`
}

// PostsOutput wraps a post list for Huma.
type PostsOutput struct {
	Body PostsResponse
}

// PostInput identifies one post.
type PostInput struct {
	ID string `path:"id" doc:"Post ID"`
}

// PostDetailOutput wraps a post detail for Huma.
type PostDetailOutput struct {
	Body *service.PostDetail
}

// CategoriesResponse contains all categories.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories" doc:"Categories"`
}

// CategoriesOutput wraps the category list for Huma.
type CategoriesOutput struct {
	Body CategoriesResponse
}

// SlugInput identifies a category or tag by slug.
type SlugInput struct {
	Slug string `path:"slug" doc:"URL-safe slug"`
}

// CategoryPostsResponse contains a category with its posts.
type CategoryPostsResponse struct {
	Category domain.Category `json:"category" doc:"Category"`
	Posts    []domain.Post   `json:"posts" doc:"Posts in the category"`
}

// CategoryPostsOutput wraps a category post list for Huma.
type CategoryPostsOutput struct {
	Body CategoryPostsResponse
}

// TagWeightsResponse contains the tag cloud.
type TagWeightsResponse struct {
	Tags []feed.TagWeight `json:"tags" doc:"Tags with computed font sizes"`
}

// TagWeightsOutput wraps the tag cloud for Huma.
type TagWeightsOutput struct {
	Body TagWeightsResponse
}

// TagPostsResponse contains a tag with its posts.
type TagPostsResponse struct {
	Tag   domain.Tag    `json:"tag" doc:"Tag"`
	Posts []domain.Post `json:"posts" doc:"Posts carrying the tag"`
}

// TagPostsOutput wraps a tag post list for Huma.
type TagPostsOutput struct {
	Body TagPostsResponse
}

// AuthorInput identifies an author by exact byline name.
type AuthorInput struct {
	Name string `path:"name" doc:"Author name, exact match"`
}

// QuoteOutput wraps the daily quote for Huma.
type QuoteOutput struct {
	Body domain.DailyQuote
}

// === Handlers ===

func (s *Server) handleHomeFeed(_ context.Context, input *HomeFeedInput) (*HomeFeedOutput, error) {
	var filterDate *time.Time
	if input.Date != "" {
		day, err := time.ParseInLocation(time.DateOnly, input.Date, time.Local)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Date must be formatted YYYY-MM-DD")
		}
		filterDate = &day
	}
	return &HomeFeedOutput{Body: s.services.Content.Home(time.Now(), filterDate)}, nil
}

func (s *Server) handleListPosts(_ context.Context, _ *struct{}) (*PostsOutput, error) {
	posts := s.services.Content.Posts()
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleRandomPosts(_ context.Context, _ *struct{}) (*PostsOutput, error) {
	posts := s.services.Content.RandomPosts()
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleGetPost(_ context.Context, input *PostInput) (*PostDetailOutput, error) {
	detail, err := s.services.Content.Post(input.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetailOutput{Body: detail}, nil
}

func (s *Server) handleListCategories(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	return &CategoriesOutput{Body: CategoriesResponse{Categories: s.services.Content.Categories()}}, nil
}

func (s *Server) handleCategoryPosts(_ context.Context, input *SlugInput) (*CategoryPostsOutput, error) {
	category, posts, err := s.services.Content.CategoryPosts(input.Slug)
	if err != nil {
		return nil, err
	}
	return &CategoryPostsOutput{Body: CategoryPostsResponse{Category: *category, Posts: posts}}, nil
}

func (s *Server) handleListTags(_ context.Context, _ *struct{}) (*TagWeightsOutput, error) {
	return &TagWeightsOutput{Body: TagWeightsResponse{Tags: s.services.Content.TagWeights()}}, nil
}

func (s *Server) handleTagPosts(_ context.Context, input *SlugInput) (*TagPostsOutput, error) {
	tag, posts, err := s.services.Content.TagPosts(input.Slug)
	if err != nil {
		return nil, err
	}
	return &TagPostsOutput{Body: TagPostsResponse{Tag: *tag, Posts: posts}}, nil
}

func (s *Server) handleAuthorPosts(_ context.Context, input *AuthorInput) (*PostsOutput, error) {
	posts, err := s.services.Content.AuthorPosts(input.Name)
	if err != nil {
		return nil, err
	}
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleQuoteOfDay(_ context.Context, _ *struct{}) (*QuoteOutput, error) {
	quote := s.services.Content.QuoteOfDay(time.Now())
	if quote == nil {
		return nil, huma.Error404NotFound("No quotes available")
	}
	return &QuoteOutput{Body: *quote}, nil
}
