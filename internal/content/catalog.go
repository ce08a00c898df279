// Package content holds the read-only content catalog: posts, categories,
// tags, comments, notifications, quizzes, and daily quotes, plus the single
// current-user record. The catalog is the source of truth for a server run;
// nothing in it mutates after construction.
package content

import (
	"fmt"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/slug"
)

// Dataset is the raw input for a catalog.
type Dataset struct {
	Posts         []domain.Post         `json:"posts"`
	Categories    []domain.Category     `json:"categories"`
	Tags          []domain.Tag          `json:"tags"`
	CurrentUser   domain.User           `json:"current_user"`
	Comments      []domain.Comment      `json:"comments"`
	Notifications []domain.Notification `json:"notifications"`
	Quizzes       []domain.Quiz         `json:"quizzes"`
	Quotes        []domain.DailyQuote   `json:"quotes"`
}

// Catalog is a validated, indexed dataset. Accessors return the backing
// slices directly; callers must treat them as read-only.
type Catalog struct {
	ds Dataset

	postByID       map[string]*domain.Post
	categoryBySlug map[string]*domain.Category
	categoryByName map[string]*domain.Category
	tagBySlug      map[string]*domain.Tag
	quizByID       map[string]*domain.Quiz

	warnings []string
}

// New builds a catalog from a dataset, validating cross-references:
// post categories must name a known category, post tags must normalize to a
// known tag slug, comments and notification links must reference known
// posts, and the user's saved posts must resolve. Slug collisions within a
// collection are rejected. Soft invariants (quiz total points) produce
// warnings instead of errors.
func New(ds Dataset) (*Catalog, error) {
	c := &Catalog{
		ds:             ds,
		postByID:       make(map[string]*domain.Post, len(ds.Posts)),
		categoryBySlug: make(map[string]*domain.Category, len(ds.Categories)),
		categoryByName: make(map[string]*domain.Category, len(ds.Categories)),
		tagBySlug:      make(map[string]*domain.Tag, len(ds.Tags)),
		quizByID:       make(map[string]*domain.Quiz, len(ds.Quizzes)),
	}

	for i := range ds.Categories {
		cat := &ds.Categories[i]
		if cat.Slug == "" {
			cat.Slug = slug.Make(cat.Name)
		}
		if _, dup := c.categoryBySlug[cat.Slug]; dup {
			return nil, errors.Validationf("duplicate category slug %q", cat.Slug)
		}
		c.categoryBySlug[cat.Slug] = cat
		c.categoryByName[cat.Name] = cat
	}

	for i := range ds.Tags {
		tag := &ds.Tags[i]
		if tag.Slug == "" {
			tag.Slug = slug.Make(tag.Name)
		}
		if _, dup := c.tagBySlug[tag.Slug]; dup {
			return nil, errors.Validationf("duplicate tag slug %q", tag.Slug)
		}
		c.tagBySlug[tag.Slug] = tag
	}

	for i := range ds.Posts {
		post := &ds.Posts[i]
		if _, dup := c.postByID[post.ID]; dup {
			return nil, errors.Validationf("duplicate post id %q", post.ID)
		}
		if _, ok := c.categoryByName[post.Category]; !ok {
			return nil, errors.Validationf("post %q references unknown category %q", post.ID, post.Category)
		}
		for _, name := range post.Tags {
			if _, ok := c.tagBySlug[slug.Make(name)]; !ok {
				return nil, errors.Validationf("post %q tag %q does not match a known tag", post.ID, name)
			}
		}
		c.postByID[post.ID] = post
	}

	for i := range ds.Comments {
		if _, ok := c.postByID[ds.Comments[i].PostID]; !ok {
			return nil, errors.Validationf("comment %q references unknown post %q", ds.Comments[i].ID, ds.Comments[i].PostID)
		}
	}

	for i := range ds.Notifications {
		n := &ds.Notifications[i]
		if !n.Type.Valid() {
			return nil, errors.Validationf("notification %q has unknown type %q", n.ID, n.Type)
		}
		if n.Link != "" {
			if _, ok := c.postByID[n.Link]; !ok {
				return nil, errors.Validationf("notification %q links unknown post %q", n.ID, n.Link)
			}
		}
	}

	for _, postID := range ds.CurrentUser.SavedPosts {
		if _, ok := c.postByID[postID]; !ok {
			return nil, errors.Validationf("current user saved unknown post %q", postID)
		}
	}

	for i := range ds.Quizzes {
		quiz := &ds.Quizzes[i]
		if _, dup := c.quizByID[quiz.ID]; dup {
			return nil, errors.Validationf("duplicate quiz id %q", quiz.ID)
		}
		if !quiz.Difficulty.Valid() {
			return nil, errors.Validationf("quiz %q has unknown difficulty %q", quiz.ID, quiz.Difficulty)
		}
		for qi, question := range quiz.Questions {
			if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
				return nil, errors.Validationf("quiz %q question %d correct answer out of range", quiz.ID, qi)
			}
			if question.Points <= 0 {
				return nil, errors.Validationf("quiz %q question %d has non-positive points", quiz.ID, qi)
			}
		}
		if got := quiz.SumPoints(); got != quiz.TotalPoints {
			// Trusted data, soft invariant only. Scoring uses question points.
			c.warnings = append(c.warnings,
				fmt.Sprintf("quiz %q total points %d != question sum %d", quiz.ID, quiz.TotalPoints, got))
		}
		c.quizByID[quiz.ID] = quiz
	}

	return c, nil
}

// Warnings returns soft-invariant violations found at load time.
func (c *Catalog) Warnings() []string { return c.warnings }

// Posts returns all posts in collection order.
func (c *Catalog) Posts() []domain.Post { return c.ds.Posts }

// Categories returns all categories in collection order.
func (c *Catalog) Categories() []domain.Category { return c.ds.Categories }

// Tags returns all tags in collection order.
func (c *Catalog) Tags() []domain.Tag { return c.ds.Tags }

// Comments returns all comments in collection order.
func (c *Catalog) Comments() []domain.Comment { return c.ds.Comments }

// Notifications returns all notifications in collection order.
func (c *Catalog) Notifications() []domain.Notification { return c.ds.Notifications }

// Quizzes returns all quizzes in collection order.
func (c *Catalog) Quizzes() []domain.Quiz { return c.ds.Quizzes }

// Quotes returns all daily quotes in collection order.
func (c *Catalog) Quotes() []domain.DailyQuote { return c.ds.Quotes }

// CurrentUser returns the session's user record.
func (c *Catalog) CurrentUser() domain.User { return c.ds.CurrentUser }

// PostByID resolves a post, or nil if unknown.
func (c *Catalog) PostByID(id string) *domain.Post { return c.postByID[id] }

// CategoryBySlug resolves a category, or nil if unknown.
func (c *Catalog) CategoryBySlug(s string) *domain.Category { return c.categoryBySlug[s] }

// CategoryByName resolves a category by exact display name, or nil.
func (c *Catalog) CategoryByName(name string) *domain.Category { return c.categoryByName[name] }

// TagBySlug resolves a tag, or nil if unknown.
func (c *Catalog) TagBySlug(s string) *domain.Tag { return c.tagBySlug[s] }

// QuizByID resolves a quiz, or nil if unknown.
func (c *Catalog) QuizByID(id string) *domain.Quiz { return c.quizByID[id] }
