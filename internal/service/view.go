package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/feed"
	"github.com/writermorphosis/writermorphosis-server/internal/nav"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// ViewService is the navigation controller: it loads a session's view
// state, applies one transition, persists the result, and resolves the
// screen together with the data that screen renders.
type ViewService struct {
	store    *store.Store
	contents *ContentService
	library  *LibraryService
	logger   *slog.Logger
}

// NewViewService creates a view service.
func NewViewService(st *store.Store, contents *ContentService, library *LibraryService, logger *slog.Logger) *ViewService {
	return &ViewService{store: st, contents: contents, library: library, logger: logger}
}

// SelectionKind names the parameter a selection transition carries.
type SelectionKind string

// Selection kinds.
const (
	SelectPost     SelectionKind = "post"
	SelectCategory SelectionKind = "category"
	SelectTag      SelectionKind = "tag"
	SelectAuthor   SelectionKind = "author"
)

// ScreenData is a resolved screen plus everything it renders. Only the
// fields for the active page are populated.
type ScreenData struct {
	Screen nav.Screen `json:"screen"`
	State  nav.State  `json:"state"`

	Home          *HomeFeed         `json:"home,omitempty"`
	PostDetail    *PostDetail       `json:"post_detail,omitempty"`
	Posts         []domain.Post     `json:"posts,omitempty"`
	Categories    []domain.Category `json:"categories,omitempty"`
	TagWeights    []feed.TagWeight  `json:"tag_weights,omitempty"`
	Quizzes       []domain.Quiz     `json:"quizzes,omitempty"`
	Notifications *NotificationFeed `json:"notifications,omitempty"`
	Profile       *Profile          `json:"profile,omitempty"`
}

// Current resolves the session's stored view without applying a
// transition.
func (s *ViewService) Current(ctx context.Context, sessionID string) (*ScreenData, error) {
	session, err := s.store.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, session)
}

// Navigate applies a bare page transition and returns the new screen.
func (s *ViewService) Navigate(ctx context.Context, sessionID string, page string) (*ScreenData, error) {
	return s.transition(ctx, sessionID, func(state *nav.State) error {
		return state.Navigate(nav.Page(page))
	})
}

// Back applies the back transition. Pages without a back rule make this a
// no-op.
func (s *ViewService) Back(ctx context.Context, sessionID string) (*ScreenData, error) {
	return s.transition(ctx, sessionID, func(state *nav.State) error {
		state.Back()
		return nil
	})
}

// Select applies a selection transition. Opening a post also records it in
// the session's reading log.
func (s *ViewService) Select(ctx context.Context, sessionID string, kind SelectionKind, value string) (*ScreenData, error) {
	data, err := s.transition(ctx, sessionID, func(state *nav.State) error {
		switch kind {
		case SelectPost:
			return state.SelectPost(value)
		case SelectCategory:
			return state.SelectCategory(value)
		case SelectTag:
			return state.SelectTag(value)
		case SelectAuthor:
			return state.SelectAuthor(value)
		}
		return errors.InvalidNavigationf("unknown selection kind %q", kind)
	})
	if err != nil {
		return nil, err
	}

	// Only a selection that actually resolved counts as a read.
	if kind == SelectPost && data.Screen.Page == nav.PagePost && !data.Screen.FellBack {
		if err := s.library.RecordRead(ctx, sessionID, value); err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to record read", "session_id", sessionID, "post_id", value, "error", err)
			}
		}
	}
	return data, nil
}

func (s *ViewService) transition(ctx context.Context, sessionID string, apply func(*nav.State) error) (*ScreenData, error) {
	session, err := s.store.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(&session.View); err != nil {
		return nil, err
	}

	session.Touch(time.Now())
	if err := s.store.Sessions.Update(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.resolve(ctx, session)
}

// resolve maps the session's state to a screen and attaches that screen's
// data. A fallback (stale selection, corrupted page) also normalizes the
// stored state back to home so the session doesn't fall back forever.
func (s *ViewService) resolve(ctx context.Context, session *store.Session) (*ScreenData, error) {
	catalog := s.contents.Catalog()
	screen := nav.Resolve(session.View, catalog)

	if screen.FellBack {
		session.View.NavigateHome()
		if err := s.store.Sessions.Update(ctx, session.ID, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	data := &ScreenData{Screen: screen, State: session.View}

	switch screen.Page {
	case nav.PageHome:
		data.Home = s.contents.Home(time.Now(), nil)

	case nav.PagePost:
		detail, err := s.contents.Post(screen.Post.ID)
		if err != nil {
			return nil, err
		}
		data.PostDetail = detail

	case nav.PageCategory:
		_, posts, err := s.contents.CategoryPosts(screen.Category.Slug)
		if err != nil {
			return nil, err
		}
		data.Posts = posts

	case nav.PageTag:
		_, posts, err := s.contents.TagPosts(screen.Tag.Slug)
		if err != nil {
			return nil, err
		}
		data.Posts = posts

	case nav.PageAuthor:
		posts, err := s.contents.AuthorPosts(screen.AuthorName)
		if err != nil {
			return nil, err
		}
		data.Posts = posts

	case nav.PageCategories:
		data.Categories = s.contents.Categories()

	case nav.PageTags:
		data.TagWeights = s.contents.TagWeights()

	case nav.PageRandom:
		data.Posts = s.contents.RandomPosts()

	case nav.PageQuiz:
		data.Quizzes = s.contents.Quizzes()

	case nav.PageNotifications:
		notifications, err := s.library.Notifications(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		data.Notifications = notifications

	case nav.PageSaved:
		posts, err := s.library.SavedPosts(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		data.Posts = posts

	case nav.PageReadingHistory:
		posts, err := s.library.ReadingHistory(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		data.Posts = posts

	case nav.PageProfile:
		profile, err := s.profile(ctx, session)
		if err != nil {
			return nil, err
		}
		data.Profile = profile
	}

	return data, nil
}

func (s *ViewService) profile(ctx context.Context, session *store.Session) (*Profile, error) {
	user := s.contents.Catalog().CurrentUser()
	library, err := s.library.library(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:       user,
		SavedCount: len(library.SavedPosts),
		Following:  library.Following,
		LoggedIn:   session.View.LoggedIn,
	}, nil
}
