package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	domainerrors "github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// Number of posts shown as reading history before the session has read
// anything of its own.
const readingHistorySeedCount = 3

// LibraryService owns the session's mutable shadow of the user record:
// saved and liked posts, followed authors, the reading log, and
// notification read flags. The catalog records never change; every toggle
// lands on the session copy.
type LibraryService struct {
	store  *store.Store
	source *content.Source
	logger *slog.Logger
}

// NewLibraryService creates a library service.
func NewLibraryService(st *store.Store, source *content.Source, logger *slog.Logger) *LibraryService {
	return &LibraryService{store: st, source: source, logger: logger}
}

// library loads the session's library, seeding it from the catalog user on
// first touch.
func (s *LibraryService) library(ctx context.Context, sessionID string) (*store.Library, error) {
	library, err := s.store.Libraries.Get(ctx, sessionID)
	if err == nil {
		return library, nil
	}
	if !stderrors.Is(err, domainerrors.ErrNotFound) {
		return nil, fmt.Errorf("load library: %w", err)
	}
	return store.NewLibrary(sessionID, s.source.Catalog().CurrentUser()), nil
}

// SavedPosts returns the session's saved posts in saved order. Posts whose
// ID no longer resolves are skipped, not errors; a catalog reload may have
// removed them.
func (s *LibraryService) SavedPosts(ctx context.Context, sessionID string) ([]domain.Post, error) {
	library, err := s.library(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	catalog := s.source.Catalog()
	posts := make([]domain.Post, 0, len(library.SavedPosts))
	for _, postID := range library.SavedPosts {
		if post := catalog.PostByID(postID); post != nil {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

// SavePost adds a post to the saved list. Saving an already-saved post is
// a no-op, not an error.
func (s *LibraryService) SavePost(ctx context.Context, sessionID, postID string) error {
	if s.source.Catalog().PostByID(postID) == nil {
		return domainerrors.NotFoundf("post %q not found", postID)
	}

	library, err := s.library(ctx, sessionID)
	if err != nil {
		return err
	}
	if !library.Save(postID) {
		return nil
	}
	return s.store.Libraries.Upsert(ctx, sessionID, library)
}

// UnsavePost removes a post from the saved list. Removing an absent post
// is a no-op.
func (s *LibraryService) UnsavePost(ctx context.Context, sessionID, postID string) error {
	library, err := s.library(ctx, sessionID)
	if err != nil {
		return err
	}
	if !library.Unsave(postID) {
		return nil
	}
	return s.store.Libraries.Upsert(ctx, sessionID, library)
}

// ToggleLike flips the like flag for a post and reports the new value.
func (s *LibraryService) ToggleLike(ctx context.Context, sessionID, postID string) (bool, error) {
	if s.source.Catalog().PostByID(postID) == nil {
		return false, domainerrors.NotFoundf("post %q not found", postID)
	}

	library, err := s.library(ctx, sessionID)
	if err != nil {
		return false, err
	}
	liked := library.ToggleLike(postID)
	if err := s.store.Libraries.Upsert(ctx, sessionID, library); err != nil {
		return false, err
	}
	return liked, nil
}

// RecordRead notes that the session opened a post. Repeat reads move the
// post to the front of the log.
func (s *LibraryService) RecordRead(ctx context.Context, sessionID, postID string) error {
	log, err := s.store.ReadingLogs.Get(ctx, sessionID)
	if stderrors.Is(err, domainerrors.ErrNotFound) {
		log = &store.ReadingLog{SessionID: sessionID}
	} else if err != nil {
		return fmt.Errorf("load reading log: %w", err)
	}

	log.Record(postID, time.Now())
	return s.store.ReadingLogs.Upsert(ctx, sessionID, log)
}

// ReadingHistory returns the posts the session has read, most recent
// first. A session with no log yet gets the first few catalog posts, so
// the screen is never empty on a fresh session.
func (s *LibraryService) ReadingHistory(ctx context.Context, sessionID string) ([]domain.Post, error) {
	catalog := s.source.Catalog()

	log, err := s.store.ReadingLogs.Get(ctx, sessionID)
	if stderrors.Is(err, domainerrors.ErrNotFound) || (err == nil && len(log.Entries) == 0) {
		posts := catalog.Posts()
		if len(posts) > readingHistorySeedCount {
			posts = posts[:readingHistorySeedCount]
		}
		return posts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load reading log: %w", err)
	}

	posts := make([]domain.Post, 0, len(log.Entries))
	for _, entry := range log.Entries {
		if post := catalog.PostByID(entry.PostID); post != nil {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

// NotificationFeed is the notifications screen: items with the session's
// read flags merged in, plus the unread count.
type NotificationFeed struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// Notifications returns the notification feed with session read flags
// applied over the catalog defaults.
func (s *LibraryService) Notifications(ctx context.Context, sessionID string) (*NotificationFeed, error) {
	state, err := s.notificationState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	catalog := s.source.Catalog()
	items := make([]domain.Notification, len(catalog.Notifications()))
	unread := 0
	for i, notification := range catalog.Notifications() {
		item := notification
		item.Read = state.IsRead(&notification)
		if !item.Read {
			unread++
		}
		items[i] = item
	}
	return &NotificationFeed{Notifications: items, UnreadCount: unread}, nil
}

// MarkNotificationRead flips a notification's read flag for this session.
// Marking an already-read notification is a no-op.
func (s *LibraryService) MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error {
	found := false
	for _, notification := range s.source.Catalog().Notifications() {
		if notification.ID == notificationID {
			found = true
			break
		}
	}
	if !found {
		return domainerrors.NotFoundf("notification %q not found", notificationID)
	}

	state, err := s.notificationState(ctx, sessionID)
	if err != nil {
		return err
	}
	if !state.MarkRead(notificationID) {
		return nil
	}
	return s.store.Notifications.Upsert(ctx, sessionID, state)
}

func (s *LibraryService) notificationState(ctx context.Context, sessionID string) (*store.NotificationState, error) {
	state, err := s.store.Notifications.Get(ctx, sessionID)
	if err == nil {
		return state, nil
	}
	if !stderrors.Is(err, domainerrors.ErrNotFound) {
		return nil, fmt.Errorf("load notification state: %w", err)
	}
	return &store.NotificationState{SessionID: sessionID}, nil
}
