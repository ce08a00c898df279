package store

import (
	"slices"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/nav"
	"github.com/writermorphosis/writermorphosis-server/internal/quiz"
)

// Session is one reader session: its view state plus bookkeeping. Dependent
// records (attempt, library, reading log, notification state) share the
// session ID as their key.
type Session struct {
	ID         string    `json:"id"`
	View       nav.State `json:"view"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// NewSession creates a session at the initial view state.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		View:       nav.NewState(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Touch updates the last-seen timestamp.
func (s *Session) Touch(now time.Time) {
	s.LastSeenAt = now
}

// AttemptRecord wraps a quiz attempt for storage. The quiz definition is
// re-attached from the catalog after load.
type AttemptRecord struct {
	SessionID string        `json:"session_id"`
	Attempt   *quiz.Attempt `json:"attempt"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Library is the session's copy of the user's toggles: saved and liked
// posts and followed authors. It starts from the catalog user's lists and
// diverges from there; the catalog record itself never changes.
type Library struct {
	SessionID  string   `json:"session_id"`
	SavedPosts []string `json:"saved_posts"`
	LikedPosts []string `json:"liked_posts"`
	Following  []string `json:"following"`
}

// NewLibrary seeds a library from the catalog user.
func NewLibrary(sessionID string, user domain.User) *Library {
	return &Library{
		SessionID:  sessionID,
		SavedPosts: slices.Clone(user.SavedPosts),
		Following:  slices.Clone(user.Following),
	}
}

// Save adds a post to the saved list. Returns false if already saved.
func (l *Library) Save(postID string) bool {
	if slices.Contains(l.SavedPosts, postID) {
		return false
	}
	l.SavedPosts = append(l.SavedPosts, postID)
	return true
}

// Unsave removes a post from the saved list. Returns false if absent.
func (l *Library) Unsave(postID string) bool {
	i := slices.Index(l.SavedPosts, postID)
	if i < 0 {
		return false
	}
	l.SavedPosts = slices.Delete(l.SavedPosts, i, i+1)
	return true
}

// ToggleLike flips the liked flag for a post and reports the new value.
func (l *Library) ToggleLike(postID string) bool {
	i := slices.Index(l.LikedPosts, postID)
	if i >= 0 {
		l.LikedPosts = slices.Delete(l.LikedPosts, i, i+1)
		return false
	}
	l.LikedPosts = append(l.LikedPosts, postID)
	return true
}

// Liked reports whether the post is liked.
func (l *Library) Liked(postID string) bool {
	return slices.Contains(l.LikedPosts, postID)
}

// ReadingLog records which posts the session actually opened, most recent
// first.
type ReadingLog struct {
	SessionID string         `json:"session_id"`
	Entries   []ReadingEntry `json:"entries"`
}

// ReadingEntry is one post view.
type ReadingEntry struct {
	PostID string    `json:"post_id"`
	ReadAt time.Time `json:"read_at"`
}

// Record notes a post view. A repeat view moves the post to the front
// rather than duplicating it.
func (r *ReadingLog) Record(postID string, now time.Time) {
	r.Entries = slices.DeleteFunc(r.Entries, func(e ReadingEntry) bool {
		return e.PostID == postID
	})
	r.Entries = slices.Insert(r.Entries, 0, ReadingEntry{PostID: postID, ReadAt: now})
}

// NotificationState holds the session's read flags, keyed by notification
// ID. Only flips away from the catalog default are stored.
type NotificationState struct {
	SessionID string          `json:"session_id"`
	Read      map[string]bool `json:"read,omitempty"`
}

// MarkRead flips the read flag for a notification. Returns false if it was
// already marked in this session.
func (n *NotificationState) MarkRead(id string) bool {
	if n.Read[id] {
		return false
	}
	if n.Read == nil {
		n.Read = make(map[string]bool)
	}
	n.Read[id] = true
	return true
}

// IsRead merges the session flag with the catalog default.
func (n *NotificationState) IsRead(notification *domain.Notification) bool {
	return notification.Read || n.Read[notification.ID]
}
