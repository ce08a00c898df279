package domain

import "time"

// NotificationType classifies a notification.
type NotificationType string

// Notification types.
const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationPost    NotificationType = "post"
)

// Valid reports whether the type is one of the known values.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationFollow, NotificationPost:
		return true
	}
	return false
}

// Notification is an activity item shown on the notifications screen.
// The read flag flips only via explicit user action; the flip is recorded
// on the session copy, not the catalog record.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Image     string           `json:"image,omitempty"`
	Link      string           `json:"link,omitempty"` // post ID to open on tap
}

// MarkRead flips the read flag. Returns false if it was already read.
func (n *Notification) MarkRead() bool {
	if n.Read {
		return false
	}
	n.Read = true
	return true
}
