package domain

import (
	"slices"
	"time"
)

// User is a reader account. The catalog ships exactly one "current user"
// record for the whole session; there is no creation or deletion flow.
// SavedPosts and Following mutate only on the session copy held by the
// session store, never on the catalog record.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio,omitempty"`
	JoinedDate time.Time `json:"joined_date"`
	PostsRead  int       `json:"posts_read"`
	SavedPosts []string  `json:"saved_posts"` // ordered post IDs
	Following  []string  `json:"following"`   // author names
}

// HasSaved reports whether the post is in the user's saved list.
func (u *User) HasSaved(postID string) bool {
	return slices.Contains(u.SavedPosts, postID)
}

// SavePost adds the post to the saved list. Returns false if already saved.
func (u *User) SavePost(postID string) bool {
	if u.HasSaved(postID) {
		return false
	}
	u.SavedPosts = append(u.SavedPosts, postID)
	return true
}

// UnsavePost removes the post from the saved list. Returns false if absent.
func (u *User) UnsavePost(postID string) bool {
	i := slices.Index(u.SavedPosts, postID)
	if i < 0 {
		return false
	}
	u.SavedPosts = slices.Delete(u.SavedPosts, i, i+1)
	return true
}

// IsFollowing reports whether the user follows the named author.
func (u *User) IsFollowing(authorName string) bool {
	return slices.Contains(u.Following, authorName)
}
