package domain

import "time"

// Comment is reader feedback on a post. Replies nest one level only: a reply
// never carries further replies in the data, even though the type permits it.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Replies    []Comment `json:"replies,omitempty"`
}
