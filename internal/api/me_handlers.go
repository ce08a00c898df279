package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func (s *Server) registerMeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/me",
		Summary:     "Profile",
		Description: "Returns the session's profile overlaid with its saved and followed state.",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "listSavedPosts",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/saved",
		Summary:     "Saved posts",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSavedPosts)

	huma.Register(s.api, huma.Operation{
		OperationID: "savePost",
		Method:      http.MethodPost,
		Path:        "/api/v1/me/saved/{postId}",
		Summary:     "Save post",
		Description: "Adds the post to the session's saved list. Saving twice is a no-op.",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSavePost)

	huma.Register(s.api, huma.Operation{
		OperationID: "unsavePost",
		Method:      http.MethodDelete,
		Path:        "/api/v1/me/saved/{postId}",
		Summary:     "Unsave post",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUnsavePost)

	huma.Register(s.api, huma.Operation{
		OperationID: "togglePostLike",
		Method:      http.MethodPost,
		Path:        "/api/v1/me/likes/{postId}",
		Summary:     "Toggle like",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleToggleLike)

	huma.Register(s.api, huma.Operation{
		OperationID: "getReadingHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/reading-history",
		Summary:     "Reading history",
		Description: "Returns recently read posts, most recent first.",
		Tags:        []string{"Me"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleReadingHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "listNotifications",
		Method:      http.MethodGet,
		Path:        "/api/v1/notifications",
		Summary:     "Notifications",
		Tags:        []string{"Notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleNotifications)

	huma.Register(s.api, huma.Operation{
		OperationID: "markNotificationRead",
		Method:      http.MethodPost,
		Path:        "/api/v1/notifications/{id}/read",
		Summary:     "Mark notification read",
		Tags:        []string{"Notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleMarkNotificationRead)
}

// ProfileOutput wraps a profile for Huma.
type ProfileOutput struct {
	Body *service.Profile
}

// SavedPostInput identifies the post to save or unsave.
type SavedPostInput struct {
	PostID string `path:"postId" doc:"Post ID"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	PostID string `json:"postId" doc:"Post ID"`
	Liked  bool   `json:"liked" doc:"Whether the post is now liked"`
}

// LikeOutput wraps a like toggle result for Huma.
type LikeOutput struct {
	Body LikeResponse
}

// NotificationsOutput wraps the notification feed for Huma.
type NotificationsOutput struct {
	Body *service.NotificationFeed
}

// NotificationInput identifies one notification.
type NotificationInput struct {
	ID string `path:"id" doc:"Notification ID"`
}

// NotificationReadResponse confirms a mark-read call.
type NotificationReadResponse struct {
	ID   string `json:"id" doc:"Notification ID"`
	Read bool   `json:"read" doc:"Always true after a successful call"`
}

// NotificationReadOutput wraps a mark-read confirmation for Huma.
type NotificationReadOutput struct {
	Body NotificationReadResponse
}

func (s *Server) handleProfile(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.services.Account.Me(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: profile}, nil
}

func (s *Server) handleSavedPosts(ctx context.Context, _ *struct{}) (*PostsOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.services.Library.SavedPosts(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleSavePost(ctx context.Context, input *SavedPostInput) (*PostsOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Library.SavePost(ctx, sessionID, input.PostID); err != nil {
		return nil, err
	}
	return s.savedPostsOutput(ctx, sessionID)
}

func (s *Server) handleUnsavePost(ctx context.Context, input *SavedPostInput) (*PostsOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Library.UnsavePost(ctx, sessionID, input.PostID); err != nil {
		return nil, err
	}
	return s.savedPostsOutput(ctx, sessionID)
}

func (s *Server) savedPostsOutput(ctx context.Context, sessionID string) (*PostsOutput, error) {
	posts, err := s.services.Library.SavedPosts(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleToggleLike(ctx context.Context, input *SavedPostInput) (*LikeOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	liked, err := s.services.Library.ToggleLike(ctx, sessionID, input.PostID)
	if err != nil {
		return nil, err
	}
	return &LikeOutput{Body: LikeResponse{PostID: input.PostID, Liked: liked}}, nil
}

func (s *Server) handleReadingHistory(ctx context.Context, _ *struct{}) (*PostsOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.services.Library.ReadingHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &PostsOutput{Body: PostsResponse{Posts: posts, Total: len(posts)}}, nil
}

func (s *Server) handleNotifications(ctx context.Context, _ *struct{}) (*NotificationsOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	feed, err := s.services.Library.Notifications(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &NotificationsOutput{Body: feed}, nil
}

func (s *Server) handleMarkNotificationRead(ctx context.Context, input *NotificationInput) (*NotificationReadOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Library.MarkNotificationRead(ctx, sessionID, input.ID); err != nil {
		return nil, err
	}
	return &NotificationReadOutput{Body: NotificationReadResponse{ID: input.ID, Read: true}}, nil
}
