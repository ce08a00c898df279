package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func TestGetProfile(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Get("/api/v1/me", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.Profile](t, resp.Body.Bytes())
	assert.Equal(t, "Alex Johnson", envelope.Data.User.Name)
	assert.Equal(t, 3, envelope.Data.SavedCount)
	assert.False(t, envelope.Data.LoggedIn)
}

func TestGetProfile_RequiresSession(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/me")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSavedPosts_SeededFromCatalog(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Get("/api/v1/me/saved", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	require.Equal(t, 3, envelope.Data.Total)

	ids := make([]string, 0, len(envelope.Data.Posts))
	for _, post := range envelope.Data.Posts {
		ids = append(ids, post.ID)
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids)
}

func TestSaveAndUnsavePost(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Post("/api/v1/me/saved/2", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 4, envelope.Data.Total)

	// Saving again is a no-op.
	resp = ts.api.Post("/api/v1/me/saved/2", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	envelope = decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 4, envelope.Data.Total)

	resp = ts.api.Delete("/api/v1/me/saved/2", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	envelope = decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 3, envelope.Data.Total)
}

func TestSaveUnknownPostRejected(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Post("/api/v1/me/saved/999", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestToggleLike(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Post("/api/v1/me/likes/1", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	envelope := decodeEnvelope[LikeResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Data.Liked)

	resp = ts.api.Post("/api/v1/me/likes/1", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	envelope = decodeEnvelope[LikeResponse](t, resp.Body.Bytes())
	assert.False(t, envelope.Data.Liked)
}

func TestReadingHistory_SeededWhenEmpty(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Get("/api/v1/me/reading-history", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 3, envelope.Data.Total, "an unused session shows a seeded history")
}

func TestNotifications(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Get("/api/v1/notifications", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.NotificationFeed](t, resp.Body.Bytes())
	assert.Len(t, envelope.Data.Notifications, 5)
	assert.Equal(t, 2, envelope.Data.UnreadCount)
}

func TestMarkNotificationRead(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Post("/api/v1/notifications/n1/read", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/notifications", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.NotificationFeed](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.Data.UnreadCount)
}

func TestMarkUnknownNotificationRejected(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.startSession(t)

	resp := ts.api.Post("/api/v1/notifications/n999/read", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLibraryIsSessionScoped(t *testing.T) {
	ts := setupTestServer(t)
	tokenA := ts.startSession(t)
	tokenB := ts.startSession(t)

	resp := ts.api.Delete("/api/v1/me/saved/1", "Authorization: Bearer "+tokenA)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/me/saved", "Authorization: Bearer "+tokenB)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostsResponse](t, resp.Body.Bytes())
	assert.Equal(t, 3, envelope.Data.Total, "another session's unsave must not leak")
}
