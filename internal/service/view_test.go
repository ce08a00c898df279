package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/nav"
)

func TestCurrentStartsAtHomeWithFeed(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Current(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, nav.PageHome, data.Screen.Page)
	require.NotNil(t, data.Home)
	assert.Len(t, data.Home.Latest, 6)
	assert.Len(t, data.Home.Popular, 6)
	assert.NotNil(t, data.Home.Quote)
	assert.Len(t, data.Home.Categories, 6)
	assert.Len(t, data.Home.TagWeights, 8)
	assert.Equal(t, 2, data.Home.UnreadCount)
}

func TestNavigateToCategories(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Navigate(ctx, sessionID, "categories")
	require.NoError(t, err)

	assert.Equal(t, nav.PageCategories, data.Screen.Page)
	assert.Len(t, data.Categories, 6)
}

func TestNavigateUnknownPageRejected(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	_, err := env.views.Navigate(ctx, sessionID, "dashboard")
	assert.Error(t, err)

	// The failed transition must not have moved the view.
	data, err := env.views.Current(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, nav.PageHome, data.Screen.Page)
}

func TestSelectPostResolvesDetailAndRecordsRead(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Select(ctx, sessionID, SelectPost, "3")
	require.NoError(t, err)

	assert.Equal(t, nav.PagePost, data.Screen.Page)
	require.NotNil(t, data.PostDetail)
	assert.Equal(t, "3", data.PostDetail.Post.ID)
	// Post 3 shares the Writing Tips category with posts 1 and 5.
	assert.Len(t, data.PostDetail.Related, 2)

	// The read must land in the session's history.
	posts, err := env.library.ReadingHistory(ctx, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, "3", posts[0].ID)
}

func TestSelectStalePostFallsBackHome(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Select(ctx, sessionID, SelectPost, "no-such-post")
	require.NoError(t, err)

	assert.Equal(t, nav.PageHome, data.Screen.Page)
	assert.True(t, data.Screen.FellBack)
	// The stored state is normalized so the session doesn't fall back on
	// every later request.
	assert.Equal(t, nav.PageHome, data.State.Page)
	assert.Empty(t, data.State.PostID)

	data, err = env.views.Current(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, data.Screen.FellBack)
}

func TestSelectCategoryListsItsPosts(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Select(ctx, sessionID, SelectCategory, "writing-tips")
	require.NoError(t, err)

	assert.Equal(t, nav.PageCategory, data.Screen.Page)
	require.NotNil(t, data.Screen.Category)
	assert.Equal(t, "Writing Tips", data.Screen.Category.Name)
	assert.Len(t, data.Posts, 3)
}

func TestBackFromPostReturnsHome(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	_, err := env.views.Select(ctx, sessionID, SelectPost, "1")
	require.NoError(t, err)

	data, err := env.views.Back(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, nav.PageHome, data.Screen.Page)
	assert.Empty(t, data.State.PostID)
}

func TestGatedPageRedirectsToLoginUntilAuthenticated(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Navigate(ctx, sessionID, "profile")
	require.NoError(t, err)
	assert.Equal(t, nav.PageLogin, data.Screen.Page)

	_, err = env.accounts.Login(ctx, sessionID)
	require.NoError(t, err)

	data, err = env.views.Navigate(ctx, sessionID, "profile")
	require.NoError(t, err)
	assert.Equal(t, nav.PageProfile, data.Screen.Page)
	require.NotNil(t, data.Profile)
	assert.True(t, data.Profile.LoggedIn)
	assert.Equal(t, "Alex Johnson", data.Profile.User.Name)
}

func TestNotificationsScreenCarriesFeed(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Navigate(ctx, sessionID, "notifications")
	require.NoError(t, err)

	assert.Equal(t, nav.PageNotifications, data.Screen.Page)
	require.NotNil(t, data.Notifications)
	assert.Len(t, data.Notifications.Notifications, 5)
	assert.Equal(t, 2, data.Notifications.UnreadCount)
}

func TestRandomScreenIsPermutationOfAllPosts(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	data, err := env.views.Navigate(ctx, sessionID, "random")
	require.NoError(t, err)

	assert.Equal(t, nav.PageRandom, data.Screen.Page)
	assert.Len(t, data.Posts, 6)

	seen := make(map[string]bool)
	for _, post := range data.Posts {
		seen[post.ID] = true
	}
	assert.Len(t, seen, 6)
}

func TestSavedScreenFollowsLibrary(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	sessionID := env.startSession(t, ctx)

	_, err := env.accounts.Login(ctx, sessionID)
	require.NoError(t, err)

	require.NoError(t, env.library.UnsavePost(ctx, sessionID, "1"))

	data, err := env.views.Navigate(ctx, sessionID, "saved")
	require.NoError(t, err)
	assert.Equal(t, nav.PageSaved, data.Screen.Page)
	require.Len(t, data.Posts, 2)
	assert.Equal(t, "3", data.Posts[0].ID)
	assert.Equal(t, "5", data.Posts[1].ID)
}
