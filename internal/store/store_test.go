package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/nav"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewInMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)

	session := NewSession("sess-1", now)
	require.NoError(t, session.View.SelectPost("3"))
	session.View.LoggedIn = true
	require.NoError(t, s.Sessions.Create(ctx, session.ID, session))

	got, err := s.Sessions.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, nav.PagePost, got.View.Page)
	assert.Equal(t, "3", got.View.PostID)
	assert.True(t, got.View.LoggedIn)
	assert.True(t, got.CreatedAt.Equal(now))
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	session := NewSession("sess-1", time.Now())
	require.NoError(t, s.Sessions.Create(ctx, session.ID, session))

	err := s.Sessions.Create(ctx, session.ID, session)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Sessions.Get(context.Background(), "sess-none")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestUpdateRequiresExisting(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	session := NewSession("sess-1", time.Now())
	err := s.Sessions.Update(ctx, session.ID, session)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	require.NoError(t, s.Sessions.Create(ctx, session.ID, session))
	session.View.LoggedIn = true
	require.NoError(t, s.Sessions.Update(ctx, session.ID, session))

	got, err := s.Sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.View.LoggedIn)
}

func TestUpsertAndIdempotentDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	lib := &Library{SessionID: "sess-1", SavedPosts: []string{"1"}}
	require.NoError(t, s.Libraries.Upsert(ctx, "sess-1", lib))
	lib.SavedPosts = append(lib.SavedPosts, "3")
	require.NoError(t, s.Libraries.Upsert(ctx, "sess-1", lib))

	got, err := s.Libraries.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, got.SavedPosts)

	require.NoError(t, s.Libraries.Delete(ctx, "sess-1"))
	require.NoError(t, s.Libraries.Delete(ctx, "sess-1"))
	_, err = s.Libraries.Get(ctx, "sess-1")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestListIteratesAllSessions(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"sess-a", "sess-b", "sess-c"} {
		require.NoError(t, s.Sessions.Create(ctx, id, NewSession(id, time.Now())))
	}

	seen := map[string]bool{}
	for session, err := range s.Sessions.List(ctx) {
		require.NoError(t, err)
		seen[session.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestPruneSessionsRemovesIdleWithDependents(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Now()

	stale := NewSession("sess-old", now.Add(-48*time.Hour))
	fresh := NewSession("sess-new", now)
	require.NoError(t, s.Sessions.Create(ctx, stale.ID, stale))
	require.NoError(t, s.Sessions.Create(ctx, fresh.ID, fresh))
	require.NoError(t, s.Libraries.Upsert(ctx, stale.ID, &Library{SessionID: stale.ID}))

	pruned, err := s.PruneSessions(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = s.Sessions.Get(ctx, stale.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	_, err = s.Libraries.Get(ctx, stale.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	_, err = s.Sessions.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestLibraryToggles(t *testing.T) {
	user := domain.User{SavedPosts: []string{"1", "3"}, Following: []string{"Sarah"}}
	lib := NewLibrary("sess-1", user)

	assert.False(t, lib.Save("1"))
	assert.True(t, lib.Save("5"))
	assert.Equal(t, []string{"1", "3", "5"}, lib.SavedPosts)

	assert.True(t, lib.Unsave("3"))
	assert.False(t, lib.Unsave("3"))

	assert.True(t, lib.ToggleLike("2"))
	assert.True(t, lib.Liked("2"))
	assert.False(t, lib.ToggleLike("2"))
	assert.False(t, lib.Liked("2"))
}

func TestReadingLogDeduplicates(t *testing.T) {
	log := &ReadingLog{SessionID: "sess-1"}
	base := time.Now()

	log.Record("1", base)
	log.Record("2", base.Add(time.Minute))
	log.Record("1", base.Add(2*time.Minute))

	require.Len(t, log.Entries, 2)
	assert.Equal(t, "1", log.Entries[0].PostID)
	assert.Equal(t, "2", log.Entries[1].PostID)
}

func TestNotificationStateMergesCatalogDefault(t *testing.T) {
	state := &NotificationState{SessionID: "sess-1"}
	unread := &domain.Notification{ID: "n1", Read: false}
	preRead := &domain.Notification{ID: "n3", Read: true}

	assert.False(t, state.IsRead(unread))
	assert.True(t, state.IsRead(preRead))

	assert.True(t, state.MarkRead("n1"))
	assert.False(t, state.MarkRead("n1"))
	assert.True(t, state.IsRead(unread))
}
