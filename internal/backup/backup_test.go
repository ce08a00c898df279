package backup

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

func setupBackup(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.NewInMemory(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return NewService(st, t.TempDir(), 3, logger), st
}

func TestCreateAndList(t *testing.T) {
	svc, st := setupBackup(t)
	ctx := context.Background()

	session := store.NewSession("sess-1", time.Now())
	require.NoError(t, st.Sessions.Create(ctx, session.ID, session))

	info, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Greater(t, info.Size, int64(0))
	assert.FileExists(t, info.Path)

	backups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, info.Path, backups[0].Path)
}

func TestList_EmptyDir(t *testing.T) {
	svc, _ := setupBackup(t)

	backups, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRestoreRoundTrip(t *testing.T) {
	svc, st := setupBackup(t)
	ctx := context.Background()

	session := store.NewSession("sess-roundtrip", time.Now())
	require.NoError(t, st.Sessions.Create(ctx, session.ID, session))

	info, err := svc.Create(ctx)
	require.NoError(t, err)

	// Restore into a fresh store.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	fresh, err := store.NewInMemory(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fresh.Close() })

	freshSvc := NewService(fresh, t.TempDir(), 3, logger)
	require.NoError(t, freshSvc.Restore(ctx, info.Path))

	restored, err := fresh.Sessions.Get(ctx, "sess-roundtrip")
	require.NoError(t, err)
	assert.Equal(t, session.ID, restored.ID)
}

func TestPruneKeepsNewest(t *testing.T) {
	svc, _ := setupBackup(t)
	svc.keep = 2
	ctx := context.Background()

	for range 3 {
		_, err := svc.Create(ctx)
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond) // timestamped filenames have second resolution
	}

	backups, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, backups, 2)
}

func TestRestore_MissingFile(t *testing.T) {
	svc, _ := setupBackup(t)

	err := svc.Restore(context.Background(), "/nonexistent/backup.wm.bak")
	assert.Error(t, err)
}
