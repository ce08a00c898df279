// Package store persists the only mutable state in the system: per-session
// view state, quiz attempts, the user's library toggles, reading history,
// and notification read flags. The catalog itself never lands here. Data
// lives for the server process; deleting the data directory resets every
// session.
package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Sessions      *Entity[Session]
	Attempts      *Entity[AttemptRecord]
	Libraries     *Entity[Library]
	ReadingLogs   *Entity[ReadingLog]
	Notifications *Entity[NotificationState]
}

// New opens the database at path and wires up the entities.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Survive crashes without corrupting session state
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
	}
	s.Sessions = NewEntity[Session](s, "sess:")
	s.Attempts = NewEntity[AttemptRecord](s, "attempt:")
	s.Libraries = NewEntity[Library](s, "lib:")
	s.ReadingLogs = NewEntity[ReadingLog](s, "read:")
	s.Notifications = NewEntity[NotificationState](s, "notif:")

	if logger != nil {
		logger.Info("session database opened", "path", path)
	}
	return s, nil
}

// NewInMemory opens a store backed by an in-memory Badger instance, used
// by tests.
func NewInMemory(logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory badger db: %w", err)
	}

	s := &Store{db: db, logger: logger}
	s.Sessions = NewEntity[Session](s, "sess:")
	s.Attempts = NewEntity[AttemptRecord](s, "attempt:")
	s.Libraries = NewEntity[Library](s, "lib:")
	s.ReadingLogs = NewEntity[ReadingLog](s, "read:")
	s.Notifications = NewEntity[NotificationState](s, "notif:")
	return s, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing session database")
	}
	return s.db.Close()
}

// PruneSessions removes sessions idle since before cutoff, together with
// their dependent records. Returns how many sessions were removed.
func (s *Store) PruneSessions(ctx context.Context, cutoff time.Time) (int, error) {
	var stale []string
	for session, err := range s.Sessions.List(ctx) {
		if err != nil {
			return 0, err
		}
		if session.LastSeenAt.Before(cutoff) {
			stale = append(stale, session.ID)
		}
	}

	for _, id := range stale {
		if err := s.Sessions.Delete(ctx, id); err != nil {
			return 0, err
		}
		if err := s.Attempts.Delete(ctx, id); err != nil {
			return 0, err
		}
		if err := s.Libraries.Delete(ctx, id); err != nil {
			return 0, err
		}
		if err := s.ReadingLogs.Delete(ctx, id); err != nil {
			return 0, err
		}
		if err := s.Notifications.Delete(ctx, id); err != nil {
			return 0, err
		}
	}

	if len(stale) > 0 && s.logger != nil {
		s.logger.Info("pruned idle sessions", "count", len(stale))
	}
	return len(stale), nil
}

// Backup streams a full snapshot of the database to w. Returns the version
// watermark of the snapshot.
func (s *Store) Backup(w io.Writer) (uint64, error) {
	return s.db.Backup(w, 0)
}

// Load replaces the database contents with a snapshot written by Backup.
// Callers must guarantee no concurrent writes during the load.
func (s *Store) Load(r io.Reader) error {
	return s.db.Load(r, 16)
}
