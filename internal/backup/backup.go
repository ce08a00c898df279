// Package backup snapshots the session database. Backups are plain Badger
// backup streams; the content catalog is not included since it is either
// embedded or a file the operator already has.
package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

const backupSuffix = ".wm.bak"

// Service manages backup creation, listing, and pruning.
type Service struct {
	store     *store.Store
	backupDir string
	keep      int
	logger    *slog.Logger
}

// NewService creates a backup service. keep bounds how many backups are
// retained; older ones are pruned after each create.
func NewService(s *store.Store, backupDir string, keep int, logger *slog.Logger) *Service {
	return &Service{
		store:     s,
		backupDir: backupDir,
		keep:      keep,
		logger:    logger,
	}
}

// Info describes one backup on disk.
type Info struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Create writes a new full snapshot into the backup directory.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-150405")
	path := filepath.Join(s.backupDir, "backup-"+timestamp+backupSuffix)

	f, err := os.Create(path) //#nosec G304 -- path is built from the configured backup dir
	if err != nil {
		return nil, fmt.Errorf("create backup file: %w", err)
	}

	if _, err := s.store.Backup(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close backup file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("backup complete", "path", path, "size", stat.Size())

	if err := s.prune(ctx); err != nil {
		s.logger.Warn("backup pruning failed", "error", err)
	}

	return &Info{Path: path, Size: stat.Size(), CreatedAt: stat.ModTime()}, nil
}

// List returns the backups on disk, newest first.
func (s *Service) List(_ context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), backupSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(s.backupDir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// prune removes backups beyond the retention count, oldest first.
func (s *Service) prune(ctx context.Context) error {
	if s.keep <= 0 {
		return nil
	}

	backups, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, old := range backups[min(s.keep, len(backups)):] {
		if err := os.Remove(old.Path); err != nil {
			return err
		}
		s.logger.Info("pruned old backup", "path", old.Path)
	}
	return nil
}

// Restore loads a snapshot into the store, replacing its contents. The
// server must not be serving requests while this runs.
func (s *Service) Restore(_ context.Context, path string) error {
	f, err := os.Open(path) //#nosec G304 -- restore path is operator input
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	if err := s.store.Load(f); err != nil {
		return fmt.Errorf("load backup: %w", err)
	}

	s.logger.Info("backup restored", "path", path)
	return nil
}
