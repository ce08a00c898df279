package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/backup"
	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
)

const (
	// sessionPruneInterval is how often idle sessions are swept.
	sessionPruneInterval = time.Hour
	// backupInterval is how often the session database is snapshotted.
	backupInterval = 24 * time.Hour
)

// SessionCleanupJob periodically prunes sessions idle past the configured TTL.
type SessionCleanupJob struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.Shutdownable.
func (j *SessionCleanupJob) Shutdown() error {
	j.cancel()
	<-j.done
	return nil
}

// ProvideSessionCleanupJob provides the background session pruner.
func ProvideSessionCleanupJob(i do.Injector) (*SessionCleanupJob, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	ctx, cancel := context.WithCancel(context.Background())
	job := &SessionCleanupJob{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(job.done)
		ticker := time.NewTicker(sessionPruneInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-cfg.Auth.SessionTTL)
				if _, err := storeHandle.PruneSessions(ctx, cutoff); err != nil {
					log.Warn("Session pruning failed", "error", err)
				}
			}
		}
	}()

	log.Info("Session cleanup job started",
		"interval", sessionPruneInterval,
		"session_ttl", cfg.Auth.SessionTTL,
	)

	return job, nil
}

// BackupJob periodically snapshots the session database.
type BackupJob struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.Shutdownable.
func (j *BackupJob) Shutdown() error {
	j.cancel()
	<-j.done
	return nil
}

// ProvideBackupJob provides the background backup worker.
func ProvideBackupJob(i do.Injector) (*BackupJob, error) {
	log := do.MustInvoke[*logger.Logger](i)
	backupSvc := do.MustInvoke[*backup.Service](i)

	ctx, cancel := context.WithCancel(context.Background())
	job := &BackupJob{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(job.done)
		ticker := time.NewTicker(backupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := backupSvc.Create(ctx); err != nil {
					log.Warn("Scheduled backup failed", "error", err)
				}
			}
		}
	}()

	log.Info("Backup job started", "interval", backupInterval)

	return job, nil
}
