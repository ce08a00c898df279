package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/backup"
	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// backupRetention bounds how many daily snapshots the backup job keeps.
const backupRetention = 7

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the session database.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Session database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideBackupService provides the session database backup service.
func ProvideBackupService(i do.Injector) (*backup.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	backupDir := filepath.Join(cfg.Data.BasePath, "backups")
	return backup.NewService(storeHandle.Store, backupDir, backupRetention, log.Logger), nil
}
