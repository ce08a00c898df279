package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
)

// watcherSettle is how long file events must be quiet before a reload.
const watcherSettle = 500 * time.Millisecond

// ProvideContentSource provides the content catalog source. An empty
// catalog path selects the embedded catalog.
func ProvideContentSource(i do.Injector) (*content.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var (
		catalog *content.Catalog
		err     error
	)
	if cfg.Content.CatalogPath == "" {
		catalog, err = content.LoadDefault()
	} else {
		catalog, err = content.Load(cfg.Content.CatalogPath)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Content catalog loaded",
		"path", cfg.Content.CatalogPath,
		"posts", len(catalog.Posts()),
		"warnings", len(catalog.Warnings()),
	)

	return content.NewSource(catalog, cfg.Content.CatalogPath, log.Logger), nil
}

// CatalogWatcherHandle wraps the catalog watcher with its context for
// lifecycle management. Watcher is nil when watching is disabled.
type CatalogWatcherHandle struct {
	*content.Watcher
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *CatalogWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Stop()
}

// ProvideCatalogWatcher provides the catalog file watcher. Disabled when
// the embedded catalog is in use or watching is turned off.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	source := do.MustInvoke[*content.Source](i)

	if cfg.Content.CatalogPath == "" || !cfg.Content.Watch {
		return &CatalogWatcherHandle{}, nil
	}

	w, err := content.NewWatcher(source, watcherSettle, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("Catalog watcher error", "error", err)
		}
	}()

	log.Info("Watching catalog file", "path", cfg.Content.CatalogPath)

	return &CatalogWatcherHandle{Watcher: w, cancel: cancel}, nil
}
