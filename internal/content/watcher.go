package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads the dataset file when it changes on disk. Editors
// tend to write in bursts, so events debounce until the file stops
// changing before a reload fires.
type Watcher struct {
	source *Source
	path   string
	settle time.Duration
	logger *slog.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a watcher for the source's dataset file. settle is how
// long the file must be quiet before reloading; zero means 500ms.
func NewWatcher(source *Source, settle time.Duration, logger *slog.Logger) (*Watcher, error) {
	if source.path == "" {
		return nil, fmt.Errorf("content: no dataset file to watch")
	}
	if settle <= 0 {
		settle = 500 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the parent directory so atomic rename-over writes are seen.
	if err := fw.Add(filepath.Dir(source.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", source.path, err)
	}

	return &Watcher{
		source:  source,
		path:    filepath.Clean(source.path),
		settle:  settle,
		logger:  logger,
		watcher: fw,
		done:    make(chan struct{}),
	}, nil
}

// Start processes events until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.wg.Add(1)
	go w.processEvents(ctx)

	<-ctx.Done()
	return nil
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.settle, w.reload)
}

func (w *Watcher) reload() {
	if _, err := os.Stat(w.path); err != nil {
		w.logger.Warn("dataset file unreadable, keeping current catalog", "path", w.path, "error", err)
		return
	}
	if err := w.source.Reload(); err != nil {
		w.logger.Error("dataset reload failed, keeping current catalog", "path", w.path, "error", err)
	}
}

// Stop shuts the watcher down and waits for in-flight work.
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()

	w.watcher.Close()
	w.wg.Wait()
	return nil
}
