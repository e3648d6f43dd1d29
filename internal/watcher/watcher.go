// Package watcher reruns a callback when a single file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/julianstephens/clockings/internal/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher observes one file. The parent directory is watched rather than the
// file itself so that editors and exporters replacing the file are noticed.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New starts watching path. Events are queued from this point on, even before
// Run is called.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			logger.Error("Failed to close watcher", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, debounce: debounce, fsw: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is done, calling onChange once per burst of writes to
// the file. Callback errors are logged and watching continues. Run closes the
// watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			logger.Error("Failed to close watcher", "error", err)
		}
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("File changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := onChange(); err != nil {
				logger.Warn("Change handler failed", "path", w.path, "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("File watcher error", "error", err)
		}
	}
}
