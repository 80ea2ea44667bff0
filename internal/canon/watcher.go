package canon

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher fires a callback when the canon file changes on disk. It
// watches the parent directory rather than the file itself so editors
// that save via rename are still seen.
type Watcher struct {
	path     string
	onChange func()
	logger   *slog.Logger

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
}

// NewWatcher creates a Watcher for the given file. onChange runs on the
// watcher goroutine once writes have settled.
func NewWatcher(path string, logger *slog.Logger, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start begins watching. Call Stop() to clean up.
func (w *Watcher) Start() error {
	if w.path == "" || w.path == "." {
		return fmt.Errorf("canon watch path is empty")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w.fsw = fsw

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch dir %s: %w", dir, err)
	}

	w.logger.Info("canon watcher started", "file", w.path)
	go w.loop()
	return nil
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.fsw != nil {
		w.fsw.Close()
	}
}

func (w *Watcher) loop() {
	// Debounce: wait for the file to settle before reloading
	var pending time.Time
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("canon watcher error", "error", err)

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < 500*time.Millisecond {
				continue
			}
			pending = time.Time{}
			w.onChange()
		}
	}
}
