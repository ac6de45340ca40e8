// Package watch monitors a documentation source tree and triggers rebuilds
// on changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory tree and invokes a callback after changes,
// debounced so rapid editor saves collapse into one rebuild.
type Watcher struct {
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	onChange     func()
	changeChan   chan struct{}
}

// NewWatcher creates a watcher that calls onChange after each debounced
// burst of relevant file events.
func NewWatcher(debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		watcher:      fsw,
		debounceTime: debounce,
		onChange:     onChange,
		changeChan:   make(chan struct{}, 1),
	}, nil
}

// Watch monitors root (recursively) until ctx is canceled.
func (w *Watcher) Watch(ctx context.Context, root string) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", "error", err)
		}
	}()

	if err := w.addRecursive(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	slog.Info("Watching documentation sources", "root", root)

	go w.debounceLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

// addRecursive adds root and every subdirectory to the watch set.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

// handleEvent filters events down to source changes and queues a rebuild.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// New directories need watching too.
	if event.Op&fsnotify.Create != 0 {
		if err := w.watcher.Add(event.Name); err == nil {
			slog.Debug("Watching new path", "path", event.Name)
		}
	}

	if !relevantFile(event.Name) {
		return
	}

	slog.Debug("Source change detected", "path", event.Name, "op", event.Op.String())
	select {
	case w.changeChan <- struct{}{}:
	default: // a rebuild is already queued
	}
}

// debounceLoop coalesces change signals and fires the callback.
func (w *Watcher) debounceLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.changeChan:
			timer := time.NewTimer(w.debounceTime)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			// One burst of saves becomes one rebuild.
			select {
			case <-w.changeChan:
			default:
			}
			w.onChange()
		}
	}
}

// relevantFile reports whether a change to the path should trigger a rebuild.
func relevantFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".yml", ".yaml", ".css", ".js", ".png", ".svg", ".jpg":
		return true
	}
	return false
}
