// Package daemon provides the serve-mode runtime helpers: a content
// directory watcher and a periodic rebuild scheduler.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentWatcher monitors the content directory and triggers a rebuild when
// posts or the series catalog change. Rapid change bursts (editor saves,
// git checkouts) are debounced into a single rebuild.
type ContentWatcher struct {
	dir          string
	rebuild      func(context.Context)
	watcher      *fsnotify.Watcher
	stopChan     chan struct{}
	triggerChan  chan struct{}
	debounceTime time.Duration
}

// NewContentWatcher creates a watcher over dir. rebuild is invoked from the
// watcher goroutine after the debounce window closes.
func NewContentWatcher(dir string, rebuild func(context.Context)) (*ContentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve content dir: %w", err)
	}

	return &ContentWatcher{
		dir:          absDir,
		rebuild:      rebuild,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		triggerChan:  make(chan struct{}, 1),
		debounceTime: 2 * time.Second,
	}, nil
}

// Start begins monitoring. Watches the content dir and its immediate
// subdirectories (posts live one level down).
func (cw *ContentWatcher) Start(ctx context.Context) error {
	if err := cw.watcher.Add(cw.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cw.dir, err)
	}
	entries, err := os.ReadDir(cw.dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cw.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := cw.watcher.Add(filepath.Join(cw.dir, e.Name())); err != nil {
				slog.Warn("failed to watch subdirectory", "dir", e.Name(), "error", err)
			}
		}
	}

	slog.Info("watching content directory", slog.String("dir", cw.dir))
	go cw.watchLoop(ctx)
	go cw.rebuildLoop(ctx)
	return nil
}

// Stop stops the watcher.
func (cw *ContentWatcher) Stop() {
	close(cw.stopChan)
	if err := cw.watcher.Close(); err != nil {
		slog.Error("error closing file watcher", "error", err)
	}
}

func (cw *ContentWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopChan:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("content change detected",
				slog.String("file", event.Name),
				slog.String("op", event.Op.String()))
			select {
			case cw.triggerChan <- struct{}{}:
			default: // a rebuild is already pending
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "error", err)
		}
	}
}

func (cw *ContentWatcher) rebuildLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopChan:
			return
		case <-cw.triggerChan:
			// Debounce: absorb further triggers for the window, then rebuild.
			timer := time.NewTimer(cw.debounceTime)
		drain:
			for {
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case <-cw.stopChan:
					timer.Stop()
					return
				case <-cw.triggerChan:
				case <-timer.C:
					break drain
				}
			}
			slog.Info("content changed, rebuilding")
			cw.rebuild(ctx)
		}
	}
}

// relevant filters watcher noise down to content file changes.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".yaml", ".yml":
		return true
	}
	// New subdirectories matter (a created posts/ dir).
	if event.Op&fsnotify.Create != 0 {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			return true
		}
	}
	return false
}
