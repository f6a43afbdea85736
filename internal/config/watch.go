package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"daysched/pkg/logx"
)

var errWatcherClosed = errors.New("config watcher closed")

// Watch reloads the file on change until ctx ends. A broken watcher is
// returned as an error so the caller can restart it; with no path Watch
// returns nil at once.
func (m *Manager) Watch(ctx context.Context) error {
	if strings.TrimSpace(m.path) == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	// The directory is watched: editors often replace the file instead of
	// writing into it.
	dir, name := filepath.Dir(m.path), filepath.Base(m.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	m.log.Debug("config watcher started", logx.String("dir", dir), logx.String("file", name))

	var due <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errWatcherClosed
			}
			if filepath.Base(ev.Name) == name && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				due = time.After(m.debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errWatcherClosed
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				return fmt.Errorf("config watcher: %w", err)
			}
			m.log.Warn("config watch overflow; forcing reload", logx.Err(err))
			due = time.After(m.debounce)
		case <-due:
			due = nil
			m.reload(ctx)
		}
	}
}
