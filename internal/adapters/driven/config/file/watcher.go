package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/molkit/internal/logger"
)

// watchDebounce coalesces bursts of events from a single save.
var watchDebounce = 50 * time.Millisecond

// Watch reloads the store whenever the config file changes on disk and
// calls onChange after each successful reload. It blocks until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(watchDebounce)

		case <-timer.C:
			if s.reload() && onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config: watcher: %v", err)
		}
	}
}

// reload re-reads the file after a change. An empty read is a write in
// progress and is skipped; the write that fills the file triggers another
// reload. A missing file resets the store.
func (s *ConfigStore) reload() bool {
	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		err = s.Load()
	case err != nil:
	case len(data) == 0:
		logger.Debug("config: %s is empty, waiting for content", s.filePath)
		return false
	default:
		err = s.apply(data)
	}
	if err != nil {
		logger.Warn("config: reload %s: %v", s.filePath, err)
		return false
	}
	logger.Debug("config: reloaded %s", s.filePath)
	return true
}
