package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file at path whenever it is written or
// replaced, passing every valid result to onChange. Invalid contents are
// logged and skipped; the previous settings stay in effect.
//
// Watch blocks until ctx is cancelled and should be run in a goroutine.
// It returns an error only if the watcher cannot be set up.
func Watch(ctx context.Context, path string, onChange func(Settings), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	defer watcher.Close()

	// watch the directory: editors often save by renaming a temp file over the target
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	logger.Debug("watching settings", "path", abs)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(abs)
			if err != nil {
				logger.Warn("settings reload rejected", "path", abs, "error", err)
				continue
			}
			logger.Info("settings reloaded", "path", abs)
			onChange(s)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
