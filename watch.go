package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchFiles dumps each of paths again whenever it is written to,
// until ctx is done. Failed dumps are logged and do not stop watching.
func watchFiles(ctx context.Context, cfg *config, paths []string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them,
	// so watch directories rather than the files themselves.
	watched := make(map[string]string)
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = path
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		cfg.log.Debug("watching", zap.String("dir", dir))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			path, ok := watched[ev.Name]
			if !ok {
				continue
			}
			cfg.log.Debug("fixture changed", zap.String("fixture", path), zap.Stringer("op", ev.Op))
			if err := dumpFiles(ctx, cfg, []string{path}, w); err != nil {
				cfg.log.Error("dump failed", zap.String("fixture", path), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.log.Warn("watch error", zap.Error(err))
		}
	}
}
