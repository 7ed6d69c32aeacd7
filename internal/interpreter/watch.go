package interpreter

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// RulesWatcher hot-reloads a rules YAML file into an Interpreter while
// the server runs. The containing directory is watched so editors that
// replace the file (rename-over-write) are still caught.
type RulesWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func WatchRules(interp *Interpreter, path string) (*RulesWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create rules watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch rules dir: %w", err)
	}

	rw := &RulesWatcher{watcher: watcher, done: make(chan struct{})}
	go rw.loop(interp, filepath.Clean(path))
	return rw, nil
}

func (rw *RulesWatcher) loop(interp *Interpreter, path string) {
	for {
		select {
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			rules, err := LoadRules(path)
			if err != nil {
				slog.Warn("rules reload failed", "path", path, "err", err)
				continue
			}
			interp.SetRules(rules)
			slog.Info("rules reloaded", "path", path)
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("rules watcher error", "err", err)
		case <-rw.done:
			return
		}
	}
}

func (rw *RulesWatcher) Close() error {
	close(rw.done)
	return rw.watcher.Close()
}
