package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of fsnotify events a single atomic
// rewrite produces into one reload notification.
const debounceWindow = 300 * time.Millisecond

// Watch reports external changes to the data files. onChange is called
// with the base name of the changed file, debounced, from a dedicated
// goroutine. The returned stop function shuts the watcher down.
//
// Only the store's own data files trigger callbacks; temp files and the
// lock file are ignored.
func (s *Store) Watch(onChange func(file string)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.dir, err)
	}

	done := make(chan struct{})
	go func() {
		pending := make(map[string]struct{})
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if !isDataFile(name) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				pending[name] = struct{}{}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
				} else {
					timer.Reset(debounceWindow)
				}
				fire = timer.C

			case <-fire:
				for name := range pending {
					slog.Debug("store_file_changed", slog.String("file", name))
					onChange(name)
				}
				pending = make(map[string]struct{})
				fire = nil

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("store_watch_error", slog.String("error", watchErr.Error()))

			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}

func isDataFile(name string) bool {
	switch name {
	case aliasesFile, historyFile, quickAccessFile:
		return true
	}
	return false
}
