// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function when any of a set of files is written or
// created. The directories of the files are watched, so that files that
// are replaced by a rename, as many editors do, are still seen. Bursts of
// events within [Watcher.Delay] of each other are coalesced into one call.
type Watcher struct {

	// Delay is the debounce delay.
	Delay time.Duration

	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(files []string)

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher returns a new [Watcher] for the given files, which calls
// the given function with the changed files. It does not start watching
// until [Watcher.Start] is called.
func NewWatcher(onChange func(files []string), files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsx: creating file watcher: %w", err)
	}
	w := &Watcher{Delay: 100 * time.Millisecond, watcher: fw, files: map[string]bool{},
		onChange: onChange, pending: map[string]bool{}, stop: make(chan struct{})}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
	}
	return w, nil
}

// Start starts watching in a new goroutine.
func (w *Watcher) Start() error {
	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for d := range dirs {
		if err := w.watcher.Add(d); err != nil {
			return fmt.Errorf("fsx: watching directory %s: %w", d, err)
		}
		slog.Debug("watching directory", "dir", d)
	}
	w.wg.Add(1)
	go w.watch()
	return nil
}

// Stop stops watching, waiting for the watch goroutine to return.
// Changes that are still pending are dropped.
func (w *Watcher) Stop() error {
	select {
	case <-w.stop:
		return nil
	default:
		close(w.stop)
	}
	w.wg.Wait()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			slog.Debug("file changed", "file", abs)
			w.add(abs)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watching files", "err", err)
		case <-w.stop:
			return
		}
	}
}

// add records a changed file and restarts the debounce timer.
func (w *Watcher) add(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[file] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Delay, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	files := make([]string, 0, len(w.pending))
	for f := range w.pending {
		files = append(files, f)
	}
	clear(w.pending)
	w.timer = nil
	w.mu.Unlock()
	if len(files) == 0 {
		return
	}
	select {
	case <-w.stop:
		return
	default:
	}
	slices.Sort(files)
	w.onChange(files)
}
