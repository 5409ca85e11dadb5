package styles

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// ThemeChange is delivered to the ThemeWatcher callback after the watched
// file changes. Exactly one of Theme and Err is set.
type ThemeChange struct {
	Name  ThemeName
	Theme *ThemeFile
	Err   error
}

// ThemeWatcher watches a single custom theme file and reports each change.
//
// The callback runs on the watcher's goroutine. It must not touch the
// custom theme registry or the active theme directly; forward the change
// to the UI loop instead.
type ThemeWatcher struct {
	watcher  *fsnotify.Watcher
	name     ThemeName
	path     string
	onChange func(ThemeChange)

	stopCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	done      chan struct{}
}

// NewThemeWatcher creates a watcher for the file at path, registered under
// name. The containing directory is watched so that editors that save by
// rename are still seen.
func NewThemeWatcher(name ThemeName, path string, onChange func(ThemeChange)) (*ThemeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	return &ThemeWatcher{
		watcher:  watcher,
		name:     name,
		path:     filepath.Clean(path),
		onChange: onChange,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching for changes
func (w *ThemeWatcher) Start() {
	w.startOnce.Do(func() {
		w.started = true
		go w.watchLoop()
	})
}

// Stop stops the watcher and waits for its goroutine to exit. Start and
// Stop must be called from the same goroutine.
func (w *ThemeWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	if w.started {
		<-w.done
	}
}

func (w *ThemeWatcher) watchLoop() {
	defer close(w.done)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounceTimer.Reset(watchDebounce)

		case <-debounceTimer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onChange(ThemeChange{Name: w.name, Err: err})
		}
	}
}

func (w *ThemeWatcher) reload() {
	theme, err := LoadThemeFile(w.path)
	if err != nil {
		w.onChange(ThemeChange{Name: w.name, Err: err})
		return
	}
	w.onChange(ThemeChange{Name: w.name, Theme: theme})
}
