package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pomobar/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the config file when it changes on disk.
// The directory is watched rather than the file so editors that save by rename are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(preferences.Settings)
	onError  func(error)

	timerMu sync.Mutex
	timer   *time.Timer

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. The parent directory must exist.
func NewWatcher(path string, onChange func(preferences.Settings), onError func(error)) (*Watcher, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	if onError == nil {
		onError = func(err error) {
			log.Printf("config watcher: %v", err)
		}
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		onChange: onChange,
		onError:  onError,
		stopCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the quiet period before a reload.
func (watcher *Watcher) SetDebounce(debounce time.Duration) {
	if debounce > 0 {
		watcher.debounce = debounce
	}
}

// Start launches the event loop goroutine.
func (watcher *Watcher) Start() {
	go watcher.eventLoop()
}

// Stop closes the watcher and cancels a pending reload. Safe to call multiple times.
func (watcher *Watcher) Stop() {
	watcher.stopOnce.Do(func() {
		close(watcher.stopCh)
		_ = watcher.watcher.Close()

		watcher.timerMu.Lock()
		if watcher.timer != nil {
			watcher.timer.Stop()
		}
		watcher.timerMu.Unlock()
	})
}

func (watcher *Watcher) eventLoop() {
	for {
		select {
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return
			}
			watcher.handleEvent(event)
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return
			}
			watcher.onError(err)
		case <-watcher.stopCh:
			return
		}
	}
}

func (watcher *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != watcher.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	watcher.resetDebounce()
}

func (watcher *Watcher) resetDebounce() {
	watcher.timerMu.Lock()
	defer watcher.timerMu.Unlock()

	if watcher.timer != nil {
		watcher.timer.Reset(watcher.debounce)
		return
	}
	watcher.timer = time.AfterFunc(watcher.debounce, watcher.reload)
}

func (watcher *Watcher) reload() {
	select {
	case <-watcher.stopCh:
		return
	default:
	}

	if _, err := os.Stat(watcher.path); err != nil {
		return
	}
	settings, err := LoadSettings(watcher.path)
	if err != nil {
		watcher.onError(err)
		return
	}
	if watcher.onChange != nil {
		watcher.onChange(settings)
	}
}
