// Package watch monitors a plugins directory for changes and debounces
// bursts of filesystem events into a single notification.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/loot-go/lootsort/internal/logging"
)

// pluginExtensions are the on-disk suffixes (case-insensitive, and
// possibly ".ghost"-suffixed) that count as a plugin or plugin fixture
// change worth re-sorting for.
var pluginExtensions = []string{
	".esp", ".esm", ".esl",
	".omwgame", ".omwaddon", ".omwscripts",
	".plugin.toml",
}

// Watcher monitors a plugins directory for plugin-file changes using
// fsnotify, debouncing bursts of events from the same file into one
// notification.
type Watcher struct {
	Dir     string
	Changes <-chan string // paths of changed files, Dir joined with the file name

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a new watcher for dir. Call Start to begin watching.
func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	w := &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the plugins directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and its channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 200 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.changes <- file
				}
				return
			}
			if !isPluginFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- file
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Error("watch error", "err", err)
		}
	}
}

func isPluginFile(name string) bool {
	lower := strings.TrimSuffix(strings.ToLower(filepath.Base(name)), ".ghost")
	for _, ext := range pluginExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
