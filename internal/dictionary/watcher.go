package dictionary

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"lexibar/internal/eventbus"
)

// reloadDelay lets editors finish atomic writes before the file is read
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a dictionary when its file changes on disk
type Watcher struct {
	dict    *Dictionary
	path    string
	bus     eventbus.EventBus
	watcher *fsnotify.Watcher
	delay   time.Duration
}

// NewWatcher watches path and reloads dict from it. The parent directory is
// watched so that rename-over-write saves are seen.
func NewWatcher(dict *Dictionary, path string, bus eventbus.EventBus) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{dict: dict, path: abs, bus: bus, watcher: fw, delay: reloadDelay}, nil
}

// Run processes file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(w.delay)

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Dictionary watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	entries, err := LoadFile(w.path)
	if err != nil {
		// keep serving the previous list
		log.Printf("Dictionary reload failed: %v", err)
		return
	}
	w.dict.Replace(entries)
	log.Printf("Dictionary reloaded from %s (%d words)", w.path, w.dict.Len())
	if w.bus != nil {
		w.bus.Publish(eventbus.DictionaryReloadedEvent{Path: w.path, Words: w.dict.Len()})
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
