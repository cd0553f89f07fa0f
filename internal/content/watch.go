package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"folio/internal/eventbus"
)

// settle is how long the watcher waits for a burst of writes to finish
const settle = 150 * time.Millisecond

// Watcher reloads a content file when it changes and publishes the result
type Watcher struct {
	bus  eventbus.EventBus
	path string
}

// NewWatcher creates a watcher for path
func NewWatcher(bus eventbus.EventBus, path string) *Watcher {
	return &Watcher{bus: bus, path: path}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that replace the file on save are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	log.Printf("content: watching %s", abs)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(settle)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("content: watch error: %v", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	p, err := Load(w.path)
	if err != nil {
		log.Printf("content: reload failed: %v", err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "content reload failed", Err: err})
		return
	}
	w.bus.Publish(eventbus.ContentReloadedEvent{Path: w.path, Portfolio: p})
}
