package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when a storage slot changes.
type Event struct {
	Slot string
}

// Watch streams slot change events until ctx is cancelled. Callers should
// drain the returned channel to avoid blocking the watcher. The channel is
// closed once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; the next refresh
				// reads full slot state anyway.
			}
		}

		// Coalesce write bursts so a save touching temp files only wakes
		// the consumer once.
		var pending map[string]struct{}
		var timer *time.Timer
		var mu sync.Mutex
		flush := func() {
			mu.Lock()
			slots := pending
			pending = nil
			mu.Unlock()
			for slot := range slots {
				send(Event{Slot: slot})
			}
		}
		enqueue := func(slot string) {
			mu.Lock()
			if pending == nil {
				pending = make(map[string]struct{})
			}
			pending[slot] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(100*time.Millisecond, func() {
					mu.Lock()
					timer = nil
					mu.Unlock()
					flush()
				})
			}
			mu.Unlock()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Cannot classify the change; nudge every slot.
				for _, slot := range []string{slotItems, slotTheme, slotName, slotID} {
					enqueue(slot)
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if slot := slotForPath(p.basePath, evt.Name); slot != "" {
					enqueue(slot)
				}
			}
		}
	}()

	return events, nil
}

// slotForPath maps a filesystem path under base back to a slot name.
func slotForPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return ""
	}
	switch rel {
	case slotItems, slotTheme, slotName, slotID:
		return rel
	}
	return ""
}
