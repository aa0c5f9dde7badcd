// Package watcher reports debounced changes of files in a directory.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/brot/internal/core/ports"
)

// DefaultDebounceWindow is the quiet period after which pending events are delivered.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid events into one batch holding the latest event per path.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[event.Path] = event.Operation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop cancels the window and drops pending events.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	events := d.drainLocked()
	d.timer = nil
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// drainLocked empties the pending set into events sorted by path.
func (d *Debouncer) drainLocked() []ports.WatchEvent {
	events := make([]ports.WatchEvent, 0, len(d.pending))
	for path, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: path, Operation: op})
	}
	clear(d.pending)
	slices.SortFunc(events, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return events
}
