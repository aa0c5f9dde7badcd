package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brot/internal/adapters/watcher"
	"go.trai.ch/brot/internal/core/ports"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]ports.WatchEvent
}

func (r *recorder) record(events []ports.WatchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, events)
}

func (r *recorder) get() [][]ports.WatchEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.get(), 1)
		assert.Equal(t, []ports.WatchEvent{
			{Path: "/work/render.yaml", Operation: ports.OpWrite},
		}, rec.get()[0])
	})
}

func TestDebouncer_CoalescesPerPath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpCreate})
		d.Add(ports.WatchEvent{Path: "/work/b.yaml", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.get(), 1)
		assert.Equal(t, []ports.WatchEvent{
			{Path: "/work/b.yaml", Operation: ports.OpWrite},
			{Path: "/work/render.yaml", Operation: ports.OpWrite},
		}, rec.get()[0])
	})
}

func TestDebouncer_WindowRestarts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})
		time.Sleep(80 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.get())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.get(), 1)
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})
		time.Sleep(150 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpRemove})
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.get(), 2)
		assert.Equal(t, ports.OpRemove, rec.get()[1][0].Operation)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})
		d.Stop()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.get())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		d.Add(ports.WatchEvent{Path: "/work/render.yaml", Operation: ports.OpWrite})

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}
