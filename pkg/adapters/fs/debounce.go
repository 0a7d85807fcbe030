package fs

import (
	"sync"
	"time"

	"github.com/aretw0/linemark/pkg/core"
)

// debouncer coalesces bursts of events per resource. Editors typically
// produce several filesystem events for one save (truncate, write, rename);
// only the last event within the interval is delivered.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   map[string]*time.Timer{},
	}
}

// add schedules delivery of the event, replacing any pending delivery for
// the same resource. send runs on the timer goroutine.
func (d *debouncer) add(e core.Event, send func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := e.Resource
	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, key)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			send(e)
		}
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers to
// finish, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
