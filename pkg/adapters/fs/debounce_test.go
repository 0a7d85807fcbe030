package fs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/linemark/pkg/core"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var delivered atomic.Int32
	for i := 0; i < 10; i++ {
		d.add(core.Event{Type: core.EventChange, Resource: "f.go"}, func(core.Event) {
			delivered.Add(1)
		})
	}

	time.Sleep(100 * time.Millisecond)
	if got := delivered.Load(); got != 1 {
		t.Errorf("expected 1 delivery for a burst, got %d", got)
	}
}

func TestDebouncerSeparatesResources(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	var delivered atomic.Int32
	send := func(core.Event) { delivered.Add(1) }

	d.add(core.Event{Type: core.EventChange, Resource: "a.go"}, send)
	d.add(core.Event{Type: core.EventChange, Resource: "b.go"}, send)

	time.Sleep(80 * time.Millisecond)
	if got := delivered.Load(); got != 2 {
		t.Errorf("expected 2 deliveries for distinct resources, got %d", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var delivered atomic.Int32
	d.add(core.Event{Type: core.EventChange, Resource: "a.go"}, func(core.Event) {
		delivered.Add(1)
	})

	d.stopAndWait(time.Second)

	time.Sleep(80 * time.Millisecond)
	if got := delivered.Load(); got != 0 {
		t.Errorf("expected pending delivery to be dropped after stop, got %d", got)
	}
}
