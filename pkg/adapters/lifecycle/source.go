// Package lifecycle bridges linemark events into a lifecycle runtime.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/linemark/pkg/core"
)

type bookmarkSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits bookmark events.
// It bridges the typed event channel (store mutations and document changes)
// to the generic lifecycle Event interface, so a host runtime can supervise
// and observe the stream like any other source.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &bookmarkSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *bookmarkSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *bookmarkSource) Start(ctx context.Context) error {
	// The bridge itself runs under lifecycle.Go so it is tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
