package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultEventBuffer is the default capacity of the service event channel.
const DefaultEventBuffer = 64

// Service handles the business logic for bookmarks: placement, lookup,
// removal, and the reanchor pass that follows a document change.
type Service struct {
	store  Store
	logger *slog.Logger

	events          chan Event
	eventBufferSize int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for debug output. A nil logger disables
// logging.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEventBuffer sets the capacity of the event channel returned by
// Events and Watch.
func WithEventBuffer(size int) ServiceOption {
	return func(s *Service) {
		s.eventBufferSize = size
	}
}

// NewService creates a new Service backed by the given store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:           store,
		eventBufferSize: DefaultEventBuffer,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.events = make(chan Event, s.eventBufferSize)
	return s
}

// Events returns the refresh channel. Every successful mutation and every
// completed reanchor pass publishes one event here. Publishing never
// blocks; when no consumer keeps up, events are dropped.
func (s *Service) Events() <-chan Event {
	return s.events
}

func (s *Service) publish(e Event) {
	e.Timestamp = time.Now().Unix()
	select {
	case s.events <- e:
	default:
		if s.logger != nil {
			s.logger.Debug("event dropped, no consumer", "event", e.String())
		}
	}
}

// Set validates the mnemonic, captures the fingerprint of the requested
// line, and creates the bookmark. The line is zero-based and must exist in
// the document snapshot.
func (s *Service) Set(ctx context.Context, mnemonic, resource string, line int, doc Document) (Bookmark, error) {
	if !ValidMnemonic(mnemonic) {
		return Bookmark{}, fmt.Errorf("%q: %w", mnemonic, ErrInvalidMnemonic)
	}
	if doc == nil {
		return Bookmark{}, ErrNoDocument
	}
	if line < 0 || line >= doc.LineCount() {
		return Bookmark{}, fmt.Errorf("line %d of %q: %w", line, resource, ErrLineOutOfRange)
	}

	b := Bookmark{
		Mnemonic:    mnemonic,
		Resource:    resource,
		Line:        line,
		Fingerprint: Fingerprint(doc, line),
	}

	if err := s.store.Create(ctx, b); err != nil {
		return Bookmark{}, err
	}

	s.publish(Event{Type: EventCreate, Mnemonic: mnemonic, Resource: resource})
	return b, nil
}

// Get retrieves a bookmark by mnemonic.
func (s *Service) Get(ctx context.Context, mnemonic string) (Bookmark, error) {
	return s.store.Find(ctx, mnemonic)
}

// List retrieves all bookmarks in creation order.
func (s *Service) List(ctx context.Context) ([]Bookmark, error) {
	return s.store.Load(ctx)
}

// ListResource retrieves the bookmarks belonging to one document.
func (s *Service) ListResource(ctx context.Context, resource string) ([]Bookmark, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var out []Bookmark
	for _, b := range all {
		if b.Resource == resource {
			out = append(out, b)
		}
	}
	return out, nil
}

// Remove deletes one bookmark.
func (s *Service) Remove(ctx context.Context, mnemonic string) error {
	b, err := s.store.Find(ctx, mnemonic)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, mnemonic); err != nil {
		return err
	}

	s.publish(Event{Type: EventRemove, Mnemonic: mnemonic, Resource: b.Resource})
	return nil
}

// Clear empties the whole store. The yes/no gate for this destructive
// action lives with the caller.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.RemoveAll(ctx); err != nil {
		return err
	}

	s.publish(Event{Type: EventClear})
	return nil
}

// Reanchor restores correct line numbers for every bookmark of the given
// resource after its document changed. doc must be a snapshot of the
// document's current content. All corrections of one pass persist in a
// single store write. Bookmarks whose anchor cannot be found within
// SearchRadius keep their recorded line and go stale; without diff
// information the engine cannot tell "edit too large" from "line gone".
//
// It returns the number of bookmarks that moved.
func (s *Service) Reanchor(ctx context.Context, resource string, doc Document) (int, error) {
	marks, err := s.ListResource(ctx, resource)
	if err != nil {
		return 0, err
	}

	var updates []LineUpdate
	for _, b := range marks {
		line, found := Reanchor(doc, b.Line, b.Fingerprint)
		if !found {
			if s.logger != nil {
				s.logger.Debug("anchor lost", "mnemonic", b.Mnemonic, "resource", resource, "line", b.Line)
			}
			continue
		}
		if line == b.Line {
			continue
		}
		updates = append(updates, LineUpdate{
			Mnemonic:    b.Mnemonic,
			Line:        line,
			Fingerprint: b.Fingerprint,
		})
	}

	if len(updates) == 0 {
		return 0, nil
	}

	if err := s.store.UpdateLines(ctx, updates); err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Debug("reanchored", "resource", resource, "moved", len(updates))
	}

	s.publish(Event{Type: EventReanchor, Resource: resource})
	return len(updates), nil
}

// Watch observes changes to bookmarked documents if the store supports it.
// The returned channel is decoupled from the store's own event loop by a
// buffering goroutine, so a slow consumer never blocks the watcher.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}

	upstream, err := w.Watch(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, s.eventBufferSize)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-upstream:
				if !ok {
					return
				}
				select {
				case out <- e:
				default:
					if s.logger != nil {
						s.logger.Debug("watch event dropped, consumer too slow", "event", e.String())
					}
				}
			}
		}
	}()

	return out, nil
}
