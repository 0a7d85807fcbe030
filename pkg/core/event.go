package core

import "fmt"

// EventType represents the kind of change observed in the bookmark set or
// in one of the bookmarked documents.
type EventType string

const (
	EventCreate   EventType = "CREATE"
	EventRemove   EventType = "REMOVE"
	EventClear    EventType = "CLEAR"
	EventReanchor EventType = "REANCHOR"

	// EventChange signals that a bookmarked document's content changed.
	// It is produced by watch adapters and is the only event type that
	// drives reanchoring; every other type is a refresh signal for front
	// ends (gutters, lists) observing the store.
	EventChange EventType = "CHANGE"
)

// Event is the notification emitted after every successful store mutation
// and for every observed document change.
type Event struct {
	Type      EventType
	Mnemonic  string // empty for document-level events
	Resource  string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so events can be bridged into a
// lifecycle runtime unchanged.
func (e Event) String() string {
	if e.Mnemonic != "" {
		return fmt.Sprintf("%s %s", e.Type, e.Mnemonic)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Resource)
}
