package core

import "context"

// LineUpdate carries one reanchoring result: the bookmark's new line and
// the fingerprint that matched there.
type LineUpdate struct {
	Mnemonic    string
	Line        int
	Fingerprint string
}

// Store defines the contract for persisting bookmarks.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, SQL, editor workspace state, ...).
//
// Implementations persist the whole collection on every mutating call;
// there is no partial or incremental persistence.
type Store interface {
	// Load returns all bookmarks in creation order.
	// Absence of prior state is not an error: a store that was never
	// written to loads as an empty collection.
	Load(ctx context.Context) ([]Bookmark, error)

	// Create appends a bookmark and persists. It fails with
	// ErrDuplicateMnemonic when the mnemonic is already taken; the store
	// is left unchanged in that case.
	Create(ctx context.Context, b Bookmark) error

	// Find returns the bookmark with the given mnemonic, or ErrNotFound.
	Find(ctx context.Context, mnemonic string) (Bookmark, error)

	// Remove deletes one bookmark and persists, or fails with ErrNotFound.
	Remove(ctx context.Context, mnemonic string) error

	// RemoveAll unconditionally empties the collection and persists.
	// Confirmation gates for this destructive action live with the caller.
	RemoveAll(ctx context.Context) error

	// UpdateLine replaces a bookmark's line and fingerprint together and
	// persists. A missing mnemonic is a no-op, not an error: a removal
	// racing a reanchor pass must stay harmless.
	UpdateLine(ctx context.Context, mnemonic string, line int, fingerprint string) error

	// UpdateLines applies a whole reanchor pass in a single persisted
	// write. Missing mnemonics are skipped, same as UpdateLine.
	UpdateLines(ctx context.Context, updates []LineUpdate) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// system directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can observe the documents
// their bookmarks point at.
type Watchable interface {
	// Watch emits an EventChange for every modification of a bookmarked
	// document whose resource matches the glob pattern ("" matches all).
	// The channel closes when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
