package core

// Document provides indexed, zero-based access to the current lines of a
// document. It deliberately carries no notion of a live editor buffer: any
// snapshot of a file's content can back it, which keeps the reanchor engine
// testable without a running host.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the text of line i. i must be within [0, LineCount).
	Line(i int) string
}

// SliceDocument adapts a slice of lines to the Document interface.
type SliceDocument []string

// LineCount implements Document.
func (d SliceDocument) LineCount() int { return len(d) }

// Line implements Document.
func (d SliceDocument) Line(i int) string { return d[i] }
