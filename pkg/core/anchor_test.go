package core

import (
	"fmt"
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	doc := SliceDocument{
		"short line",
		strings.Repeat("x", 60),
		"",
		"exactly-forty-" + strings.Repeat("a", 26),
	}

	t.Run("Short Line Returns Whole Text", func(t *testing.T) {
		if got := Fingerprint(doc, 0); got != "short line" {
			t.Errorf("expected %q, got %q", "short line", got)
		}
	})

	t.Run("Long Line Truncates To 40", func(t *testing.T) {
		got := Fingerprint(doc, 1)
		if len(got) != FingerprintLen {
			t.Errorf("expected %d characters, got %d", FingerprintLen, len(got))
		}
		if got != strings.Repeat("x", 40) {
			t.Errorf("unexpected fingerprint %q", got)
		}
	})

	t.Run("Empty Line Fingerprints Empty", func(t *testing.T) {
		if got := Fingerprint(doc, 2); got != "" {
			t.Errorf("expected empty fingerprint, got %q", got)
		}
	})

	t.Run("Exactly Forty Characters Kept Whole", func(t *testing.T) {
		if got := Fingerprint(doc, 3); got != doc[3] {
			t.Errorf("expected %q, got %q", doc[3], got)
		}
	})

	t.Run("Out Of Range Is Empty", func(t *testing.T) {
		if got := Fingerprint(doc, -1); got != "" {
			t.Errorf("expected empty for negative line, got %q", got)
		}
		if got := Fingerprint(doc, len(doc)); got != "" {
			t.Errorf("expected empty past EOF, got %q", got)
		}
	})

	t.Run("Multibyte Counts Runes Not Bytes", func(t *testing.T) {
		wide := SliceDocument{strings.Repeat("é", 50)}
		got := Fingerprint(wide, 0)
		if want := strings.Repeat("é", 40); got != want {
			t.Errorf("expected 40 runes, got %d", len([]rune(got)))
		}
	})
}

// docWithMarker builds a document of n numbered filler lines with the
// marker text placed at the given line.
func docWithMarker(n, at int, marker string) SliceDocument {
	lines := make(SliceDocument, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("filler line %d", i)
	}
	lines[at] = marker
	return lines
}

func TestReanchor(t *testing.T) {
	t.Run("Stable Anchor Is Untouched", func(t *testing.T) {
		doc := docWithMarker(30, 10, "const x = 1;")
		line, found := Reanchor(doc, 10, "const x = 1;")
		if !found || line != 10 {
			t.Errorf("expected (10, true), got (%d, %v)", line, found)
		}
	})

	t.Run("Insertion Above Shifts Down", func(t *testing.T) {
		// 3 lines inserted above: the marked line moved from 10 to 13.
		doc := docWithMarker(33, 13, "FOO")
		line, found := Reanchor(doc, 10, "FOO")
		if !found || line != 13 {
			t.Errorf("expected (13, true), got (%d, %v)", line, found)
		}
	})

	t.Run("Deletion Above Shifts Up", func(t *testing.T) {
		doc := docWithMarker(27, 7, "FOO")
		line, found := Reanchor(doc, 10, "FOO")
		if !found || line != 7 {
			t.Errorf("expected (7, true), got (%d, %v)", line, found)
		}
	})

	t.Run("Shift Of Exactly Radius Is Found", func(t *testing.T) {
		doc := docWithMarker(60, 10+SearchRadius, "FOO")
		line, found := Reanchor(doc, 10, "FOO")
		if !found || line != 10+SearchRadius {
			t.Errorf("expected (%d, true), got (%d, %v)", 10+SearchRadius, line, found)
		}
	})

	t.Run("Shift Beyond Radius Is Lost", func(t *testing.T) {
		doc := docWithMarker(60, 10+SearchRadius+1, "FOO")
		line, found := Reanchor(doc, 10, "FOO")
		if found {
			t.Errorf("expected no match, got line %d", line)
		}
		if line != 10 {
			t.Errorf("lost anchor must keep old line 10, got %d", line)
		}
	})

	t.Run("Equal Distance Prefers Downward", func(t *testing.T) {
		doc := docWithMarker(30, 12, "FOO")
		doc[8] = "FOO" // both L+2 and L-2 match
		line, found := Reanchor(doc, 10, "FOO")
		if !found || line != 12 {
			t.Errorf("expected downward match at 12, got (%d, %v)", line, found)
		}
	})

	t.Run("Nearer Match Beats Farther", func(t *testing.T) {
		doc := docWithMarker(30, 15, "FOO")
		doc[11] = "FOO" // distance 1 up vs distance 5 down
		line, found := Reanchor(doc, 12, "FOO")
		if !found || line != 11 {
			t.Errorf("expected nearest match at 11, got (%d, %v)", line, found)
		}
	})

	t.Run("Candidates Outside Document Are Skipped", func(t *testing.T) {
		doc := docWithMarker(5, 1, "FOO")
		line, found := Reanchor(doc, 3, "FOO")
		if !found || line != 1 {
			t.Errorf("expected (1, true), got (%d, %v)", line, found)
		}
	})

	t.Run("Truncated Document Keeps Stale Line", func(t *testing.T) {
		doc := docWithMarker(5, 0, "FOO")
		// Bookmark far past the new EOF, marker not within radius.
		line, found := Reanchor(doc, 40, "BAR")
		if found || line != 40 {
			t.Errorf("expected stale (40, false), got (%d, %v)", line, found)
		}
	})
}
