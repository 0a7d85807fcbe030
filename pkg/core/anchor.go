package core

const (
	// FingerprintLen is the number of leading characters captured as a
	// bookmark's lexical anchor. The anchor is a plain prefix, not a hash:
	// two lines sharing the same first 40 characters (blank lines, repeated
	// boilerplate) are indistinguishable and can produce false matches.
	FingerprintLen = 40

	// SearchRadius bounds the expanding-window search around a bookmark's
	// last known line. Shifts larger than this leave the bookmark stale.
	SearchRadius = 20
)

// Fingerprint returns the lexical anchor of the given line: its first
// FingerprintLen characters, the whole line when shorter, or the empty
// string when line falls outside [0, LineCount). No whitespace or case
// normalization is applied; comparisons are exact-prefix.
func Fingerprint(doc Document, line int) string {
	if line < 0 || line >= doc.LineCount() {
		return ""
	}
	text := doc.Line(line)
	runes := []rune(text)
	if len(runes) > FingerprintLen {
		return string(runes[:FingerprintLen])
	}
	return text
}

// Reanchor recomputes the line a bookmark should point at after its
// document changed. It checks the last known line first (the common case:
// an edit elsewhere in the file), then candidates at increasing distance,
// trying line+offset before line-offset at each step. Checking the positive
// offset first is the defined tie-break: at equal distance a downward shift
// wins over an upward one. The first fingerprint match is accepted.
//
// It returns the matching line and true, or the original line and false
// when nothing within SearchRadius matches. Callers must leave the bookmark
// untouched in the latter case; a later edit may bring the line back within
// reach.
func Reanchor(doc Document, line int, fingerprint string) (int, bool) {
	if Fingerprint(doc, line) == fingerprint {
		return line, true
	}
	for offset := 1; offset <= SearchRadius; offset++ {
		for _, candidate := range [2]int{line + offset, line - offset} {
			if candidate < 0 || candidate >= doc.LineCount() {
				continue
			}
			if Fingerprint(doc, candidate) == fingerprint {
				return candidate, true
			}
		}
	}
	return line, false
}
