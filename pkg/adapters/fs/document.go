package fs

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/linemark/pkg/core"
)

// ReadDocument loads a file and splits it into a line-indexed snapshot for
// fingerprinting and reanchoring.
func ReadDocument(path string) (core.SliceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, core.ErrNoDocument)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on '\n' and strips a trailing '\r' from each line,
// so CRLF documents fingerprint identically to LF ones.
func SplitLines(text string) core.SliceDocument {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
