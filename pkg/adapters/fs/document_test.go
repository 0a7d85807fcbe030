package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/linemark/pkg/adapters/fs"
	"github.com/aretw0/linemark/pkg/core"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"LF", "a\nb\nc", []string{"a", "b", "c"}},
		{"CRLF Normalized", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"Trailing Newline Yields Empty Last Line", "a\n", []string{"a", ""}},
		{"Empty Document Is One Empty Line", "", []string{""}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := fs.SplitLines(c.in)
			if got.LineCount() != len(c.want) {
				t.Fatalf("expected %d lines, got %d", len(c.want), got.LineCount())
			}
			for i, w := range c.want {
				if got.Line(i) != w {
					t.Errorf("line %d: expected %q, got %q", i, w, got.Line(i))
				}
			}
		})
	}
}

func TestReadDocument(t *testing.T) {
	t.Run("Reads Existing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "f.txt")
		if err := os.WriteFile(path, []byte("one\ntwo"), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		doc, err := fs.ReadDocument(path)
		if err != nil {
			t.Fatalf("ReadDocument failed: %v", err)
		}
		if doc.LineCount() != 2 || doc.Line(1) != "two" {
			t.Errorf("unexpected document: %v", doc)
		}
	})

	t.Run("Missing File Is ErrNoDocument", func(t *testing.T) {
		_, err := fs.ReadDocument(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, core.ErrNoDocument) {
			t.Errorf("expected ErrNoDocument, got %v", err)
		}
	})
}
