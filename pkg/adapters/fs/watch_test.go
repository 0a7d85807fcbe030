package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/linemark/pkg/core"
)

// writeFile is a small helper for watch tests.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func waitForChange(t *testing.T, events <-chan core.Event, timeout time.Duration) (core.Event, bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return core.Event{}, false
			}
			if e.Type == core.EventChange {
				return e, true
			}
		case <-deadline:
			return core.Event{}, false
		}
	}
}

func TestWatchEmitsChangeForBookmarkedFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, path := setupStore(t)
	target := filepath.Join(path, "src", "app.go")
	writeFile(t, target, "package app\n\nfunc Run() {}\n")

	require.NoError(t, store.Create(ctx, core.Bookmark{
		Mnemonic:    "run",
		Resource:    "src/app.go",
		Line:        2,
		Fingerprint: "func Run() {}",
	}))

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)

	// Give the watcher a beat to arm before mutating the file.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, target, "package app\n\n// moved\nfunc Run() {}\n")

	e, ok := waitForChange(t, events, 3*time.Second)
	require.True(t, ok, "expected a CHANGE event")
	require.Equal(t, "src/app.go", e.Resource)
}

func TestWatchIgnoresUnbookmarkedFiles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, path := setupStore(t)
	marked := filepath.Join(path, "marked.txt")
	unmarked := filepath.Join(path, "unmarked.txt")
	writeFile(t, marked, "keep\n")
	writeFile(t, unmarked, "noise\n")

	require.NoError(t, store.Create(ctx, core.Bookmark{
		Mnemonic: "keep", Resource: "marked.txt", Line: 0, Fingerprint: "keep",
	}))

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	writeFile(t, unmarked, "more noise\n")

	if e, ok := waitForChange(t, events, 500*time.Millisecond); ok {
		t.Fatalf("unexpected event for unbookmarked file: %+v", e)
	}
}

func TestWatchPatternFilter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, path := setupStore(t)
	goFile := filepath.Join(path, "a.go")
	mdFile := filepath.Join(path, "b.md")
	writeFile(t, goFile, "package a\n")
	writeFile(t, mdFile, "# b\n")

	require.NoError(t, store.Create(ctx, core.Bookmark{Mnemonic: "g", Resource: "a.go", Line: 0, Fingerprint: "package a"}))
	require.NoError(t, store.Create(ctx, core.Bookmark{Mnemonic: "m", Resource: "b.md", Line: 0, Fingerprint: "# b"}))

	events, err := store.Watch(ctx, "*.md")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	writeFile(t, goFile, "package a // edited\n")
	writeFile(t, mdFile, "# b edited\n")

	e, ok := waitForChange(t, events, 3*time.Second)
	require.True(t, ok, "expected a CHANGE event for the markdown file")
	require.Equal(t, "b.md", e.Resource)

	if e, ok := waitForChange(t, events, 300*time.Millisecond); ok {
		t.Fatalf("go file should have been filtered out, got %+v", e)
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	store, path := setupStore(t)
	writeFile(t, filepath.Join(path, "f.txt"), "x\n")
	require.NoError(t, store.Create(ctx, core.Bookmark{Mnemonic: "f", Resource: "f.txt", Line: 0, Fingerprint: "x"}))

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// Drain any straggler; the close must follow.
			for range events {
			}
		}
	case <-time.After(3 * time.Second):
		t.Fatal("events channel did not close after cancel")
	}
}
