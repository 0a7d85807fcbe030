package linemark_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/linemark"
	"github.com/aretw0/linemark/pkg/adapters/fs"
)

// Example shows the whole lifecycle: place a bookmark, edit the file,
// reanchor, and read the corrected location back.
func Example() {
	dir, err := os.MkdirTemp("", "linemark-example-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "main.go")
	if err := os.WriteFile(target, []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		panic(err)
	}

	svc, err := linemark.New(dir, linemark.WithAutoInit(true))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	doc, _ := fs.ReadDocument(target)
	b, err := svc.Set(ctx, "entry", "main.go", 2, doc)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s -> %s:%d\n", b.Mnemonic, b.Resource, b.Line)

	// Two lines inserted above: the function moved from line 2 to line 4.
	edited := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {}\n")
	if err := os.WriteFile(target, edited, 0644); err != nil {
		panic(err)
	}

	doc, _ = fs.ReadDocument(target)
	if _, err := svc.Reanchor(ctx, "main.go", doc); err != nil {
		panic(err)
	}

	b, _ = svc.Get(ctx, "entry")
	fmt.Printf("%s -> %s:%d\n", b.Mnemonic, b.Resource, b.Line)

	// Output:
	// entry -> main.go:2
	// entry -> main.go:4
}
