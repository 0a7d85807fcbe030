// Package linemark is the Composition Root for the linemark application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// linemark attaches short memorable labels ("mnemonics") to lines of files in
// a project and keeps them pointing at the same line as files change. The core
// of the system is the bookmark reanchoring algorithm: every bookmark carries
// a 40-character fingerprint of its line, and after a document changes, an
// expanding-window search around the last known line restores the correct
// line number without any diff infrastructure from the host.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain (bookmarks, reanchor engine) is
//     isolated from persistence details.
//   - **Durable, uniqueness-enforced store**: one YAML blob per project,
//     written atomically on every mutation.
//   - **Reactive**: an fsnotify-backed watcher turns file saves into change
//     events that drive reanchoring.
//   - **Extensible**: other backends (SQL, editor workspace state) can plug
//     in via core.Store.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := linemark.New("./project",
//		linemark.WithAutoInit(true),
//		linemark.WithLogger(logger),
//	)
//
//	// Place a bookmark on line 12 of main.go
//	doc, _ := fs.ReadDocument("main.go")
//	bm, err := svc.Set(ctx, "entry", "main.go", 12, doc)
package linemark
