package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/aretw0/linemark"
	"github.com/aretw0/linemark/pkg/adapters/fs"
	"github.com/aretw0/linemark/pkg/core"
)

var errUnexpectedStore = errors.New("store is not filesystem-backed")

// openProject resolves the project root from the working directory and
// wires a service on top of the filesystem store. With autoInit set, a
// missing system directory is created (used by `set`, which may be the
// first linemark touch in a project).
func openProject(autoInit bool) (*core.Service, *fs.Store) {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Error getting working directory", err)
	}

	root, err := linemark.FindProjectRoot(wd)
	if err != nil {
		fatal("Error: not inside a project", err)
	}

	store, err := linemark.Init(root,
		linemark.WithAutoInit(autoInit),
		linemark.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Error initializing linemark", err)
	}

	fsStore, ok := store.(*fs.Store)
	if !ok {
		// The CLI always uses the filesystem adapter.
		fatal("Error initializing linemark", errUnexpectedStore)
	}

	svc := core.NewService(store, core.WithLogger(slog.Default()))
	return svc, fsStore
}
