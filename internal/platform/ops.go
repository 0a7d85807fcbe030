package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/linemark/pkg/adapters/fs"
	"github.com/aretw0/linemark/pkg/core"
)

// Init builds and initializes the store for the given project.
// The uri argument is adapter-specific (a directory path for 'fs').
//
// It returns the configured core.Store.
func Init(uri string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected store
	if o.store != nil {
		return o.store, nil
	}

	// 2. Initialize based on adapter
	var store core.Store
	var err error

	switch o.adapter {
	case "fs":
		store, err = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run initialization
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Store, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	systemDir, _ := o.config["system_dir"].(string)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	resolvedPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return fs.NewStore(fs.Config{
		Path:         resolvedPath,
		AutoInit:     autoInit,
		MustExist:    mustExist || !autoInit,
		SystemDir:    systemDir,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	}), nil
}
