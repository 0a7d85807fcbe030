package linemark

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/linemark/internal/platform"
	"github.com/aretw0/linemark/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Configuration ---

// Option defines a functional option for configuring linemark.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the project store
// (creates the project and system directories).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the project directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service and adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".linemark").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new linemark Service for the project at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a store explicitly, without a service around it.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// FindProjectRoot recursively looks upwards for a project root indicator
// (.linemark or .git).
func FindProjectRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
