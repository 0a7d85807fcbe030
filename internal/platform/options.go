package platform

import (
	"log/slog"

	"github.com/aretw0/linemark/pkg/core"
)

// options holds the internal configuration for the linemark service.
type options struct {
	store   core.Store
	logger  *slog.Logger
	adapter string
	config  map[string]interface{}
}

// Option defines a functional option for configuring linemark.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:   nil,
		logger:  nil,
		adapter: "fs",
		config:  make(map[string]interface{}),
	}
}

// WithAutoInit enables automatic initialization of the project store
// (creates the project and system directories).
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist ensures the project directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the service and adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, SQL).
// If provided, the default filesystem adapter will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".linemark").
// Defaults to ".linemark" if not set (handled by adapter).
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithEventBuffer allows specifying the size of the event broker buffer.
// Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring
// during the Watch loop. This allows applications to log or react to runtime
// watcher failures (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
