package platform

import (
	"github.com/aretw0/linemark/pkg/core"
)

// New wires a core.Service to a configured store.
//
//	svc, err := linemark.New("./project", linemark.WithAutoInit(true))
//
// The uri argument is adapter-specific (a directory path for 'fs').
func New(uri string, opts ...Option) (*core.Service, error) {
	store, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again to pick up the logger and buffer for wiring.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	svcOpts := []core.ServiceOption{}
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}
	if size, ok := o.config["event_buffer"].(int); ok && size > 0 {
		svcOpts = append(svcOpts, core.WithEventBuffer(size))
	}

	return core.NewService(store, svcOpts...), nil
}
