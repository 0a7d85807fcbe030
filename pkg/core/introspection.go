package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	EventBufferSize int    `json:"event_buffer_size"`
	StoreType       string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		// Try to get component type if store implements introspection.Component
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return ServiceState{
		EventBufferSize: s.eventBufferSize,
		StoreType:       storeType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
