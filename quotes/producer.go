// Package quotes defines the fare quote producer contract and the concrete
// platforms the aggregator fans out to.
package quotes

import (
	"context"

	"triphub/fare"
	"triphub/geo"
)

// Producer is implemented by one ride-hailing platform integration. A
// Producer must never let an internal failure escape to its caller; it
// substitutes fare.Estimator output instead.
type Producer interface {
	PlatformName() string
	Quote(ctx context.Context, pickup, drop geo.Coordinate) []fare.Quote
}

// Registry holds producers in the deterministic order they were registered.
type Registry struct {
	producers []Producer
}

// NewRegistry builds a registry from a fixed, ordered producer list.
func NewRegistry(producers ...Producer) *Registry {
	return &Registry{producers: producers}
}

// All returns the registered producers in registration order.
func (r *Registry) All() []Producer {
	return r.producers
}
