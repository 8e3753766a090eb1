package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/railpath/route"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxWeight indicates that WithMaxWeight got a negative or NaN value.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be non-negative")

	// ErrBadWeight indicates that WithWeight got an unknown edge attribute.
	ErrBadWeight = errors.New("dijkstra: unknown weight attribute")
)

// Options configures the behavior of Search.
//
// Ctx       – cancellation and deadlines; context.Background() by default.
// Weight    – edge attribute summed along the route; route.ByDistance by default.
// MaxWeight – labels whose cumulative weight would exceed it are dropped.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Ctx       context.Context
	Weight    route.Weight
	MaxWeight float64

	err error // first violation recorded by an Option
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeight selects the attribute to minimize.
// An unknown attribute is reported by Search as ErrBadWeight.
func WithWeight(w route.Weight) Option {
	return func(o *Options) {
		if !w.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrBadWeight, w)
			return
		}
		o.Weight = w
	}
}

// WithMaxWeight caps the cumulative weight a route may reach.
// Negative values are reported by Search as ErrBadMaxWeight.
func WithMaxWeight(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxWeight, max)
			return
		}
		o.MaxWeight = max
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:       context.Background()
//   - Weight:    route.ByDistance
//   - MaxWeight: +Inf
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Weight:    route.ByDistance,
		MaxWeight: math.Inf(1),
	}
}
