package greedy

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/railpath/route"
)

// Sentinel errors for the greedy-edge search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("greedy: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")
)

// Options configures Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Weight picks the edge attribute used as queue priority.
	Weight route.Weight

	err error
}

// Option mutates Options; invalid values surface as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns a background context and distance priority.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Weight: route.ByDistance}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeight selects the edge attribute that orders the frontier.
func WithWeight(w route.Weight) Option {
	return func(o *Options) {
		if !w.Valid() {
			o.err = fmt.Errorf("%w: unknown weight %v", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}
