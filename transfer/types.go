package transfer

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the transfer-minimizing search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("transfer: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("transfer: invalid option supplied")
)

// Options configures Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxTransits, if ≥ 0, discards routes needing more line changes.
	// -1 (the default) means unlimited.
	MaxTransits int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context and no transit limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxTransits: -1}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxTransits limits the number of line changes a route may make.
// n < 0 is recorded as ErrOptionViolation.
func WithMaxTransits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTransits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTransits = n
	}
}
