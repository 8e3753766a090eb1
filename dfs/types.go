package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for depth-first enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned by Reachable when the start station is missing.
	ErrStartNotFound = errors.New("dfs: start station not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Options configures Routes and Reachable.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if ≥ 0, stops descending after that many hops.
	// -1 (the default) means unlimited.
	MaxDepth int

	// Limit, if > 0, stops Routes after that many routes were collected.
	Limit int

	// FilterEdge, if set, is consulted before an edge is followed;
	// returning false skips it.
	FilterEdge func(from, to, line string) bool

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context with no depth or count limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the number of hops of an enumerated route.
// limit < 0 is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithLimit caps the number of routes Routes returns.
// n ≤ 0 is recorded as ErrOptionViolation.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithFilterEdge installs an edge predicate.
func WithFilterEdge(fn func(from, to, line string) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}
