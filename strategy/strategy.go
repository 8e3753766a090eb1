// Package strategy puts the four route searches behind one enum and one
// function shape, so callers (the aggregator, the command, benchmarks)
// can pick, run and time them uniformly.
//
// Every Func is a total function over station names: unknown or
// unreachable stations give route.NotFound, start == goal gives
// route.Trivial. Errors are reserved for a nil graph and cancellation.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/railpath/bfs"
	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/dijkstra"
	"github.com/katalvlaran/railpath/greedy"
	"github.com/katalvlaran/railpath/route"
	"github.com/katalvlaran/railpath/transfer"
)

// ErrUnknownKind is returned for a Kind or name that is not registered.
var ErrUnknownKind = errors.New("strategy: unknown kind")

// Kind names one search strategy.
type Kind int

const (
	// Hop is the fewest-edges search (package bfs).
	Hop Kind = iota

	// Transfer is the fewest-line-changes search (package transfer).
	Transfer

	// Greedy orders the frontier by raw edge distance (package greedy).
	Greedy

	// Cumulative is the shortest-distance search (package dijkstra).
	Cumulative
)

var names = [...]string{
	Hop:        "hop",
	Transfer:   "transfer",
	Greedy:     "greedy",
	Cumulative: "cumulative",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a strategy name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range names {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// All returns every Kind in declaration order.
func All() []Kind {
	return []Kind{Hop, Transfer, Greedy, Cumulative}
}

// Func is the uniform search signature.
type Func func(ctx context.Context, g *core.Graph, start, goal string) (route.Outcome, error)

var registry = map[Kind]Func{
	Hop: func(ctx context.Context, g *core.Graph, start, goal string) (route.Outcome, error) {
		return bfs.Search(g, start, goal, bfs.WithContext(ctx))
	},
	Transfer: func(ctx context.Context, g *core.Graph, start, goal string) (route.Outcome, error) {
		return transfer.Search(g, start, goal, transfer.WithContext(ctx))
	},
	Greedy: func(ctx context.Context, g *core.Graph, start, goal string) (route.Outcome, error) {
		return greedy.Search(g, start, goal, greedy.WithContext(ctx))
	},
	Cumulative: func(ctx context.Context, g *core.Graph, start, goal string) (route.Outcome, error) {
		return dijkstra.Search(g, start, goal, dijkstra.WithContext(ctx))
	},
}

// Lookup returns the Func registered for kind.
func Lookup(kind Kind) (Func, error) {
	fn, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	return fn, nil
}
