package builder

import (
	"fmt"

	"github.com/katalvlaran/railpath/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters first and return
// sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates a graph with gopts, resolves bopts and applies cons
// in order. The first constructor error is returned wrapped with
// "BuildNetwork: %w"; the partial graph is discarded.
func BuildNetwork(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
