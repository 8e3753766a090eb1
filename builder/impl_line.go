package builder

import (
	"github.com/katalvlaran/railpath/core"
)

const (
	methodCorridor  = "Corridor"
	methodLoop      = "Loop"
	minCorridorSize = 2
	minLoopSize     = 3
)

// Corridor strings n stations idFn(0)..idFn(n-1) along line.
//
// Complexity: O(n).
func Corridor(line string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCorridorSize {
			return builderErrorf(methodCorridor, "n=%d < min=%d: %w", n, minCorridorSize, ErrTooFewStations)
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.add(g, methodCorridor, cfg.idFn(i), cfg.idFn(i+1), line); err != nil {
				return err
			}
		}

		return nil
	}
}

// Loop is a Corridor closed back onto its first station.
//
// Complexity: O(n).
func Loop(line string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLoopSize {
			return builderErrorf(methodLoop, "n=%d < min=%d: %w", n, minLoopSize, ErrTooFewStations)
		}
		for i := 0; i < n; i++ {
			if err := cfg.add(g, methodLoop, cfg.idFn(i), cfg.idFn((i+1)%n), line); err != nil {
				return err
			}
		}

		return nil
	}
}
