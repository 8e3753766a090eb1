package builder

import (
	"fmt"

	"github.com/katalvlaran/railpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseStations = 2
	probMin                 = 0.0
	probMax                 = 1.0
	randomLineFmt           = "R%d"
)

// RandomSparse connects every unordered pair i<j of n stations with
// probability p and assigns the edge to a uniformly drawn line out of
// lines. On directed graphs both orientations are drawn independently.
// Stations left without an edge do not exist in the graph.
//
// p of exactly 0 or 1 needs no RNG when lines == 1; any other combination
// returns ErrNeedRandSource without an RNG.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, lines int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseStations {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, minRandomSparseStations, ErrTooFewStations)
		}
		if lines < 1 {
			return builderErrorf(methodRandomSparse, "lines=%d < 1: %w", lines, ErrTooFewStations)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && ((p > probMin && p < probMax) || lines > 1) {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}

		pick := func(u, v string) error {
			if rng != nil && rng.Float64() >= p {
				return nil
			}
			if rng == nil && p == probMin {
				return nil
			}
			line := 0
			if lines > 1 {
				line = rng.Intn(lines)
			}

			return cfg.add(g, methodRandomSparse, u, v, fmt.Sprintf(randomLineFmt, line))
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := pick(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				if g.Directed() {
					if err := pick(cfg.idFn(j), cfg.idFn(i)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
