// Package fixture builds the small rail networks shared by the search,
// aggregation and tooling tests, and enumerates every simple path of a
// graph so optimality claims can be checked by brute force.
package fixture

import (
	"math"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/dfs"
	"github.com/katalvlaran/railpath/route"
)

// Hop is one edge record for Build.
type Hop struct {
	From, To, Line           string
	Distance, Cost, Duration float64
}

// Build returns a bidirectional graph holding hops in order. It panics on
// invalid input because fixtures are static test data.
func Build(hops ...Hop) *core.Graph {
	g := core.NewGraph()
	for _, h := range hops {
		if _, err := g.AddEdge(h.From, h.To, h.Line, h.Distance, h.Cost, h.Duration); err != nil {
			panic(err)
		}
	}

	return g
}

// Triangle is the A/B/C scenario: A–B and B–C on line X (d=10, c=100, t=5)
// and a direct A–C on line Y (d=30, c=50, t=20).
func Triangle() *core.Graph {
	return Build(
		Hop{"A", "B", "X", 10, 100, 5},
		Hop{"B", "C", "X", 10, 100, 5},
		Hop{"A", "C", "Y", 30, 50, 20},
	)
}

// Islands has two components: {A,B} and {C,D}.
func Islands() *core.Graph {
	return Build(
		Hop{"A", "B", "L1", 1, 1, 1},
		Hop{"C", "D", "L2", 1, 1, 1},
	)
}

// Mesh is a 7-station network where the fewest-hops, fewest-transfers and
// shortest-distance routes from S to T all differ:
//
//	S–A–T       lines P,Q     2 hops, 1 transit,  d=100 c=20 t=60
//	S–C–D–E–T   line M only   4 hops, 0 transits, d=40  c=32 t=24
//	S–F–G–T     lines P,Q,R   3 hops, 2 transits, d=15  c=60 t=12
func Mesh() *core.Graph {
	return Build(
		Hop{"S", "A", "P", 50, 10, 30},
		Hop{"A", "T", "Q", 50, 10, 30},
		Hop{"S", "C", "M", 10, 8, 6},
		Hop{"C", "D", "M", 10, 8, 6},
		Hop{"D", "E", "M", 10, 8, 6},
		Hop{"E", "T", "M", 10, 8, 6},
		Hop{"S", "F", "P", 5, 20, 4},
		Hop{"F", "G", "Q", 5, 20, 4},
		Hop{"G", "T", "R", 5, 20, 4},
	)
}

// Paths enumerates every simple path (no repeated station) from start to
// goal, one Outcome per distinct edge sequence. Exponential; small graphs only.
func Paths(g *core.Graph, start, goal string) []route.Outcome {
	out, err := dfs.Routes(g, start, goal)
	if err != nil {
		panic(err)
	}

	return out
}

// Min returns the smallest value of key over outcomes, or +Inf when empty.
func Min(outcomes []route.Outcome, key func(route.Outcome) float64) float64 {
	best := math.Inf(1)
	for _, o := range outcomes {
		if v := key(o); v < best {
			best = v
		}
	}

	return best
}
