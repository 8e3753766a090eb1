// Package route defines the value every search strategy returns and the
// small pieces of bookkeeping they share: line collapsing, label chains and
// a sequence-tie-broken priority queue.
//
// An Outcome is either NotFound (the zero value) or a route from start to
// goal with its totals. Outcomes are immutable once returned; the aggregator
// ranks them and the presentation layer renders them.
package route

import "slices"

// Outcome is the result of one search.
//
// Path lists stations start→goal inclusive. Lines lists the lines used,
// with consecutive hops on the same line collapsed into one entry.
// Transits counts line changes, so len(Lines) == Transits+1 whenever at
// least one edge is traversed.
type Outcome struct {
	Path     []string
	Lines    []string
	Distance float64
	Cost     float64
	Duration float64
	Transits int
}

// NotFound is the outcome of a search whose goal is unreachable.
var NotFound = Outcome{}

// Found reports whether the outcome carries a route.
// Callers must check it before reading any other field.
func (o Outcome) Found() bool { return len(o.Path) > 0 }

// Hops returns the number of edges traversed (0 for NotFound and start==goal).
func (o Outcome) Hops() int {
	if len(o.Path) == 0 {
		return 0
	}

	return len(o.Path) - 1
}

// Equal reports whether two outcomes describe the same route and totals.
func (o Outcome) Equal(other Outcome) bool {
	return slices.Equal(o.Path, other.Path) &&
		slices.Equal(o.Lines, other.Lines) &&
		o.Distance == other.Distance &&
		o.Cost == other.Cost &&
		o.Duration == other.Duration &&
		o.Transits == other.Transits
}

// Trivial returns the zero-length route for start == goal.
func Trivial(station string) Outcome {
	return Outcome{Path: []string{station}}
}

// CollapseLines folds the per-hop line sequence into the lines actually
// ridden and the number of changes between them.
//
//	[L1 L1 L2 L2 L1] → [L1 L2 L1], 2
func CollapseLines(hops []string) ([]string, int) {
	if len(hops) == 0 {
		return nil, 0
	}
	out := make([]string, 0, len(hops))
	for _, l := range hops {
		if len(out) == 0 || out[len(out)-1] != l {
			out = append(out, l)
		}
	}

	return out, len(out) - 1
}
