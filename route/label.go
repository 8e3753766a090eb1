package route

import "github.com/katalvlaran/railpath/core"

// Label is one partial route in a search frontier: the station reached,
// the edge used to reach it and a pointer to the label it extends.
//
// Labels form a persistent chain, so extending a route is O(1) and two
// frontier entries may share a prefix without copying paths. Totals are
// accumulated eagerly so a search can read them without walking the chain.
type Label struct {
	Station  string
	Via      core.Edge // zero for the start label
	Prev     *Label    // nil for the start label
	Distance float64
	Cost     float64
	Duration float64
	Hops     int
	Transits int
}

// Start returns the root label at station.
func Start(station string) *Label {
	return &Label{Station: station}
}

// Line returns the line used to arrive, or "" at the start.
func (l *Label) Line() string { return l.Via.Line }

// Extend returns a new label travelling along e from l.
//
// A hop on the same line as the previous hop is free; any other line adds
// one transit, except the first line taken after the start.
func (l *Label) Extend(e core.Edge) *Label {
	next := &Label{
		Station:  e.To,
		Via:      e,
		Prev:     l,
		Distance: l.Distance + e.Distance,
		Cost:     l.Cost + e.Cost,
		Duration: l.Duration + e.Duration,
		Hops:     l.Hops + 1,
		Transits: l.Transits,
	}
	if l.Prev != nil && l.Line() != e.Line {
		next.Transits++
	}

	return next
}

// Outcome walks the chain back to the start and materializes the route.
func (l *Label) Outcome() Outcome {
	path := make([]string, l.Hops+1)
	hops := make([]string, l.Hops)
	cur := l
	for i := l.Hops; i > 0; i-- {
		path[i] = cur.Station
		hops[i-1] = cur.Line()
		cur = cur.Prev
	}
	path[0] = cur.Station
	lines, _ := CollapseLines(hops)

	return Outcome{
		Path:     path,
		Lines:    lines,
		Distance: l.Distance,
		Cost:     l.Cost,
		Duration: l.Duration,
		Transits: l.Transits,
	}
}
