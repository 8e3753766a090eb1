// Package transfer provides the Transfer-Minimizing strategy: the route
// between two stations with the fewest line changes, regardless of
// distance, cost or duration.
//
// The search runs over (station, arrival line) states rather than stations,
// so a station may be reached again on a different line. Riding on along
// the current line is free; switching lines costs one transit, except for
// the first line boarded at the start.
//
// States are expanded in layers of equal transit count, (transits, hops,
// discovery order) being the expansion key. That makes the first goal state
// dequeued a global minimum in transits; among those, the fewest hops win,
// then the earliest inserted edges.
//
// Complexity (V = |Stations|, E = |Edges|, L = |Lines|):
//
//   - Time:  O((V·L + E·L) log(E·L)) in the worst case
//   - Space: O(V·L + E·L)
package transfer

import (
	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// state is a station together with the line used to arrive there.
type state struct {
	station string
	line    string
}

// key orders states; smaller is better.
type key struct {
	transits int
	hops     int
}

func (k key) less(o key) bool {
	if k.transits != o.transits {
		return k.transits < o.transits
	}

	return k.hops < o.hops
}

// Search returns the route from start to goal with the minimum transit
// count, or route.NotFound when no combination of lines connects them.
//
// Returns ErrGraphNil, ErrOptionViolation, or the context error on cancellation.
func Search(g *core.Graph, start, goal string, opts ...Option) (route.Outcome, error) {
	if g == nil {
		return route.NotFound, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return route.NotFound, cfg.err
	}
	if start == "" || goal == "" {
		return route.NotFound, nil
	}

	best := make(map[state]key)
	done := make(map[state]bool)
	pq := route.NewQueue(16)

	root := state{station: start}
	best[root] = key{}
	pq.Push(route.Start(start), 0, 0)

	for pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return route.NotFound, cfg.Ctx.Err()
		default:
		}

		item, _ := pq.Pop()
		cur := item.Label
		s := state{station: cur.Station, line: cur.Line()}
		if done[s] {
			continue // stale entry
		}
		done[s] = true

		if cur.Station == goal {
			return cur.Outcome(), nil
		}

		for _, e := range g.Neighbors(cur.Station) {
			next := cur.Extend(e)
			if cfg.MaxTransits >= 0 && next.Transits > cfg.MaxTransits {
				continue
			}
			ns := state{station: e.To, line: e.Line}
			if done[ns] {
				continue
			}
			nk := key{transits: next.Transits, hops: next.Hops}
			if old, seen := best[ns]; seen && !nk.less(old) {
				continue
			}
			best[ns] = nk
			pq.Push(next, float64(nk.transits), float64(nk.hops))
		}
	}

	return route.NotFound, nil
}
