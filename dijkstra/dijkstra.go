package dijkstra

import (
	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// Search computes the minimum-weight route from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadWeight, ErrBadMaxWeight).
//
// Weights are non-negative by construction (core.AddEdge rejects the
// rest), so no pre-scan is needed.
func Search(g *core.Graph, start, goal string, opts ...Option) (route.Outcome, error) {
	if g == nil {
		return route.NotFound, ErrNilGraph
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

	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		dist:    make(map[string]float64),
		done:    make(map[string]bool),
		pq:      route.NewQueue(16),
	}
	r.dist[start] = 0
	r.pq.Push(route.Start(start), 0, 0)

	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	goal    string
	dist    map[string]float64 // best known cumulative weight
	done    map[string]bool    // finalized stations
	pq      *route.Queue
}

// process pops the closest station until the goal is finalized or the
// queue drains.
func (r *runner) process() (route.Outcome, error) {
	ctx := r.options.Ctx
	for {
		select {
		case <-ctx.Done():
			return route.NotFound, ctx.Err()
		default:
		}

		item, ok := r.pq.Pop()
		if !ok {
			return route.NotFound, nil
		}
		cur := item.Label
		if r.done[cur.Station] {
			continue // stale entry
		}
		r.done[cur.Station] = true
		if cur.Station == r.goal {
			return cur.Outcome(), nil
		}
		r.relax(cur, item.Primary)
	}
}

// relax pushes every neighbor of cur whose cumulative weight strictly
// improves and stays within MaxWeight.
func (r *runner) relax(cur *route.Label, d float64) {
	for _, e := range r.g.Neighbors(cur.Station) {
		if r.done[e.To] {
			continue
		}
		nd := d + r.options.Weight.Of(e)
		if nd > r.options.MaxWeight {
			continue
		}
		if old, seen := r.dist[e.To]; seen && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		next := cur.Extend(e)
		r.pq.Push(next, nd, float64(next.Hops))
	}
}
