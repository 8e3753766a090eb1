package greedy

import (
	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// Search runs the greedy-edge search on g from start to goal.
// An unreachable or unknown goal yields route.NotFound with a nil error.
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

	closed := make(map[string]bool)
	pq := route.NewQueue(16)
	pq.Push(route.Start(start), 0, 0)

	for {
		select {
		case <-cfg.Ctx.Done():
			return route.NotFound, cfg.Ctx.Err()
		default:
		}

		item, ok := pq.Pop()
		if !ok {
			return route.NotFound, nil
		}
		cur := item.Label
		if cur.Station == goal {
			return cur.Outcome(), nil
		}
		if closed[cur.Station] {
			continue
		}
		closed[cur.Station] = true

		for _, e := range g.Neighbors(cur.Station) {
			if closed[e.To] {
				continue
			}
			pq.Push(cur.Extend(e), cfg.Weight.Of(e), 0)
		}
	}
}
