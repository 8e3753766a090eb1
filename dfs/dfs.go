package dfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// errDone stops the walk once Limit routes were collected.
var errDone = errors.New("dfs: limit reached")

// walker carries the state of one enumeration.
type walker struct {
	graph  *core.Graph
	opts   Options
	goal   string
	onPath map[string]bool
	out    []route.Outcome
}

// Routes returns every simple route from start to goal. An unknown station
// or an unreachable goal yields an empty slice; start == goal yields the
// single trivial route.
func Routes(g *core.Graph, start, goal string, opts ...Option) ([]route.Outcome, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasStation(start) || !g.HasStation(goal) {
		return nil, nil
	}

	w := &walker{
		graph:  g,
		opts:   cfg,
		goal:   goal,
		onPath: map[string]bool{start: true},
	}
	if err := w.walk(route.Start(start)); err != nil && !errors.Is(err, errDone) {
		return w.out, err
	}

	return w.out, nil
}

// walk extends l depth-first; it returns errDone once Limit is reached.
func (w *walker) walk(l *route.Label) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if l.Station == w.goal {
		w.out = append(w.out, l.Outcome())
		if w.opts.Limit > 0 && len(w.out) >= w.opts.Limit {
			return errDone
		}

		return nil
	}
	if w.opts.MaxDepth >= 0 && l.Hops >= w.opts.MaxDepth {
		return nil
	}

	for _, e := range w.graph.Neighbors(l.Station) {
		if w.onPath[e.To] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e.From, e.To, e.Line) {
			continue
		}
		w.onPath[e.To] = true
		err := w.walk(l.Extend(e))
		w.onPath[e.To] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// Reachable returns the stations reachable from start (start included),
// sorted by name. Limit is ignored.
//
// With MaxDepth, a station is kept when its fewest-hop distance from start
// is at most MaxDepth. A station first met along a longer branch is
// reopened once a shorter one reaches it.
func Reachable(g *core.Graph, start string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasStation(start) {
		return nil, ErrStartNotFound
	}

	depth := map[string]int{start: 0}
	stack := []string{start}
	for len(stack) > 0 {
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}

		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cfg.MaxDepth >= 0 && depth[id] >= cfg.MaxDepth {
			continue
		}
		next := depth[id] + 1
		for _, e := range g.Neighbors(id) {
			if d, seen := depth[e.To]; seen && (cfg.MaxDepth < 0 || d <= next) {
				continue
			}
			if cfg.FilterEdge != nil && !cfg.FilterEdge(e.From, e.To, e.Line) {
				continue
			}
			depth[e.To] = next
			stack = append(stack, e.To)
		}
	}

	out := make([]string, 0, len(depth))
	for id := range depth {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}
