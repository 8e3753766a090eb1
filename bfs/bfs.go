// Package bfs finds the route with the fewest edges between two stations,
// ignoring weights and lines.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// queueItem pairs a label with its hop depth.
type queueItem struct {
	label *route.Label
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	goal    string
	queue   []queueItem
	visited map[string]bool
}

// Search runs breadth-first search on g from start and returns the first
// route that dequeues goal.
//
// Stations are marked visited on discovery, so each station is enqueued at
// most once and the returned route has the minimum edge count. Ties are
// broken by the insertion order of edges in g. An unreachable or unknown
// goal yields route.NotFound with a nil error.
//
// Returns ErrGraphNil, ErrOptionViolation, the context error on
// cancellation, or a wrapped OnVisit error.
func Search(g *core.Graph, start, goal string, opts ...Option) (route.Outcome, error) {
	if g == nil {
		return route.NotFound, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return route.NotFound, o.err
	}
	if start == "" || goal == "" {
		return route.NotFound, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[string]bool),
	}
	w.enqueue(route.Start(start), 0)

	return w.loop()
}

// enqueue marks the label's station visited and appends it to the queue.
func (w *walker) enqueue(l *route.Label, depth int) {
	w.visited[l.Station] = true
	w.queue = append(w.queue, queueItem{label: l, depth: depth})
}

// loop processes the queue until the goal is dequeued, the queue drains,
// or the context is cancelled.
func (w *walker) loop() (route.Outcome, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return route.NotFound, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.label.Station, item.depth); err != nil {
			return route.NotFound, fmt.Errorf("bfs: OnVisit error at %q: %w", item.label.Station, err)
		}
		if item.label.Station == w.goal {
			return item.label.Outcome(), nil
		}
		w.enqueueNeighbors(item)
	}

	return route.NotFound, nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.label.Station) {
		if !w.visited[e.To] {
			w.enqueue(item.label.Extend(e), nextDepth)
		}
	}
}
