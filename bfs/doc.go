// Package bfs provides the Unweighted-Hop strategy: a breadth-first search
// over a core.Graph returning the route with the fewest edges.
//
// What
//
//   - Expands stations in non-decreasing hop count from the start.
//   - Marks a station visited the first time it is discovered.
//   - Returns the route recorded for the goal the first time it is dequeued.
//   - Distances, costs, durations, lines and transits are accumulated along
//     the way but never influence the order of expansion.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	them in that order, so among equal-length routes the one using earlier
//	inserted edges wins.
//
// Complexity (V = |Stations|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	o, err := bfs.Search(g, "Tokyo", "Sendai")
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, ctx error or OnVisit error
//	}
//	if !o.Found() {
//	    // unreachable
//	}
//
// Options
//
//   - WithContext(ctx):   cancellation.
//   - WithMaxDepth(d):    do not explore beyond d hops (>0).
//   - WithOnVisit(fn):    hook per dequeued station; an error aborts.
package bfs
