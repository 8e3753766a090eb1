// Package greedy provides the Greedy-Edge strategy: a best-first search
// whose frontier is ordered by the weight of the single edge that produced
// each entry, not by the total accumulated along the route.
//
// What:
//
//   - The start is pushed with priority 0.
//   - Each pop closes its station (first pop only) and pushes every
//     unclosed neighbor with the raw weight of the connecting edge.
//   - The first time the goal is popped, its route is returned.
//
// The result is *some* route, found by always following the locally
// cheapest edge seen so far. It is not a shortest path: a cheap first hop
// can hide a cheaper multi-hop alternative, and the first arrival at the
// goal wins even if a better label is still queued. Use package dijkstra
// when optimality matters.
//
// Determinism:
//
//   - Equal priorities pop in discovery order (an explicit sequence
//     number), and neighbors are pushed in edge insertion order.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(E)
//
// Options:
//
//   - WithContext(ctx) for cancellation.
//   - WithWeight(w) chooses distance (default), cost or duration.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation, or the context error.
package greedy
