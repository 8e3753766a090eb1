// Package dijkstra provides the Cumulative-Cost strategy: the true
// shortest route between two stations under one edge attribute.
//
// Overview:
//
//   - The frontier is a min-heap keyed by the weight accumulated from the
//     start, so every station is finalized exactly once and its label is
//     optimal at that moment.
//   - The search stops as soon as the goal is finalized and returns its
//     route with distance, cost and duration totals and the transit count.
//   - Distance is minimized by default; WithWeight switches to cost or
//     duration. The other two totals are reported for the chosen route,
//     not minimized.
//
// Contrast with package greedy, whose priority is the weight of the last
// edge only and which therefore may return a longer route.
//
// Determinism:
//
//   - Equal cumulative weights are ordered by hop count, then by
//     discovery order. Neighbors are relaxed in edge insertion order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each station is finalized at most once (V extractions).
//   - Each successful relaxation pushes one entry (up to E pushes).
//   - Space: O(V + E) under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     nil *core.Graph.
//   - ErrBadWeight:    WithWeight with an unknown attribute.
//   - ErrBadMaxWeight: WithMaxWeight with a negative value.
//   - ctx.Err() when the context is cancelled mid-search.
//
// Unknown stations and unreachable goals are not errors; they yield
// route.NotFound.
//
// API reference:
//
//	func Search(g *core.Graph, start, goal string, opts ...Option) (route.Outcome, error)
package dijkstra
