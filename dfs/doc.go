// Package dfs enumerates routes of a core.Graph depth-first.
//
// What:
//
//   - Routes(g, start, goal, opts...) lists every simple route (no station
//     visited twice) from start to goal, one route.Outcome per distinct
//     edge sequence, in depth-first discovery order. Parallel edges on
//     different lines yield different routes.
//   - Reachable(g, start, opts...) returns the stations reachable from
//     start, sorted by name. Under WithMaxDepth the limit applies to the
//     fewest-hop distance, not to the depth-first tree.
//
// Neighbors are explored in edge insertion order, so the enumeration order
// is deterministic for a given graph.
//
// Options:
//
//   - WithContext(ctx)      cancellation via context.Context.
//   - WithMaxDepth(limit)   stop descending after limit hops (≥ 0).
//   - WithLimit(n)          stop Routes after n routes (> 0).
//   - WithFilterEdge(fn)    skip edges for which fn returns false.
//
// Complexity:
//
//   - Routes:    exponential in the worst case; bound it with WithMaxDepth
//     or WithLimit on anything but small networks.
//   - Reachable: Time O(V+E) without a depth limit, O(V·E) worst case with
//     one; Memory O(V).
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartNotFound     Reachable start station missing
//   - ErrOptionViolation   invalid option value
//   - context.Canceled     enumeration canceled via context
package dfs
