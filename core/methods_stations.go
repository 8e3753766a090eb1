// File: methods_stations.go
// Role: Station queries and the neighborhood API used by every search.
//
// Determinism:
//   - Stations() returns IDs sorted lexicographically ascending.
//   - Neighbors() returns edges in insertion order; searches rely on this
//     order for their tie-breaking.
//
// Concurrency:
//   - Read lock only; the graph is never mutated by queries.
package core

import "sort"

// HasStation reports whether the station appears on any edge (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasStation(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.stations[id]

	return ok
}

// Stations returns every station ID, sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.stations))
	for id := range g.stations {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// StationCount returns the number of distinct stations.
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stations)
}

// Neighbors returns the edges leaving id, each oriented so that From == id.
//
// Neighborhood policy:
//   - Bidirectional graphs: every edge incident to id, in the order the
//     edges were added.
//   - Directed graphs: only edges added with From == id.
//   - Unknown or empty id: an empty result. A station missing from the
//     dataset is a silent dead end, so searches resolve it to NotFound
//     instead of failing.
//
// Returns:
//   - []Edge: a fresh copy; callers may keep or modify it freely.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj := g.adjacency[id]
	if len(adj) == 0 {
		return nil
	}
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out
}
