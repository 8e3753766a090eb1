// File: view.go
// Role: Non-mutating graph views (copying part of the network).
// Determinism:
//   - Edge IDs, orientation and insertion order are preserved.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// LineView returns a new Graph holding only the edges whose Line is one of
// lines, for riders restricted to some services (a rail pass that excludes
// a premium train, for instance). Stations served by none of the lines are
// dropped. The input graph is not mutated.
//
// Complexity: O(V + E).
func LineView(g *Graph, lines ...string) *Graph {
	allowed := make(map[string]bool, len(lines))
	for _, l := range lines {
		allowed[l] = true
	}

	return filter(g, func(e *Edge) bool { return allowed[e.Line] })
}

// InducedSubgraph returns a new Graph induced by the set keep of station
// IDs: only edges whose endpoints are both kept survive. The input graph is
// not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return filter(g, func(e *Edge) bool { return keep[e.From] && keep[e.To] })
}

// filter copies the edges accepted by keep, preserving IDs and carrying the
// edge ID counter so later AddEdge calls on the view cannot collide.
func filter(g *Graph, keep func(*Edge) bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()
	out.directed = g.directed
	out.nextEdgeID = g.nextEdgeID
	for _, e := range g.edges {
		if !keep(e) {
			continue
		}
		ne := *e
		out.stations[ne.From] = struct{}{}
		out.stations[ne.To] = struct{}{}
		out.edges = append(out.edges, &ne)
		out.adjacency[ne.From] = append(out.adjacency[ne.From], ne)
		if !out.directed {
			out.adjacency[ne.To] = append(out.adjacency[ne.To], ne.Reversed())
		}
	}

	return out
}
