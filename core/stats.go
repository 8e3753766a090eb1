package core

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Directed     bool
	StationCount int
	EdgeCount    int
	LineCount    int
	EdgesPerLine map[string]int
}

// Stats returns a snapshot of the graph's size and line composition.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(E), Space O(L).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:     g.directed,
		StationCount: len(g.stations),
		EdgeCount:    len(g.edges),
		EdgesPerLine: make(map[string]int),
	}
	for _, e := range g.edges {
		stats.EdgesPerLine[e.Line]++
	}
	stats.LineCount = len(stats.EdgesPerLine)

	return stats
}
