// File: methods_edges.go
// Role: Edge ingestion & queries: AddEdge/Edges/EdgeCount/Lines, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//   - Lines() is sorted lexicographically.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge records a hop on line between from and to and mirrors it to
// to→from unless the graph is directed.
//
// Steps:
//  1. Validate station IDs, line ID, loop and weights.
//  2. Lock, register both stations.
//  3. Generate the edge ID and append to the catalog.
//  4. Append the oriented copy to adjacency[from] and, if mirrored,
//     the reversed copy to adjacency[to].
//
// Parallel edges are always allowed: the same pair of stations may be
// served by several lines, and each call creates a distinct edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, line string, distance, cost, duration float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyStation
	}
	if line == "" {
		return "", ErrEmptyLine
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	for _, w := range [...]struct {
		name  string
		value float64
	}{{"distance", distance}, {"cost", cost}, {"duration", duration}} {
		if w.value < 0 || math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return "", fmt.Errorf("%w: %s=%v on %s→%s (%s)", ErrBadWeight, w.name, w.value, from, to, line)
		}
	}

	// 2) Register stations
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stations[from] = struct{}{}
	g.stations[to] = struct{}{}

	// 3) Catalog
	e := &Edge{
		ID:       nextEdgeID(g),
		From:     from,
		To:       to,
		Line:     line,
		Distance: distance,
		Cost:     cost,
		Duration: duration,
	}
	g.edges = append(g.edges, e)

	// 4) Adjacency, mirrored for bidirectional graphs
	g.adjacency[from] = append(g.adjacency[from], *e)
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], e.Reversed())
	}

	return e.ID, nil
}

// Edges returns a copy of every edge in insertion order, in the orientation
// it was added with.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of edges added (mirrors are not counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Lines returns the unique line IDs present in the graph, sorted.
// Complexity: O(E + L log L).
func (g *Graph) Lines() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range g.edges {
		if _, ok := seen[e.Line]; ok {
			continue
		}
		seen[e.Line] = struct{}{}
		out = append(out, e.Line)
	}
	sort.Strings(out)

	return out
}

// nextEdgeID returns the next "e<N>" identifier. Caller holds the write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
