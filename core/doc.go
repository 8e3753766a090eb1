// Package core provides the rail network Graph used by every search strategy.
//
// The Graph G = (V,E) is a multigraph of stations and line-labelled edges:
//
//   - Stations are opaque string IDs; they exist once an edge touches them.
//   - Each Edge carries Line, Distance, Cost and Duration (all ≥ 0).
//   - Parallel edges are allowed: two stations may be joined by several
//     lines, and each hop stays a distinct edge.
//   - Edges are bidirectional by default: AddEdge(A,B,…) makes the hop
//     visible from A as A→B and from B as B→A with identical attributes.
//     WithDirected disables the mirror.
//   - Adjacency keeps insertion order, which makes every search built on
//     Neighbors fully deterministic.
//
// Lifecycle:
//
//	The graph is write-once, read-many. There is no removal API; a dataset
//	collaborator calls AddEdge once per record and then hands the graph to
//	the searches, which only read it.
//
// Core Methods:
//
//	AddEdge(from, to, line string, distance, cost, duration float64) (edgeID string, err error) // O(1)†
//	Neighbors(id string) []Edge      // O(d), empty for unknown stations
//	HasStation(id string) bool       // O(1)
//	Stations() []string              // O(V·log V)
//	Edges() []Edge                   // O(E), insertion order
//	Lines() []string                 // O(E + L·log L)
//	StationCount() int               // O(1)
//	EdgeCount() int                  // O(1)
//	Stats() GraphStats               // O(E)
//
// Views:
//
//	LineView(g, lines...)      // only the named lines, IDs preserved
//	InducedSubgraph(g, keep)   // only edges with both ends in keep
//
// Errors:
//
//	ErrEmptyStation   – zero-length station ID
//	ErrEmptyLine      – zero-length line ID
//	ErrBadWeight      – negative, NaN or infinite weight
//	ErrLoopNotAllowed – from == to
//
//	† amortized constant time: counter increment + slice appends.
package core
