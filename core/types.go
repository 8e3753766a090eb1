// Package core defines the Graph and Edge types of a rail network and
// provides thread-safe primitives for building and querying it.
//
// A Graph is built once by a dataset collaborator and then only read by the
// search packages. All APIs take a sync.RWMutex internally, so a graph may be
// shared between goroutines without extra locking.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyStation   - station ID is the empty string.
//	ErrEmptyLine      - line ID is the empty string.
//	ErrBadWeight      - distance, cost or duration is negative, NaN or infinite.
//	ErrLoopNotAllowed - an edge from a station to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStation indicates that a station ID was empty.
	ErrEmptyStation = errors.New("core: station ID is empty")

	// ErrEmptyLine indicates that an edge was added without a line ID.
	ErrEmptyLine = errors.New("core: line ID is empty")

	// ErrBadWeight indicates a negative or non-finite distance, cost or duration.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same station.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one hop of a rail line between two stations.
//
// Each Edge carries a stable ID ("e1", "e2", …) shared by both orientations
// of a bidirectional edge, the Line it belongs to, and three non-negative
// weights. Parallel edges between the same stations on different lines are
// distinct Edges with distinct IDs.
type Edge struct {
	// ID uniquely identifies the physical edge in the Graph.
	ID string

	// From is the station this orientation departs from.
	From string

	// To is the station this orientation arrives at.
	To string

	// Line identifies the rail service running over this edge.
	Line string

	// Distance is the track length (km in the shipped datasets).
	Distance float64

	// Cost is the fare for this hop.
	Cost float64

	// Duration is the travel time for this hop (minutes in the shipped datasets).
	Duration float64
}

// Reversed returns the same edge travelled in the opposite direction.
func (e Edge) Reversed() Edge {
	e.From, e.To = e.To, e.From

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected stores every edge one-way (From→To only).
// By default edges are mirrored so travel is possible in both directions.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is the in-memory rail network.
//
// adjacency[station] holds the edges leaving station in insertion order;
// a bidirectional edge appears in both endpoint lists, oriented away from
// the owning station. edges keeps the catalog in insertion order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed bool // do not mirror edges

	nextEdgeID uint64              // monotonic edge ID counter
	stations   map[string]struct{} // station catalog
	edges      []*Edge             // insertion-ordered catalog, canonical orientation
	adjacency  map[string][]Edge   // station → outgoing edges
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is bidirectional.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		stations:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are stored one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
