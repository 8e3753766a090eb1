// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in validation sentinels for AddEdge.
//   - Lock in mirroring, parallel-edge and ordering guarantees that the
//     search packages depend on.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/core"
)

// TestGraph_AddEdgeValidation VERIFIES every AddEdge rejection path.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	cases := []struct {
		name     string
		from, to string
		line     string
		d, c, t  float64
		want     error
	}{
		{"empty from", "", "B", "X", 1, 1, 1, core.ErrEmptyStation},
		{"empty to", "A", "", "X", 1, 1, 1, core.ErrEmptyStation},
		{"empty line", "A", "B", "", 1, 1, 1, core.ErrEmptyLine},
		{"loop", "A", "A", "X", 1, 1, 1, core.ErrLoopNotAllowed},
		{"negative distance", "A", "B", "X", -1, 1, 1, core.ErrBadWeight},
		{"negative cost", "A", "B", "X", 1, -0.5, 1, core.ErrBadWeight},
		{"NaN duration", "A", "B", "X", 1, 1, math.NaN(), core.ErrBadWeight},
		{"infinite distance", "A", "B", "X", math.Inf(1), 1, 1, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.from, tc.to, tc.line, tc.d, tc.c, tc.t)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Nothing from the rejected calls leaked into the graph.
	require.Zero(t, g.EdgeCount())
	require.Zero(t, g.StationCount())
}

// TestGraph_MirroredNeighbors VERIFIES the bidirectional storage contract:
// the mirror carries identical attributes and the same edge ID.
func TestGraph_MirroredNeighbors(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("Tokyo", "Ueno", "Tohoku", 3.6, 210, 5)
	require.NoError(t, err)
	require.Equal(t, "e1", id)

	fwd := g.Neighbors("Tokyo")
	require.Len(t, fwd, 1)
	require.Equal(t, core.Edge{ID: "e1", From: "Tokyo", To: "Ueno", Line: "Tohoku", Distance: 3.6, Cost: 210, Duration: 5}, fwd[0])

	back := g.Neighbors("Ueno")
	require.Len(t, back, 1)
	require.Equal(t, fwd[0].Reversed(), back[0])
	require.Equal(t, 1, g.EdgeCount(), "mirror must not be counted as a second edge")
}

// TestGraph_ParallelLines VERIFIES that lines sharing a station pair stay distinct.
func TestGraph_ParallelLines(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("Omiya", "Tokyo", "Tohoku", 30, 1000, 25)
	require.NoError(t, err)
	_, err = g.AddEdge("Omiya", "Tokyo", "Joetsu", 30, 1000, 26)
	require.NoError(t, err)
	_, err = g.AddEdge("Omiya", "Tokyo", "Joetsu", 30, 1000, 26)
	require.NoError(t, err, "identical records are separate edges")

	nbrs := g.Neighbors("Tokyo")
	require.Len(t, nbrs, 3)
	require.Equal(t, []string{"Tohoku", "Joetsu", "Joetsu"}, []string{nbrs[0].Line, nbrs[1].Line, nbrs[2].Line})
	require.Equal(t, []string{"e1", "e2", "e3"}, []string{nbrs[0].ID, nbrs[1].ID, nbrs[2].ID})
	require.Equal(t, []string{"Joetsu", "Tohoku"}, g.Lines())
}

// TestGraph_NeighborOrder VERIFIES insertion-order adjacency, which the
// searches use for deterministic tie-breaking.
func TestGraph_NeighborOrder(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"Z", "M", "A"} {
		_, err := g.AddEdge("Hub", to, "L", 1, 1, 1)
		require.NoError(t, err)
	}
	nbrs := g.Neighbors("Hub")
	got := make([]string, len(nbrs))
	for i, e := range nbrs {
		got[i] = e.To
	}
	require.Equal(t, []string{"Z", "M", "A"}, got)
	require.Equal(t, []string{"A", "Hub", "M", "Z"}, g.Stations())
}

// TestGraph_UnknownStation VERIFIES that unknown stations are silent dead ends.
func TestGraph_UnknownStation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", "L", 1, 1, 1)
	require.NoError(t, err)

	require.Empty(t, g.Neighbors("Nowhere"))
	require.Empty(t, g.Neighbors(""))
	require.False(t, g.HasStation("Nowhere"))
	require.False(t, g.HasStation(""))
	require.True(t, g.HasStation("A"))
}

// TestGraph_Directed VERIFIES WithDirected suppresses the mirror.
func TestGraph_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.True(t, g.Directed())
	_, err := g.AddEdge("A", "B", "L", 1, 1, 1)
	require.NoError(t, err)

	require.Len(t, g.Neighbors("A"), 1)
	require.Empty(t, g.Neighbors("B"))
	require.True(t, g.HasStation("B"))
}

// TestGraph_NeighborsCopy VERIFIES callers cannot corrupt adjacency through
// the returned slice.
func TestGraph_NeighborsCopy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", "L", 1, 2, 3)
	require.NoError(t, err)

	nbrs := g.Neighbors("A")
	nbrs[0].Distance = 999
	require.Equal(t, 1.0, g.Neighbors("A")[0].Distance)

	edges := g.Edges()
	edges[0].Line = "other"
	require.Equal(t, "L", g.Edges()[0].Line)
}
