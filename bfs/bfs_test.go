package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/bfs"
	"github.com/katalvlaran/railpath/internal/fixture"
	"github.com/katalvlaran/railpath/route"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A", "B")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Search(fixture.Triangle(), "A", "C", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_Triangle covers the A/B/C scenario: the direct Y hop wins.
func TestSearch_Triangle(t *testing.T) {
	o, err := bfs.Search(fixture.Triangle(), "A", "C")
	require.NoError(t, err)
	require.True(t, o.Found())
	assert.Equal(t, []string{"A", "C"}, o.Path)
	assert.Equal(t, []string{"Y"}, o.Lines)
	assert.Equal(t, 30.0, o.Distance)
	assert.Equal(t, 50.0, o.Cost)
	assert.Equal(t, 20.0, o.Duration)
	assert.Equal(t, 0, o.Transits)
}

// TestSearch_FewestHops checks hop-optimality against every simple path.
func TestSearch_FewestHops(t *testing.T) {
	g := fixture.Mesh()
	o, err := bfs.Search(g, "S", "T")
	require.NoError(t, err)
	require.True(t, o.Found())

	best := fixture.Min(fixture.Paths(g, "S", "T"), func(o route.Outcome) float64 { return float64(o.Hops()) })
	assert.Equal(t, best, float64(o.Hops()))
	assert.Equal(t, []string{"S", "A", "T"}, o.Path)
	assert.Equal(t, []string{"P", "Q"}, o.Lines)
	assert.Equal(t, 1, o.Transits)
}

// TestSearch_Boundaries covers start==goal, disconnected and unknown stations.
func TestSearch_Boundaries(t *testing.T) {
	o, err := bfs.Search(fixture.Triangle(), "B", "B")
	require.NoError(t, err)
	assert.True(t, o.Equal(route.Trivial("B")))

	o, err = bfs.Search(fixture.Islands(), "A", "D")
	require.NoError(t, err)
	assert.False(t, o.Found())

	o, err = bfs.Search(fixture.Triangle(), "A", "Nowhere")
	require.NoError(t, err)
	assert.False(t, o.Found())

	o, err = bfs.Search(fixture.Triangle(), "Nowhere", "A")
	require.NoError(t, err)
	assert.False(t, o.Found())
}

// TestSearch_TieBreakByInsertion checks that equal-length routes resolve to
// the earliest inserted edge.
func TestSearch_TieBreakByInsertion(t *testing.T) {
	g := fixture.Build(
		fixture.Hop{From: "A", To: "B", Line: "first", Distance: 9},
		fixture.Hop{From: "A", To: "B", Line: "second", Distance: 1},
	)
	o, err := bfs.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, o.Lines)
}

// TestSearch_Idempotent runs the same query twice on one graph.
func TestSearch_Idempotent(t *testing.T) {
	g := fixture.Mesh()
	before := g.Edges()
	first, err := bfs.Search(g, "S", "T")
	require.NoError(t, err)
	second, err := bfs.Search(g, "S", "T")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.Equal(t, before, g.Edges())
}

// TestSearch_Options covers MaxDepth, OnVisit and cancellation.
func TestSearch_Options(t *testing.T) {
	g := fixture.Mesh()

	t.Run("max depth prunes", func(t *testing.T) {
		o, err := bfs.Search(g, "S", "T", bfs.WithMaxDepth(1))
		require.NoError(t, err)
		assert.False(t, o.Found())

		o, err = bfs.Search(g, "S", "T", bfs.WithMaxDepth(2))
		require.NoError(t, err)
		assert.True(t, o.Found())
	})

	t.Run("on visit order and abort", func(t *testing.T) {
		var order []string
		_, err := bfs.Search(g, "S", "T", bfs.WithOnVisit(func(s string, _ int) error {
			order = append(order, s)
			return nil
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "A", "C", "F", "T"}, order)

		stop := errors.New("stop")
		_, err = bfs.Search(g, "S", "T", bfs.WithOnVisit(func(s string, _ int) error {
			if s == "C" {
				return stop
			}
			return nil
		}))
		require.ErrorIs(t, err, stop)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := bfs.Search(g, "S", "T", bfs.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled)
	})
}
