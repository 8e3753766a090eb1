package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/builder"
	"github.com/katalvlaran/railpath/core"
)

func TestBuildNetwork_Errors(t *testing.T) {
	_, err := builder.BuildNetwork(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	cases := map[string]builder.Constructor{
		"short corridor":  builder.Corridor("L", 1),
		"short loop":      builder.Loop("L", 2),
		"empty grid":      builder.Grid(0, 3),
		"tiny random":     builder.RandomSparse(1, 0.5, 1),
		"no random lines": builder.RandomSparse(4, 0.5, 0),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildNetwork(nil, nil, c)
			require.ErrorIs(t, err, builder.ErrTooFewStations)
		})
	}

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 1.5, 1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 0.5, 1))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 1, 3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestCorridorAndLoop(t *testing.T) {
	g, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Corridor("Main", 4),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Stations())
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "C", edges[2].From)
	assert.Equal(t, "D", edges[2].To)
	assert.Equal(t, builder.DefaultSegment.Distance, edges[2].Distance)
	assert.Equal(t, builder.DefaultSegment.Cost, edges[2].Cost)

	g, err = builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("S"))},
		builder.Loop("Ring", 3),
	)
	require.NoError(t, err)
	edges = g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "S2", edges[2].From)
	assert.Equal(t, "S0", edges[2].To)
	assert.Len(t, g.Neighbors("S0"), 2)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildNetwork(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, g.StationCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []string{"H0", "H1", "V0", "V1"}, g.Lines())

	first := g.Edges()[0]
	assert.Equal(t, builder.GridID(0, 0), first.From)
	assert.Equal(t, builder.GridID(0, 1), first.To)
	assert.Equal(t, "H0", first.Line)
}

func TestRandomSparse(t *testing.T) {
	g, err := builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []string{"R0"}, g.Lines())

	g, err = builder.BuildNetwork([]core.GraphOption{core.WithDirected()}, nil, builder.RandomSparse(3, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	g, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithSegmentFn(builder.UniformSegment(1, 50, 20, 2)),
	}
	a, err := builder.BuildNetwork(nil, opts, builder.RandomSparse(12, 0.3, 4))
	require.NoError(t, err)
	b, err := builder.BuildNetwork(nil, opts, builder.RandomSparse(12, 0.3, 4))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Distance, 1.0)
		assert.LessOrEqual(t, e.Distance, 50.0)
	}
}

func TestSegmentFns(t *testing.T) {
	s := builder.UniformSegment(10, 20, 20, 2)(nil)
	assert.Equal(t, builder.Segment{Distance: 15, Cost: 300, Duration: 8}, s)

	assert.Panics(t, func() { builder.UniformSegment(5, 1, 1, 1) })
	assert.Panics(t, func() { builder.UniformSegment(1, 5, 1, 0) })
	assert.Panics(t, func() { builder.WithSegmentFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "st3", builder.PrefixIDFn("st")(3))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}
