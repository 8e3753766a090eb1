package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

func TestCollapseLines(t *testing.T) {
	tests := []struct {
		name      string
		hops      []string
		wantLines []string
		wantN     int
	}{
		{"empty", nil, nil, 0},
		{"single hop", []string{"L1"}, []string{"L1"}, 0},
		{"same line", []string{"L1", "L1", "L1"}, []string{"L1"}, 0},
		{"round trip", []string{"L1", "L1", "L2", "L2", "L1"}, []string{"L1", "L2", "L1"}, 2},
		{"every hop changes", []string{"A", "B", "C"}, []string{"A", "B", "C"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, n := route.CollapseLines(tt.hops)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestLabel_ExtendAndOutcome(t *testing.T) {
	hop := func(from, to, line string) core.Edge {
		return core.Edge{From: from, To: to, Line: line, Distance: 1, Cost: 10, Duration: 2}
	}

	l := route.Start("A").
		Extend(hop("A", "B", "L1")).
		Extend(hop("B", "C", "L1")).
		Extend(hop("C", "D", "L2")).
		Extend(hop("D", "E", "L2")).
		Extend(hop("E", "F", "L1"))

	o := l.Outcome()
	require.True(t, o.Found())
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, o.Path)
	assert.Equal(t, []string{"L1", "L2", "L1"}, o.Lines)
	assert.Equal(t, 2, o.Transits)
	assert.Equal(t, len(o.Lines), o.Transits+1)
	assert.Equal(t, 5.0, o.Distance)
	assert.Equal(t, 50.0, o.Cost)
	assert.Equal(t, 10.0, o.Duration)
	assert.Equal(t, 5, o.Hops())
}

func TestLabel_FirstLineIsFree(t *testing.T) {
	l := route.Start("A").Extend(core.Edge{From: "A", To: "B", Line: "X"})
	assert.Equal(t, 0, l.Transits)
	assert.Equal(t, []string{"X"}, l.Outcome().Lines)
}

func TestOutcome_TrivialAndNotFound(t *testing.T) {
	assert.False(t, route.NotFound.Found())
	assert.Equal(t, 0, route.NotFound.Hops())

	o := route.Start("A").Outcome()
	assert.True(t, o.Equal(route.Trivial("A")))
	assert.Equal(t, []string{"A"}, o.Path)
	assert.Empty(t, o.Lines)
	assert.Zero(t, o.Distance)
	assert.Zero(t, o.Transits)
}

func TestQueue_Ordering(t *testing.T) {
	q := route.NewQueue(4)
	q.Push(route.Start("late-tie"), 1, 0)
	q.Push(route.Start("second-key"), 1, -1)
	q.Push(route.Start("smallest"), 0, 5)
	q.Push(route.Start("later-tie"), 1, 0)

	var got []string
	for q.Len() > 0 {
		e, ok := q.Pop()
		require.True(t, ok)
		got = append(got, e.Label.Station)
	}
	assert.Equal(t, []string{"smallest", "second-key", "late-tie", "later-tie"}, got)

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestWeight(t *testing.T) {
	e := core.Edge{Distance: 1, Cost: 2, Duration: 3}
	assert.Equal(t, 1.0, route.ByDistance.Of(e))
	assert.Equal(t, 2.0, route.ByCost.Of(e))
	assert.Equal(t, 3.0, route.ByDuration.Of(e))

	w, err := route.ParseWeight(" Duration ")
	require.NoError(t, err)
	assert.Equal(t, route.ByDuration, w)
	assert.Equal(t, "duration", w.String())

	_, err = route.ParseWeight("speed")
	assert.Error(t, err)
	assert.False(t, route.Weight(7).Valid())
}
