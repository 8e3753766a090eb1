// Package chindex builds a contraction-hierarchies index over a rail graph
// with github.com/LdDl/ch, for fast repeated point-to-point distance
// queries and for cross-checking the cumulative-cost strategy.
//
// The index is a snapshot: it keeps, for every ordered station pair, the
// smallest weight among parallel edges, and ignores lines entirely. It
// answers "how far", not "on which lines".
package chindex

import (
	"errors"
	"fmt"

	"github.com/LdDl/ch"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/route"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Build.
var ErrGraphNil = errors.New("chindex: graph is nil")

// Index answers shortest-weight queries between stations.
type Index struct {
	weight   route.Weight
	ids      map[string]int64
	stations []string
	graph    ch.Graph
}

type pair struct{ from, to string }

// Build contracts g under weight. Stations are numbered in sorted order.
func Build(g *core.Graph, weight route.Weight) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !weight.Valid() {
		return nil, fmt.Errorf("chindex: unknown weight %v", weight)
	}

	idx := &Index{
		weight:   weight,
		ids:      make(map[string]int64),
		stations: g.Stations(),
		graph:    ch.Graph{},
	}
	for i, s := range idx.stations {
		idx.ids[s] = int64(i)
		if err := idx.graph.CreateVertex(int64(i)); err != nil {
			return nil, pkgerrors.Wrapf(err, "can not create vertex for %q", s)
		}
	}

	best := make(map[pair]float64)
	var order []pair
	keep := func(from, to string, w float64) {
		p := pair{from, to}
		old, ok := best[p]
		if !ok {
			order = append(order, p)
		}
		if !ok || w < old {
			best[p] = w
		}
	}
	for _, e := range g.Edges() {
		w := weight.Of(e)
		keep(e.From, e.To, w)
		if !g.Directed() {
			keep(e.To, e.From, w)
		}
	}
	for _, p := range order {
		if err := idx.graph.AddEdge(idx.ids[p.from], idx.ids[p.to], best[p]); err != nil {
			return nil, pkgerrors.Wrapf(err, "can not add edge %s→%s", p.from, p.to)
		}
	}
	idx.graph.PrepareContractionHierarchies()

	return idx, nil
}

// Weight returns the attribute the index was built on.
func (idx *Index) Weight() route.Weight { return idx.weight }

// ShortestPath returns the minimum total weight from start to goal and the
// stations along one such path. ok is false when either station is unknown
// or goal is unreachable.
func (idx *Index) ShortestPath(start, goal string) (total float64, path []string, ok bool) {
	s, okS := idx.ids[start]
	t, okT := idx.ids[goal]
	if !okS || !okT {
		return 0, nil, false
	}
	if s == t {
		return 0, []string{start}, true
	}

	total, vertices := idx.graph.ShortestPath(s, t)
	if total < 0 || len(vertices) == 0 {
		return 0, nil, false
	}
	path = make([]string, len(vertices))
	for i, v := range vertices {
		path[i] = idx.stations[v]
	}

	return total, path, true
}
