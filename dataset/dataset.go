// Package dataset turns rail network sources into edge records and
// records into a core.Graph.
//
// Two sources are supported: the CSV edge table used by the Shinkansen
// dataset (one row per station pair and line) and static GTFS feeds,
// where consecutive stops of every scheduled trip become records. Build is
// the only place records enter a graph.
package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/railpath/core"
)

// Sentinel errors for dataset parsing.
var (
	// ErrMissingColumn is returned when a required CSV header is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadValue is returned when a numeric CSV cell does not parse.
	ErrBadValue = errors.New("dataset: bad value")

	// ErrNilFeed is returned by FromGTFS for a nil feed.
	ErrNilFeed = errors.New("dataset: GTFS feed is nil")
)

// Record is one edge tuple of a dataset.
type Record struct {
	Source      string
	Destination string
	Line        string
	Distance    float64 // km
	Cost        float64 // fare units (yen in the Shinkansen table)
	Duration    float64 // minutes
}

// Position is a station coordinate in WGS84 degrees.
type Position struct {
	Lat float64
	Lon float64
}

// Build adds one edge per record, in order, to a new graph.
// The first invalid record aborts the build.
func Build(records []Record, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for i, r := range records {
		if _, err := g.AddEdge(r.Source, r.Destination, r.Line, r.Distance, r.Cost, r.Duration); err != nil {
			return nil, fmt.Errorf("dataset: record %d (%s→%s): %w", i+1, r.Source, r.Destination, err)
		}
	}

	return g, nil
}
