// Package geoexport converts a rail graph into a GeoJSON FeatureCollection
// for external map viewers. It reads graph data only; it never sees search
// results and computes no layout.
package geoexport

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/dataset"
)

// FeatureCollection returns one Point per positioned station (sorted by
// name, property "name") followed by one LineString per edge whose both
// endpoints are positioned (insertion order, properties "id", "line",
// "distance", "cost" and "duration"). Coordinates are [lon, lat].
func FeatureCollection(g *core.Graph, positions map[string]dataset.Position) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if g == nil {
		return fc
	}

	for _, s := range g.Stations() {
		p, ok := positions[s]
		if !ok {
			continue
		}
		f := geojson.NewPointFeature(coords(p))
		f.SetProperty("name", s)
		fc.AddFeature(f)
	}

	for _, e := range g.Edges() {
		p, okFrom := positions[e.From]
		q, okTo := positions[e.To]
		if !okFrom || !okTo {
			continue
		}
		f := geojson.NewLineStringFeature([][]float64{coords(p), coords(q)})
		f.SetProperty("id", e.ID)
		f.SetProperty("from", e.From)
		f.SetProperty("to", e.To)
		f.SetProperty("line", e.Line)
		f.SetProperty("distance", e.Distance)
		f.SetProperty("cost", e.Cost)
		f.SetProperty("duration", e.Duration)
		fc.AddFeature(f)
	}

	return fc
}

// Write marshals fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "can not marshal feature collection")
	}
	if _, err = w.Write(b); err != nil {
		return errors.Wrap(err, "can not write feature collection")
	}

	return nil
}

func coords(p dataset.Position) []float64 {
	return []float64{p.Lon, p.Lat}
}
