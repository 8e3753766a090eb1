package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/jamespfennell/gtfs"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// GTFSConfig controls how a static feed becomes edge records.
type GTFSConfig struct {
	// UseStopIDs names stations by stop_id instead of stop_name.
	// By default stops sharing a name (platforms of one station) merge.
	UseStopIDs bool

	// ShapeDistanceUnitKm converts shape_dist_traveled deltas to km.
	// 0 ignores shape distances and measures stop-to-stop great-circle
	// distance instead.
	ShapeDistanceUnitKm float64

	// FarePerKm prices each record as distance × FarePerKm.
	FarePerKm float64

	// Directed keeps A→B and B→A as separate records. Leave it false when
	// the records feed a bidirectional graph.
	Directed bool
}

func (c GTFSConfig) validate() error {
	if c.ShapeDistanceUnitKm < 0 {
		return fmt.Errorf("%w: ShapeDistanceUnitKm %v", ErrBadValue, c.ShapeDistanceUnitKm)
	}
	if c.FarePerKm < 0 {
		return fmt.Errorf("%w: FarePerKm %v", ErrBadValue, c.FarePerKm)
	}

	return nil
}

type recordKey struct {
	from, to, line string
}

// FromGTFS derives one record per pair of consecutive stops of every
// scheduled trip, in feed order, keeping the first record seen for each
// station pair and line. The returned positions map station names to stop
// coordinates, for stops that carry them.
func FromGTFS(static *gtfs.Static, cfg GTFSConfig) ([]Record, map[string]Position, error) {
	if static == nil {
		return nil, nil, ErrNilFeed
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	positions := make(map[string]Position)
	for i := range static.Stops {
		s := &static.Stops[i]
		if s.Latitude == nil || s.Longitude == nil {
			continue
		}
		name := cfg.station(s)
		if _, ok := positions[name]; !ok {
			positions[name] = Position{Lat: *s.Latitude, Lon: *s.Longitude}
		}
	}

	seen := make(map[recordKey]bool)
	var out []Record
	for ti := range static.Trips {
		trip := &static.Trips[ti]
		line := lineName(trip.Route)
		if line == "" {
			line = trip.ID
		}

		stops := make([]gtfs.ScheduledStopTime, len(trip.StopTimes))
		copy(stops, trip.StopTimes)
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].StopSequence < stops[j].StopSequence })

		for i := 1; i < len(stops); i++ {
			prev, cur := stops[i-1], stops[i]
			if prev.Stop == nil || cur.Stop == nil {
				continue
			}
			from, to := cfg.station(prev.Stop), cfg.station(cur.Stop)
			if from == to {
				continue
			}
			key := recordKey{from, to, line}
			if !cfg.Directed && to < from {
				key = recordKey{to, from, line}
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			dist := cfg.distance(prev, cur, positions[from], positions[to])
			minutes := (cur.ArrivalTime - prev.ArrivalTime).Minutes()
			if minutes < 0 {
				minutes = 0
			}
			out = append(out, Record{
				Source:      from,
				Destination: to,
				Line:        line,
				Distance:    dist,
				Cost:        dist * cfg.FarePerKm,
				Duration:    minutes,
			})
		}
	}

	return out, positions, nil
}

// LoadGTFSFile reads a GTFS zip archive and converts it with FromGTFS.
func LoadGTFSFile(path string, cfg GTFSConfig) ([]Record, map[string]Position, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "can not read %s", path)
	}
	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "can not parse GTFS feed %s", path)
	}

	return FromGTFS(static, cfg)
}

func (c GTFSConfig) station(s *gtfs.Stop) string {
	if c.UseStopIDs || s.Name == "" {
		return s.Id
	}

	return s.Name
}

// lineName prefers the public short name, then the long name, then the id.
func lineName(r *gtfs.Route) string {
	if r == nil {
		return ""
	}
	for _, s := range [...]string{r.ShortName, r.LongName, r.Id} {
		if s != "" {
			return s
		}
	}

	return ""
}

// distance returns the km between two consecutive stop times.
func (c GTFSConfig) distance(prev, cur gtfs.ScheduledStopTime, p, q Position) float64 {
	if c.ShapeDistanceUnitKm > 0 && prev.ShapeDistanceTraveled != nil && cur.ShapeDistanceTraveled != nil {
		if d := *cur.ShapeDistanceTraveled - *prev.ShapeDistanceTraveled; d >= 0 {
			return d * c.ShapeDistanceUnitKm
		}
	}
	if p == (Position{}) || q == (Position{}) {
		return 0
	}

	return geo.DistanceHaversine(orb.Point{p.Lon, p.Lat}, orb.Point{q.Lon, q.Lat}) / 1000
}
