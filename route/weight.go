package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/railpath/core"
)

// Weight selects which edge attribute a weighted search minimizes.
type Weight int

const (
	// ByDistance weighs edges by track length.
	ByDistance Weight = iota

	// ByCost weighs edges by fare.
	ByCost

	// ByDuration weighs edges by travel time.
	ByDuration
)

// Of returns the weight of e under w.
func (w Weight) Of(e core.Edge) float64 {
	switch w {
	case ByCost:
		return e.Cost
	case ByDuration:
		return e.Duration
	default:
		return e.Distance
	}
}

// Valid reports whether w names a known attribute.
func (w Weight) Valid() bool { return w >= ByDistance && w <= ByDuration }

func (w Weight) String() string {
	switch w {
	case ByDistance:
		return "distance"
	case ByCost:
		return "cost"
	case ByDuration:
		return "duration"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// ParseWeight maps "distance", "cost" or "duration" (case-insensitive) to a Weight.
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return ByDistance, nil
	case "cost":
		return ByCost, nil
	case "duration":
		return ByDuration, nil
	}

	return 0, fmt.Errorf("route: unknown weight %q", s)
}

// Total returns the route total matching w.
func (o Outcome) Total(w Weight) float64 {
	switch w {
	case ByCost:
		return o.Cost
	case ByDuration:
		return o.Duration
	default:
		return o.Distance
	}
}
