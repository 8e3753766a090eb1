package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultSegment is a 10 km hop costing 100 and taking 6 minutes.
var DefaultSegment = Segment{Distance: 10, Cost: 100, Duration: 6}

// ConstantSegment returns the same totals for every edge.
func ConstantSegment(s Segment) SegmentFn {
	return func(*rand.Rand) Segment { return s }
}

// UniformSegment draws the distance uniformly from [minKm, maxKm] and
// derives the fare at farePerKm and the running time at kmPerMin.
// With a nil rng the midpoint is used. Panics if the bounds are invalid
// or kmPerMin is not positive.
func UniformSegment(minKm, maxKm, farePerKm, kmPerMin float64) SegmentFn {
	if minKm < 0 || maxKm < minKm || farePerKm < 0 || kmPerMin <= 0 {
		panic(fmt.Sprintf("UniformSegment: invalid parameters min=%g max=%g fare=%g speed=%g",
			minKm, maxKm, farePerKm, kmPerMin))
	}
	return func(rng *rand.Rand) Segment {
		d := (minKm + maxKm) / 2
		if rng != nil {
			d = minKm + rng.Float64()*(maxKm-minKm)
		}
		d = math.Round(d*10) / 10

		return Segment{
			Distance: d,
			Cost:     math.Round(d * farePerKm),
			Duration: math.Ceil(d / kmPerMin),
		}
	}
}
