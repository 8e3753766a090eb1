package aggregate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/railpath/route"
)

// ErrInvalidObjective is returned by Select (and Objective.Validate) when
// the objective cannot be evaluated. It is never replaced by a default.
var ErrInvalidObjective = errors.New("aggregate: invalid objective")

// DefaultLimit is the number of candidates TopK keeps when Limit is 0.
const DefaultLimit = 3

// Criterion is one rider preference, measured on a route.Outcome.
type Criterion int

const (
	// Fastest minimizes total duration.
	Fastest Criterion = iota

	// Cheapest minimizes total cost.
	Cheapest

	// LeastTransit minimizes the number of line changes.
	LeastTransit

	// Shortest minimizes total distance.
	Shortest
)

var criterionNames = [...]string{
	Fastest:      "fastest",
	Cheapest:     "cheapest",
	LeastTransit: "least_transit",
	Shortest:     "shortest",
}

func (c Criterion) String() string {
	if c.valid() {
		return criterionNames[c]
	}

	return fmt.Sprintf("Criterion(%d)", int(c))
}

func (c Criterion) valid() bool { return c >= 0 && int(c) < len(criterionNames) }

// Of returns the value of c on o.
func (c Criterion) Of(o route.Outcome) float64 {
	switch c {
	case Fastest:
		return o.Duration
	case Cheapest:
		return o.Cost
	case LeastTransit:
		return float64(o.Transits)
	default:
		return o.Distance
	}
}

// ParseCriterion accepts fastest, cheapest, least_transit or shortest.
func ParseCriterion(s string) (Criterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range criterionNames {
		if name == s {
			return Criterion(c), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown criterion %q", ErrInvalidObjective, s)
}

// Policy decides how criteria turn into a score.
type Policy int

const (
	// Single ranks by one criterion.
	Single Policy = iota

	// TopK ranks by one criterion and keeps the first Limit candidates.
	TopK

	// Median scores each candidate by the median of its criterion values.
	Median

	// WeightedSum scores each candidate by a linear blend of all four totals.
	WeightedSum
)

var policyNames = [...]string{
	Single:      "single",
	TopK:        "topk",
	Median:      "median",
	WeightedSum: "weighted",
}

func (p Policy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts single, topk, median or weighted.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == s {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidObjective, s)
}

// Weights are the WeightedSum coefficients.
type Weights struct {
	Distance float64
	Cost     float64
	Duration float64
	Transit  float64
}

// DefaultWeights weighs the four totals equally.
func DefaultWeights() Weights {
	return Weights{Distance: 0.25, Cost: 0.25, Duration: 0.25, Transit: 0.25}
}

// Score returns the weighted sum of o's totals.
func (w Weights) Score(o route.Outcome) float64 {
	return w.Distance*o.Distance + w.Cost*o.Cost + w.Duration*o.Duration + w.Transit*float64(o.Transits)
}

func (w Weights) validate() error {
	sum := 0.0
	for _, v := range [...]float64{w.Distance, w.Cost, w.Duration, w.Transit} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight %v must be finite and non-negative", ErrInvalidObjective, v)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weights must sum to a positive value", ErrInvalidObjective)
	}

	return nil
}

// Objective is the caller's ranking request.
//
// Criteria is used by Single and TopK (exactly one entry) and by Median
// (one or more). Weights is used by WeightedSum only. Limit caps the
// number of candidates returned; 0 means DefaultLimit for TopK and 1
// otherwise.
type Objective struct {
	Policy   Policy
	Criteria []Criterion
	Weights  Weights
	Limit    int
}

// SingleCriterion picks the best outcome under c.
func SingleCriterion(c Criterion) Objective {
	return Objective{Policy: Single, Criteria: []Criterion{c}}
}

// TopKBy keeps the DefaultLimit best outcomes under c.
func TopKBy(c Criterion) Objective {
	return Objective{Policy: TopK, Criteria: []Criterion{c}}
}

// MedianOf scores outcomes by the median of the given criteria.
func MedianOf(cs ...Criterion) Objective {
	return Objective{Policy: Median, Criteria: cs}
}

// WeightedSumOf scores outcomes by w.
func WeightedSumOf(w Weights) Objective {
	return Objective{Policy: WeightedSum, Weights: w}
}

// Validate reports whether obj can be evaluated.
func (obj Objective) Validate() error {
	if obj.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidObjective, obj.Limit)
	}
	for _, c := range obj.Criteria {
		if !c.valid() {
			return fmt.Errorf("%w: unknown criterion %v", ErrInvalidObjective, c)
		}
	}

	switch obj.Policy {
	case Single, TopK:
		if len(obj.Criteria) != 1 {
			return fmt.Errorf("%w: %v needs exactly one criterion, got %d", ErrInvalidObjective, obj.Policy, len(obj.Criteria))
		}
	case Median:
		if len(obj.Criteria) == 0 {
			return fmt.Errorf("%w: median needs at least one criterion", ErrInvalidObjective)
		}
	case WeightedSum:
		return obj.Weights.validate()
	default:
		return fmt.Errorf("%w: unknown policy %v", ErrInvalidObjective, obj.Policy)
	}

	return nil
}
