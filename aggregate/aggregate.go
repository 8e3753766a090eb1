// Package aggregate ranks the outcomes of several route searches against
// a rider objective and picks the best one.
//
// Only found outcomes take part. Every policy computes one score per
// candidate (lower is better) and orders candidates by it with a stable
// sort, so equal scores keep input order and the earliest wins.
//
//   - Single:      score = the criterion's value.
//   - TopK:        as Single, keeping DefaultLimit candidates.
//   - Median:      score = sorted(criterion values)[n/2]; for an even n this
//     is the upper of the two middle values, kept as-is.
//   - WeightedSum: score = Weights.Score(outcome).
//
// Limit caps the candidates kept; when it is 0, TopK keeps DefaultLimit
// and the other policies keep only the winner.
//
// An input with no found outcome gives an empty Selection, which callers
// report as "no suitable route". Invalid objectives give ErrInvalidObjective.
package aggregate

import (
	"slices"
	"sort"

	"github.com/katalvlaran/railpath/route"
)

// Candidate is one ranked outcome.
type Candidate struct {
	Index   int // position in the Select input
	Outcome route.Outcome
	Score   float64
}

// Selection is the ranked result of Select, best first.
type Selection struct {
	Objective  Objective
	Candidates []Candidate
}

// Best returns the winning candidate, if any.
func (s Selection) Best() (Candidate, bool) {
	if len(s.Candidates) == 0 {
		return Candidate{}, false
	}

	return s.Candidates[0], true
}

// NoSuitableRoute reports whether no outcome qualified.
func (s Selection) NoSuitableRoute() bool { return len(s.Candidates) == 0 }

// Select ranks outcomes under obj.
func Select(outcomes []route.Outcome, obj Objective) (Selection, error) {
	if err := obj.Validate(); err != nil {
		return Selection{}, err
	}

	score := scorer(obj)
	cands := make([]Candidate, 0, len(outcomes))
	for i, o := range outcomes {
		if !o.Found() {
			continue
		}
		cands = append(cands, Candidate{Index: i, Outcome: o, Score: score(o)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score < cands[j].Score })

	limit := obj.Limit
	if limit == 0 {
		limit = 1
		if obj.Policy == TopK {
			limit = DefaultLimit
		}
	}
	if len(cands) > limit {
		cands = cands[:limit]
	}

	return Selection{Objective: obj, Candidates: cands}, nil
}

// scorer returns the scoring function of a validated objective.
func scorer(obj Objective) func(route.Outcome) float64 {
	switch obj.Policy {
	case Median:
		return func(o route.Outcome) float64 {
			return median(obj.Criteria, o)
		}
	case WeightedSum:
		return obj.Weights.Score
	default:
		return obj.Criteria[0].Of
	}
}

func median(cs []Criterion, o route.Outcome) float64 {
	vals := make([]float64, len(cs))
	for i, c := range cs {
		vals[i] = c.Of(o)
	}
	slices.Sort(vals)

	return vals[len(vals)/2]
}
