package builder

import (
	"math/rand"

	"github.com/katalvlaran/railpath/core"
)

// Segment holds the three totals of one generated edge.
type Segment struct {
	Distance float64
	Cost     float64
	Duration float64
}

// SegmentFn draws the totals for one edge. rng may be nil when no source
// was configured; implementations must then stay deterministic.
type SegmentFn func(rng *rand.Rand) Segment

// builderConfig is resolved once per BuildNetwork call.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	segmentFn SegmentFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		segmentFn: ConstantSegment(DefaultSegment),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// add inserts one edge and drops its ID.
func (cfg builderConfig) add(g *core.Graph, method, from, to, line string) error {
	s := cfg.segmentFn(cfg.rng)
	if _, err := g.AddEdge(from, to, line, s.Distance, s.Cost, s.Duration); err != nil {
		return builderErrorf(method, "AddEdge(%s→%s, %s): %w", from, to, line, err)
	}

	return nil
}
