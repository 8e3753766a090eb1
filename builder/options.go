package builder

import "math/rand"

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme names the i-th generated station. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand injects an RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSegmentFn sets the per-edge totals generator. Panics on nil.
func WithSegmentFn(fn SegmentFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSegmentFn(nil)")
	}
	return func(c *builderConfig) {
		c.segmentFn = fn
	}
}
