package builder

import (
	"math/rand" // RNG source for stochastic builders and weights
)

// builderConfig holds the knobs shared by every constructor.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults: no rng and DefaultWeightFn.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand sets the random source used by RandomSparse and by random WeightFns.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
