// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for the builder package.
// AI-HINT (file):
//   - Option constructors panic on meaningless input; constructors never do.
//   - WithSeed is the reproducible way to feed RandomSparse.

package builder

import (
	"math/rand"
)

// BuilderOption mutates a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors and weight
// draws. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the label prefixes of the two CompleteBipartite
// sides. Empty values mean "use the default".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// WithMirroredArcs controls whether directed flavours receive the reverse
// arc for every symmetric edge of Star, Wheel, Complete, CompleteBipartite
// and Grid. On by default; Path and Cycle never mirror.
func WithMirroredArcs(on bool) BuilderOption {
	return func(c *builderConfig) { c.mirror = on }
}
