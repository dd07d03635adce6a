// SPDX-License-Identifier: MIT
// File: weight_fn.go
// Role: edge weight distributions.
// Determinism:
//   - Every WeightFn falls back to DefaultEdgeWeight when rng is nil.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces the weight of the next emitted edge. Both halves of a
// paired edge receive the same draw.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Panics unless
// 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// From1To100WeightFn is UniformWeightFn(1, 100).
func From1To100WeightFn(rng *rand.Rand) float64 {
	return UniformWeightFn(1, 100)(rng)
}

// NormalWeightFn samples N(mean, stddev), rounded and clipped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn samples Exp(rate), rounded. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight sets weights ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
