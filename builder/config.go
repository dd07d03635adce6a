// SPDX-License-Identifier: MIT
// File: config.go
// Role: resolved builder configuration and its deterministic defaults.
// Determinism:
//   - labels   = DefaultIDFn ("0","1",...)
//   - rng      = nil (constructors that need randomness reject nil)
//   - weights  = DefaultWeightFn
//   - prefixes = "L" / "R"
//   - mirror   = true

package builder

import (
	"math/rand"
)

// builderConfig is passed by value to every Constructor.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string

	// mirror adds the reverse arc of symmetric edges on directed flavours.
	mirror bool
}

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		mirror:      true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
