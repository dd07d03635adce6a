// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partgraph/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const (
		seed     = 42
		constVal = 7.0
	)
	rng := rand.New(rand.NewSource(seed))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	c := builder.ConstantWeightFn(constVal)
	require.Equal(t, constVal, c(nil))
	require.Equal(t, constVal, c(rng))

	u := builder.UniformWeightFn(3, 3)
	require.Equal(t, builder.DefaultEdgeWeight, u(nil))
	require.Equal(t, 3.0, u(rng))

	w := builder.From1To100WeightFn(rand.New(rand.NewSource(seed)))
	require.GreaterOrEqual(t, w, 1.0)
	require.Less(t, w, 100.0)

	n := builder.NormalWeightFn(10, 2)
	require.Equal(t, builder.DefaultEdgeWeight, n(nil))
	require.GreaterOrEqual(t, n(rand.New(rand.NewSource(seed))), 0.0)

	e := builder.ExponentialWeightFn(1.5)
	require.Equal(t, builder.DefaultEdgeWeight, e(nil))
	require.GreaterOrEqual(t, e(rand.New(rand.NewSource(seed))), 0.0)
}
