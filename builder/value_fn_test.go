// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/builder"
	"github.com/stretchr/testify/require"
)

// TestValueFnConstructors verifies that ValueFn constructors panic
// on invalid parameters according to their documented contracts.
func TestValueFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.ValueFn
	}{
		{"ConstantValueFn_NaN", func() builder.ValueFn { return builder.ConstantValueFn(math.NaN()) }},
		{"ConstantValueFn_Inf", func() builder.ValueFn { return builder.ConstantValueFn(math.Inf(1)) }},
		{"UniformValueFn_hiLessThanLo", func() builder.ValueFn { return builder.UniformValueFn(5, 4) }},
		{"UniformValueFn_infBound", func() builder.ValueFn { return builder.UniformValueFn(0, math.Inf(1)) }},
		{"NormalValueFn_stddevNegative", func() builder.ValueFn { return builder.NormalValueFn(0, -0.1) }},
		{"NormalValueFn_meanNaN", func() builder.ValueFn { return builder.NormalValueFn(math.NaN(), 1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}

	require.NotPanics(t, func() { builder.ConstantValueFn(-3) })
	require.NotPanics(t, func() { builder.UniformValueFn(-1, -1) })
}

// TestValueFnBehavior covers the runtime behavior of each ValueFn:
//   - DefaultValueFn always returns DefaultValue.
//   - ConstantValueFn returns the fixed value.
//   - UniformValueFn returns DefaultValue on nil RNG, and values in [lo,hi).
//   - NormalValueFn returns DefaultValue on nil RNG and is reproducible per seed.
func TestValueFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	require.Equal(t, builder.DefaultValue, builder.DefaultValueFn(nil))
	require.Equal(t, builder.DefaultValue, builder.DefaultValueFn(rng))
	require.Equal(t, -3.5, builder.ConstantValueFn(-3.5)(rng))

	uni := builder.UniformValueFn(-1, 1)
	require.Equal(t, builder.DefaultValue, uni(nil))
	for i := 0; i < 100; i++ {
		v := uni(rng)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
	require.Equal(t, 7.0, builder.UniformValueFn(7, 7)(rng))

	norm := builder.NormalValueFn(10, 2)
	require.Equal(t, builder.DefaultValue, norm(nil))
	a := norm(rand.New(rand.NewSource(5)))
	b := norm(rand.New(rand.NewSource(5)))
	require.Equal(t, a, b)
	require.Equal(t, 10.0, builder.NormalValueFn(10, 0)(rng))
}

// TestValueFn_NilRandGivesDefault pins the unseeded fallback of every
// generator, including those whose parameters exclude DefaultValue.
func TestValueFn_NilRandGivesDefault(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]builder.ValueFn{
		"default":  builder.DefaultValueFn,
		"uniform":  builder.UniformValueFn(5, 6),
		"pinned":   builder.UniformValueFn(-2, -2),
		"normal":   builder.NormalValueFn(-100, 3),
		"constant": builder.ConstantValueFn(builder.DefaultValue),
	} {
		require.Equal(t, builder.DefaultValue, fn(nil), name)
	}
	// a constant generator ignores rng either way
	require.Equal(t, 4.0, builder.ConstantValueFn(4)(nil))
}
