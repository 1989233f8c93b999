// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// value_fn.go - cell value generators for RandomSparse.
//
// Contract:
//   • A ValueFn maps an RNG to one float64; the caller converts it to T.
//   • With a nil RNG every generator returns DefaultValue, so unseeded
//     builds stay reproducible.
//   • Bad parameters panic in the generator constructor, never per cell.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultValue fills RandomSparse cells unless WithValueFn (or one of the
// With*Values helpers) replaces the generator.
const DefaultValue float64 = 1

// ValueFn draws the next cell value from rng, which may be nil.
// Equal seeds must give equal sequences.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn ignores rng and returns DefaultValue.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultValue
}

// ConstantValueFn fixes every cell to value, which must be finite.
func ConstantValueFn(value float64) ValueFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn draws from [lo, hi); lo == hi pins the value to lo.
// Both bounds must be finite with lo <= hi. A nil rng gives DefaultValue.
func UniformValueFn(lo, hi float64) ValueFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalValueFn draws mean + stddev*Z with Z standard normal.
// mean must be finite and stddev non-negative. A nil rng gives DefaultValue.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(fmt.Sprintf("NormalValueFn: require finite mean and stddev ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// WithConstantValue is WithValueFn(ConstantValueFn(v)).
func WithConstantValue(v float64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValues is WithValueFn(UniformValueFn(lo, hi)).
func WithUniformValues(lo, hi float64) BuilderOption {
	return WithValueFn(UniformValueFn(lo, hi))
}

// WithNormalValues is WithValueFn(NormalValueFn(mean, stddev)).
func WithNormalValues(mean, stddev float64) BuilderOption {
	return WithValueFn(NormalValueFn(mean, stddev))
}
