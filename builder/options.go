// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig
// instance before any cell is written.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDiagonal sets the stencil's main-diagonal coefficient.
// Panics on NaN or ±Inf.
// Complexity: O(1).
func WithDiagonal(v float64) BuilderOption {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("builder: WithDiagonal(non-finite)")
	}

	return func(c *builderConfig) {
		c.diag = v
	}
}

// WithOffDiagonal sets the stencil's neighbour coefficient.
// Panics on NaN or ±Inf.
// Complexity: O(1).
func WithOffDiagonal(v float64) BuilderOption {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("builder: WithOffDiagonal(non-finite)")
	}

	return func(c *builderConfig) {
		c.offDiag = v
	}
}

// WithValueFn overrides the per-cell value generator used by RandomSparse.
// The function receives the (possibly nil) RNG and MUST draw from it only,
// to preserve determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *builderConfig) {
		c.valueFn = fn
	}
}
