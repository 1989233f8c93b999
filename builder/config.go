// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • diag      = DefaultDiagonal     (-2)
//   • offDiag   = DefaultOffDiagonal  (1)
//   • valueFn   = DefaultValueFn      (constant DefaultValue)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse fixtures.
//   • WithDiagonal/WithOffDiagonal change Stencil only; StencilIotaProduct
//     describes the default coefficients.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Stencil coefficients.
	diag    float64
	offDiag float64
	// Value generator for RandomSparse cells.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		diag:    DefaultDiagonal,
		offDiag: DefaultOffDiagonal,
		valueFn: DefaultValueFn,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
