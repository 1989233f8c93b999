// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(m, bopts, cons...). Resolves cfg, runs cons in order on m.
//   - The caller owns the matrix and therefore chooses the layout and its options.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical cell writes.
//   - Safety: never panic; return sentinel errors from constructors; vector helpers return nil on invalid input.
//
// AI-Hints (practical):
//   - Compose Stencil with Identity to shift the diagonal, or several RandomSparse
//     calls with one seed to layer patterns deterministically.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Constructor applies a deterministic sequence of writes to m using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters before the first write and return sentinel errors (no panics).
//   - Write only through the sparse.Matrix interface (layout agnostic).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor[T sparse.Number] func(m sparse.Matrix[T], cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors to m in order. Any constructor error is wrapped with the
// context "Build: %w" and returned immediately; cells written by earlier
// constructors stay in m.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - sparse.ErrNilMatrix when m is nil.
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is against builder and
//     sparse sentinels (ErrTooFewRows, ErrInvalidProbability, sparse.ErrNaNInf, ...).
func Build[T sparse.Number](m sparse.Matrix[T], bopts []BuilderOption, cons ...Constructor[T]) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// NewStencil is a shorthand for the common fixture: a fresh MapMatrix
// holding Stencil(n) under the default coefficients.
// Complexity: O(n) time, O(n) space.
func NewStencil[T sparse.Number](n int, bopts ...BuilderOption) (*sparse.MapMatrix[T], error) {
	m := sparse.NewMapMatrix[T](sparse.WithCapacity(max(n, 0)))
	if err := Build[T](m, bopts, Stencil[T](n)); err != nil {
		return nil, err
	}

	return m, nil
}

// setCell writes v through m and decorates failures with the constructor
// name and coordinates.
func setCell[T sparse.Number](method string, m sparse.Matrix[T], i, j int, v T) error {
	if err := m.Set(i, j, v); err != nil {
		return fmt.Errorf("%s: Set(%d,%d): %w", method, i, j, err)
	}

	return nil
}
