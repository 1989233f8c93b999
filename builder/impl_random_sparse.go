// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// impl_random_sparse.go - implementation of RandomSparse(rows, cols, p) constructor.
//
// Model:
//   - Bernoulli pattern: each cell (i,j) of a rows×cols grid is written
//     independently with probability p; its value comes from cfg.valueFn.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewRows).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and runs without an RNG.
//   - Values are drawn after the cell is selected, from the same RNG stream.
//   - The matrix shape grows only as far as the sampled cells reach, so
//     Rows() ≤ rows and Cols() ≤ cols on an empty matrix.
//
// Complexity:
//   - Time: O(rows·cols) Bernoulli trials + O(nnz) writes.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// RandomSparse returns a Constructor that samples a sparse pattern over a
// rows×cols grid with independent cell probability p.
func RandomSparse[T sparse.Number](rows, cols int, p float64) Constructor[T] {
	return func(m sparse.Matrix[T], cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "rows", rows, MinRandomDim); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, "cols", cols, MinRandomDim); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		rng := cfg.rng
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if p < MaxProbability && rng.Float64() >= p {
					continue
				}
				if err := setCell(MethodRandomSparse, m, i, j, T(cfg.valueFn(rng))); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
