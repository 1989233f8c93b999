// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// vectors.go - dense input vectors paired with the matrix constructors.
//
// Contract:
//   - Pure helpers (no config, no RNG). Return nil on invalid input (n < 0).

package builder

import "github.com/katalvlaran/sparsemat/sparse"

// Iota returns [0, 1, ..., n-1].
// Complexity: O(n) time and space.
func Iota[T sparse.Number](n int) []T {
	if n < 0 {
		return nil
	}
	x := make([]T, n)
	for i := range x {
		x[i] = T(i)
	}

	return x
}

// StencilIotaProduct returns the exact product Stencil(n)·Iota(n) under
// the default coefficients: y[0]=1, y[n-1]=-n, zeros in between.
// Returns nil when n < MinStencilSize.
// Complexity: O(n) time and space.
func StencilIotaProduct[T sparse.Number](n int) []T {
	if n < MinStencilSize {
		return nil
	}
	y := make([]T, n)
	y[0] = 1
	y[n-1] = T(-n)

	return y
}
