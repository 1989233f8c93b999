// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// impl_stencil.go - implementation of Stencil(n) constructor.
//
// Contract:
//   • n ≥ MinStencilSize (else ErrTooFewRows); nothing is written on invalid input.
//   • Row 0:       (0,0)=diag, (0,1)=off.
//   • Row i∈[1,n-2]: (i,i)=diag, (i,i+1)=off, (i,i-1)=off.
//   • Row n-1:     (n-1,n-2)=off, (n-1,n-1)=diag.
//   • Coefficients come from cfg (defaults -2 and 1); they are converted to T.
//   • Writes are issued row by row in the order listed above.
//
// Complexity:
//   • Time: O(n) writes (3n-2 cells). Space: O(1) extra.
//
// On an empty matrix the result is n×n with NNZ 3n-2.

package builder

import "github.com/katalvlaran/sparsemat/sparse"

// Stencil returns a Constructor that writes the 1-D second-difference
// matrix of size n.
func Stencil[T sparse.Number](n int) Constructor[T] {
	return func(m sparse.Matrix[T], cfg builderConfig) error {
		if err := validateMin(MethodStencil, "n", n, MinStencilSize); err != nil {
			return err
		}

		d, o := T(cfg.diag), T(cfg.offDiag)

		if err := setCell(MethodStencil, m, 0, 0, d); err != nil {
			return err
		}
		if err := setCell(MethodStencil, m, 0, 1, o); err != nil {
			return err
		}
		for i := 1; i < n-1; i++ {
			if err := setCell(MethodStencil, m, i, i, d); err != nil {
				return err
			}
			if err := setCell(MethodStencil, m, i, i+1, o); err != nil {
				return err
			}
			if err := setCell(MethodStencil, m, i, i-1, o); err != nil {
				return err
			}
		}
		if err := setCell(MethodStencil, m, n-1, n-2, o); err != nil {
			return err
		}

		return setCell(MethodStencil, m, n-1, n-1, d)
	}
}
