// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// impl_identity.go - implementation of Identity(n) constructor.

package builder

import "github.com/katalvlaran/sparsemat/sparse"

// Identity returns a Constructor that sets (i,i)=1 for i in [0,n).
// Composed after Stencil it overwrites the diagonal; it never adds
// off-diagonal cells.
//
// Errors: ErrTooFewRows when n < MinIdentitySize.
// Complexity: O(n) writes, O(1) extra space.
func Identity[T sparse.Number](n int) Constructor[T] {
	return func(m sparse.Matrix[T], _ builderConfig) error {
		if err := validateMin(MethodIdentity, "n", n, MinIdentitySize); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := setCell(MethodIdentity, m, i, i, T(1)); err != nil {
				return err
			}
		}

		return nil
	}
}
