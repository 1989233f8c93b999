// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly with their own method context.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIndex ensures both indices lie in [0, math.MaxInt).
// The write path grows the shape to index+1, so math.MaxInt itself has no
// representable shape and is rejected.
// Complexity: O(1).
func ValidateIndex(i, j int) error {
	if i < 0 || j < 0 || i == math.MaxInt || j == math.MaxInt {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal Rows and Cols.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateMulVecTo runs the shared MulVecTo checks: x first, then dst.
func validateMulVecTo[T Number](rows, cols int, dst, x []T) error {
	if err := ValidateVecLen(x, cols); err != nil {
		return err
	}

	return ValidateVecLen(dst, rows)
}
