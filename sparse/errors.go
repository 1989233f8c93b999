// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All layouts MUST return these sentinels and tests MUST check them
// via errors.Is. No layout should panic on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping across logs.
// Layout methods wrap sentinels with their name and coordinates, e.g.
// "MapMatrix.At(3,4): sparse: index out of range"; callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> index/NaN -> dimension mismatch.

var (
	// ErrOutOfRange indicates a negative index, or a read (At) outside the
	// current shape. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates that a vector length does not match the
	// matrix shape (len(x) != Cols() or len(dst) != Rows()).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNilVector indicates that a nil vector was passed where a vector is required.
	ErrNilVector = errors.New("sparse: nil vector")
)
