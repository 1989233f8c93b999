// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Thin, layout-agnostic entry points over the Matrix interface.
//   - Each facade validates its operands and delegates; no layout-specific loops.
//
// Determinism & Policy:
//   - Facades never change the visiting order of the underlying layout.
//   - Errors are tagged with the facade name and keep the sentinel via %w.

package sparse

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/exp/constraints"
)

// Operation name constants for uniform error wrapping.
const (
	opMulVec  = "MulVec"
	opConvert = "Convert"
	opEntries = "Entries"
	opEqual   = "Equal"
	opFprint  = "Fprint"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulVec computes y = m·x for any layout.
// Complexity: that of m.MulVec (O(nnz) for the shipped layouts).
func MulVec[T Number](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	y, err := m.MulVec(x)
	if err != nil {
		return nil, opErrorf(opMulVec, err)
	}

	return y, nil
}

// Fprint writes m's dump to w.
func Fprint[T Number](w io.Writer, m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opFprint, err)
	}

	return m.Fprint(w)
}

// Print writes m's dump to standard output.
func Print[T Number](m Matrix[T]) error { return Fprint(os.Stdout, m) }

// Convert copies every stored cell of src into dst through dst.Set.
// MAIN DESCRIPTION:
//   - Layout-agnostic conversion (e.g. MapMatrix → HashMatrix).
//
// Behavior highlights:
//   - Explicitly stored zeros are copied too, so an empty dst ends with the
//     same Rows/Cols/NNZ as src.
//   - Cells already present in dst are overwritten; others are kept.
//   - The first failing Set aborts; earlier writes remain.
//
// Errors:
//   - ErrNilMatrix; any error from dst.Set (e.g. ErrNaNInf under dst's policy).
//
// Complexity:
//   - Time O(nnz(src)) Set calls.
func Convert[T Number](dst, src Matrix[T]) error {
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opConvert, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return opErrorf(opConvert, err)
	}
	var err error
	src.Do(func(i, j int, v T) bool {
		err = dst.Set(i, j, v)
		return err == nil
	})
	if err != nil {
		return opErrorf(opConvert, err)
	}

	return nil
}

// Entries returns every stored cell in ascending (row, col) order.
// Complexity: O(nnz) time and space.
func Entries[T Number](m Matrix[T]) ([]Entry[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opEntries, err)
	}
	out := make([]Entry[T], 0, m.NNZ())
	m.Do(func(i, j int, v T) bool {
		out = append(out, Entry[T]{Row: i, Col: j, Value: v})
		return true
	})

	return out, nil
}

// Equal reports whether a and b have the same shape, the same stored cells
// and the same values, regardless of layout.
// Errors: ErrNilMatrix.
// Complexity: O(nnz(a) + nnz(b)).
func Equal[T Number](a, b Matrix[T]) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		if errors.Is(err, ErrDimensionMismatch) {
			return false, nil
		}
		return false, opErrorf(opEqual, err)
	}
	if a.NNZ() != b.NNZ() {
		return false, nil
	}
	ea, _ := Entries(a) // non-nil checked above
	eb, _ := Entries(b)
	for k := range ea {
		if ea[k] != eb[k] {
			return false, nil
		}
	}

	return true, nil
}

// VecEqual reports exact element-wise equality of two vectors.
// Vectors of different length are never equal.
func VecEqual[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// VecAllClose checks |a[i]-b[i]| ≤ atol + rtol*|b[i]| for every i.
// NaN is never close to anything; equal infinities are close.
// rtol and atol are taken by absolute value.
func VecAllClose[F constraints.Float](a, b []F, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var x, y float64
	for i := range a {
		x, y = float64(a[i]), float64(b[i])
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}
