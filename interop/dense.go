// SPDX-License-Identifier: MIT
// Package: interop
//
// dense.go - sparse <-> gonum conversions and the dense reference product.

package interop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty is returned when a conversion would need a zero-sized dense matrix.
var ErrEmpty = errors.New("interop: empty matrix")

// View is a read-only mat.Matrix over a sparse matrix.
// The view is live: later writes to the wrapped matrix are visible.
type View[T sparse.Number] struct {
	m sparse.Matrix[T]
}

var _ mat.Matrix = (*View[float64])(nil)

// NewView wraps m. Returns sparse.ErrNilMatrix for a nil m.
func NewView[T sparse.Number](m sparse.Matrix[T]) (*View[T], error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewView: %w", err)
	}

	return &View[T]{m: m}, nil
}

// Dims returns the current shape of the wrapped matrix.
func (v *View[T]) Dims() (r, c int) { return v.m.Shape() }

// At returns the (i, j) element as float64.
// Panics with mat.ErrIndexOutOfRange outside the shape.
func (v *View[T]) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(x)
}

// T returns the implicit transpose.
func (v *View[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToDense materializes m into a fresh *mat.Dense of the same shape.
//
// Errors: sparse.ErrNilMatrix, ErrEmpty (Rows()==0 or Cols()==0).
// Complexity: O(r·c) allocation + O(nnz) fill.
func ToDense[T sparse.Number](m sparse.Matrix[T]) (*mat.Dense, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToDense: %dx%d: %w", r, c, ErrEmpty)
	}

	d := mat.NewDense(r, c, nil)
	m.Do(func(i, j int, v T) bool {
		d.Set(i, j, float64(v))
		return true
	})

	return d, nil
}

// FromDense writes every non-zero element of a into dst, row-major.
// Zero elements are skipped, so trailing all-zero rows or columns of a do
// not grow dst's shape.
//
// Errors: sparse.ErrNilMatrix; any Set failure (e.g. sparse.ErrNaNInf) is
// returned with its coordinates, leaving earlier cells in dst.
// Complexity: O(r·c).
func FromDense[T sparse.Number](dst sparse.Matrix[T], a mat.Matrix) error {
	if err := sparse.ValidateNotNil(dst); err != nil {
		return fmt.Errorf("FromDense: %w", err)
	}
	if a == nil {
		return fmt.Errorf("FromDense: %w", sparse.ErrNilMatrix)
	}

	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x := a.At(i, j)
			if x == 0 {
				continue
			}
			if err := dst.Set(i, j, T(x)); err != nil {
				return fmt.Errorf("FromDense: %w", err)
			}
		}
	}

	return nil
}

// MulVecReference returns A·x computed by gonum's dense kernel on a
// float64 copy of m. It is the oracle used to cross-check sparse products.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrNilVector,
// sparse.ErrDimensionMismatch (len(x) != Cols()), ErrEmpty.
// Complexity: O(r·c).
func MulVecReference[T sparse.Number](m sparse.Matrix[T], x []T) ([]float64, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MulVecReference: %w", err)
	}
	if err := sparse.ValidateVecLen(x, m.Cols()); err != nil {
		return nil, fmt.Errorf("MulVecReference: %w", err)
	}
	a, err := ToDense(m)
	if err != nil {
		return nil, fmt.Errorf("MulVecReference: %w", err)
	}

	xf := make([]float64, len(x))
	for k, v := range x {
		xf[k] = float64(v)
	}
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(len(xf), xf))

	out := make([]float64, y.Len())
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out, nil
}
