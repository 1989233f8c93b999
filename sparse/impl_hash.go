// SPDX-License-Identifier: MIT

// Package sparse - HashMatrix: row-indexed hash storage.
//
// Purpose:
//   - Same contract as MapMatrix with O(1) expected cell lookup.
//   - Each cell lives behind its own pointer, so Ref handles stay valid for
//     the lifetime of the matrix (stronger than the interface requires).
//
// Determinism:
//   - Go map order is random; MulVec/Do/Fprint sort each row's columns
//     before visiting, keeping ascending (row, col) order.
//
// Complexity quicksheet:
//   - Ref/Set/At: O(1) expected. MulVec/Do/Fprint: O(nnz log k).
package sparse

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

const layoutHash = "HashMatrix"

// HashMatrix keeps one map[col]*value per row.
//   - len(data) == Rows(); data[i] is nil until row i receives its first cell.
type HashMatrix[T Number] struct {
	shape
	data []map[int]*T
}

var _ Matrix[float64] = (*HashMatrix[float64])(nil)

// NewHashMatrix returns an empty HashMatrix (Rows=Cols=NNZ=0).
// Complexity: O(capacity).
func NewHashMatrix[T Number](opts ...Option) *HashMatrix[T] {
	o := gatherOptions(opts...)

	return &HashMatrix[T]{
		shape: shape{validateNaNInf: o.validateNaNInf},
		data:  make([]map[int]*T, 0, o.capacity),
	}
}

// At returns the value at (i, j), zero for absent in-bounds cells.
// Errors: ErrOutOfRange outside the current shape.
func (m *HashMatrix[T]) At(i, j int) (T, error) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, cellErrorf(layoutHash, ctxAt, i, j, ErrOutOfRange)
	}
	if p, ok := m.data[i][j]; ok { // indexing a nil map is a legal miss
		return *p, nil
	}

	return zero, nil
}

// Ref returns a stable handle to the cell (i, j), inserting it when absent.
// Errors: ErrOutOfRange on negative indices.
func (m *HashMatrix[T]) Ref(i, j int) (*T, error) {
	if err := ValidateIndex(i, j); err != nil {
		return nil, cellErrorf(layoutHash, ctxRef, i, j, err)
	}

	return m.ref(i, j), nil
}

// Set stores v at (i, j); rejected writes leave the matrix untouched.
func (m *HashMatrix[T]) Set(i, j int, v T) error {
	if err := ValidateIndex(i, j); err != nil {
		return cellErrorf(layoutHash, ctxSet, i, j, err)
	}
	if err := m.admit(float64(v)); err != nil {
		return cellErrorf(layoutHash, ctxSet, i, j, err)
	}
	*m.ref(i, j) = v

	return nil
}

func (m *HashMatrix[T]) ref(i, j int) *T {
	if i >= len(m.data) {
		m.data = append(m.data, make([]map[int]*T, i+1-len(m.data))...)
		m.touchRow(i)
	}
	row := m.data[i]
	if row == nil {
		row = make(map[int]*T)
		m.data[i] = row
	}
	p, ok := row[j]
	if !ok {
		p = new(T)
		row[j] = p
		m.inserted(j)
	}

	return p
}

// MulVec returns y = A·x in a fresh vector of length Rows().
// Errors: ErrNilVector, ErrDimensionMismatch.
func (m *HashMatrix[T]) MulVec(x []T) ([]T, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, layoutErrorf(layoutHash, ctxMulVec, err)
	}
	y := make([]T, m.r)
	m.mulVec(y, x)

	return y, nil
}

// MulVecTo overwrites dst with A·x; dst is untouched on error.
func (m *HashMatrix[T]) MulVecTo(dst, x []T) error {
	if err := validateMulVecTo(m.r, m.c, dst, x); err != nil {
		return layoutErrorf(layoutHash, ctxMulVecTo, err)
	}
	m.mulVec(dst, x)

	return nil
}

func (m *HashMatrix[T]) mulVec(dst, x []T) {
	var acc T
	for i, row := range m.data {
		acc = 0
		for _, j := range sortedCols(row) {
			acc += *row[j] * x[j]
		}
		dst[i] = acc
	}
}

// Do visits stored cells in ascending (row, col) order.
func (m *HashMatrix[T]) Do(f func(i, j int, v T) bool) {
	for i, row := range m.data {
		for _, j := range sortedCols(row) {
			if !f(i, j, *row[j]) {
				return
			}
		}
	}
}

// Fprint writes the shape header and every stored cell to w.
func (m *HashMatrix[T]) Fprint(w io.Writer) error { return fprintMatrix[T](w, m) }

// String renders the same dump as Fprint.
func (m *HashMatrix[T]) String() string {
	var b strings.Builder
	_ = m.Fprint(&b)

	return b.String()
}

// Clone returns a deep copy; handles of the clone are independent.
func (m *HashMatrix[T]) Clone() Matrix[T] {
	cp := &HashMatrix[T]{
		shape: m.shape,
		data:  make([]map[int]*T, len(m.data)),
	}
	for i, row := range m.data {
		if row == nil {
			continue
		}
		nr := make(map[int]*T, len(row))
		for j, p := range row {
			v := *p
			nr[j] = &v
		}
		cp.data[i] = nr
	}

	return cp
}

// sortedCols returns the row's column keys in ascending order (nil for a nil row).
func sortedCols[T Number](row map[int]*T) []int {
	if len(row) == 0 {
		return nil
	}

	cols := maps.Keys(row)
	slices.Sort(cols)

	return cols
}
