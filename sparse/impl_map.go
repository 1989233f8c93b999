// SPDX-License-Identifier: MIT

// Package sparse - MapMatrix: row-indexed associative storage.
//
// Purpose:
//   - Keep one ordered column→value mapping per row, indexed by row number.
//   - Grow lazily: a row exists from the first time its index is addressed.
//   - Multiply in O(nnz) visiting each row's cells in ascending column order.
//
// Layout:
//   - data[i] holds two parallel slices (cols ascending, vals) for row i.
//   - Lookup is a binary search on cols; insertion shifts the row tail.
//
// Complexity quicksheet:
//   - Ref/Set: O(log k) hit, O(k) insert (k = cells in the row), amortized
//     O(1) row growth. At: O(log k). MulVec/Do/Fprint: O(nnz). Clone: O(nnz).
package sparse

import (
	"io"
	"slices"
	"strings"
)

const layoutMap = "MapMatrix"

// mapRow is one ordered row: cols is strictly ascending and len(cols)==len(vals).
type mapRow[T Number] struct {
	cols []int
	vals []T
}

// MapMatrix is the reference sparse layout: a sequence of ordered rows.
//   - len(data) == Rows() at every observable point.
//   - NNZ() == Σ len(data[i].cols).
type MapMatrix[T Number] struct {
	shape
	data []mapRow[T]
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix[float64] = (*MapMatrix[float64])(nil)
	_ Matrix[int]     = (*MapMatrix[int])(nil)
)

// NewMapMatrix returns an empty MapMatrix (Rows=Cols=NNZ=0).
// MAIN DESCRIPTION:
//   - Public constructor; the matrix grows through Ref/Set only.
//
// Implementation:
//   - Stage 1: resolve options (numeric policy, capacity hint).
//   - Stage 2: preallocate row slots when a capacity hint is given.
//
// Complexity:
//   - Time O(capacity), Space O(capacity).
//
// AI-Hints:
//   - Pass WithCapacity(n) when the final row count is known to avoid
//     repeated growth of the row slice.
func NewMapMatrix[T Number](opts ...Option) *MapMatrix[T] {
	o := gatherOptions(opts...)

	return &MapMatrix[T]{
		shape: shape{validateNaNInf: o.validateNaNInf},
		data:  make([]mapRow[T], 0, o.capacity),
	}
}

// At returns the value at (i, j) without mutating the matrix.
// MAIN DESCRIPTION:
//   - Safe, lenient read: absent cells inside the shape read as zero.
//
// Implementation:
//   - Stage 1: bounds check against the current shape.
//   - Stage 2: binary search the row's column list.
//
// Errors:
//   - ErrOutOfRange when i<0, j<0, i>=Rows() or j>=Cols().
//
// Complexity:
//   - Time O(log k), Space O(1).
func (m *MapMatrix[T]) At(i, j int) (T, error) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, cellErrorf(layoutMap, ctxAt, i, j, ErrOutOfRange)
	}
	row := &m.data[i]
	if k, ok := slices.BinarySearch(row.cols, j); ok {
		return row.vals[k], nil
	}

	return zero, nil
}

// Ref returns a handle to the cell (i, j), inserting it when absent.
// MAIN DESCRIPTION:
//   - The write path: the only way cells, NNZ or the shape can change.
//
// Implementation:
//   - Stage 1: reject negative indices.
//   - Stage 2: extend data with empty rows up to and including i.
//   - Stage 3: binary search j; on miss insert a zero cell, bump NNZ, widen Cols.
//
// Behavior highlights:
//   - The handle points into the row's value slice; any later insertion in
//     the same row may move it. Do not retain it across calls.
//
// Errors:
//   - ErrOutOfRange on negative indices (matrix untouched).
//
// Complexity:
//   - Time O(log k) on hit, O(k) on insert, Space O(1) amortized.
func (m *MapMatrix[T]) Ref(i, j int) (*T, error) {
	if err := ValidateIndex(i, j); err != nil {
		return nil, cellErrorf(layoutMap, ctxRef, i, j, err)
	}

	return m.ref(i, j), nil
}

// Set stores v at (i, j).
// Validation happens before any growth, so a rejected write leaves the
// matrix exactly as it was.
//
// Errors:
//   - ErrOutOfRange on negative indices; ErrNaNInf under the numeric policy.
func (m *MapMatrix[T]) Set(i, j int, v T) error {
	if err := ValidateIndex(i, j); err != nil {
		return cellErrorf(layoutMap, ctxSet, i, j, err)
	}
	if err := m.admit(float64(v)); err != nil {
		return cellErrorf(layoutMap, ctxSet, i, j, err)
	}
	*m.ref(i, j) = v

	return nil
}

// ref is the unchecked write path shared by Ref and Set.
func (m *MapMatrix[T]) ref(i, j int) *T {
	if i >= len(m.data) {
		m.data = append(m.data, make([]mapRow[T], i+1-len(m.data))...)
		m.touchRow(i)
	}
	row := &m.data[i]
	k, ok := slices.BinarySearch(row.cols, j)
	if !ok {
		var zero T
		row.cols = slices.Insert(row.cols, k, j)
		row.vals = slices.Insert(row.vals, k, zero)
		m.inserted(j)
	}

	return &row.vals[k]
}

// MulVec returns y = A·x in a fresh vector of length Rows().
// MAIN DESCRIPTION:
//   - O(nnz) product; rows and cells are visited in ascending order.
//
// Implementation:
//   - Stage 1: validate x (non-nil, len == Cols()).
//   - Stage 2: allocate y and delegate to the shared kernel.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch. Nothing is allocated on error.
//
// Complexity:
//   - Time O(nnz + Rows()), Space O(Rows()).
func (m *MapMatrix[T]) MulVec(x []T) ([]T, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, layoutErrorf(layoutMap, ctxMulVec, err)
	}
	y := make([]T, m.r)
	m.mulVec(y, x)

	return y, nil
}

// MulVecTo overwrites dst with A·x.
// dst is left untouched when validation fails.
func (m *MapMatrix[T]) MulVecTo(dst, x []T) error {
	if err := validateMulVecTo(m.r, m.c, dst, x); err != nil {
		return layoutErrorf(layoutMap, ctxMulVecTo, err)
	}
	m.mulVec(dst, x)

	return nil
}

// mulVec assumes validated shapes. Each dst[i] is accumulated from zero.
func (m *MapMatrix[T]) mulVec(dst, x []T) {
	var acc T
	for i := range m.data {
		row := &m.data[i]
		acc = 0
		for k, j := range row.cols {
			acc += row.vals[k] * x[j]
		}
		dst[i] = acc
	}
}

// Do visits stored cells in ascending (row, col) order.
// Complexity: O(nnz).
func (m *MapMatrix[T]) Do(f func(i, j int, v T) bool) {
	for i := range m.data {
		row := &m.data[i]
		for k, j := range row.cols {
			if !f(i, j, row.vals[k]) {
				return
			}
		}
	}
}

// Fprint writes the shape header and every stored cell to w.
func (m *MapMatrix[T]) Fprint(w io.Writer) error { return fprintMatrix[T](w, m) }

// String renders the same dump as Fprint. Not for hot paths.
func (m *MapMatrix[T]) String() string {
	var b strings.Builder
	_ = m.Fprint(&b) // strings.Builder never fails

	return b.String()
}

// Clone returns a deep copy (fresh rows, same numeric policy).
// Complexity: O(nnz + Rows()).
func (m *MapMatrix[T]) Clone() Matrix[T] {
	cp := &MapMatrix[T]{
		shape: m.shape,
		data:  make([]mapRow[T], len(m.data)),
	}
	for i := range m.data {
		cp.data[i] = mapRow[T]{
			cols: slices.Clone(m.data[i].cols),
			vals: slices.Clone(m.data[i].vals),
		}
	}

	return cp
}

// RowNNZ returns the number of stored cells in row i (0 for rows outside the shape).
// Complexity: O(1).
func (m *MapMatrix[T]) RowNNZ(i int) int {
	if i < 0 || i >= len(m.data) {
		return 0
	}

	return len(m.data[i].cols)
}
