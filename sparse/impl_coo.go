// SPDX-License-Identifier: MIT

// Package sparse - CooMatrix: coordinate (triplet) storage.
//
// Purpose:
//   - Keep every stored cell as one (row, col, value) triplet in a single
//     slice sorted by (row, col).
//   - Cheap bulk conversion from any other layout via NewCooFrom, since
//     Do already yields cells in the required order.
//
// Complexity quicksheet:
//   - At/Ref hit: O(log nnz). Ref/Set insert: O(nnz) (tail shift).
//   - MulVec/Do/Fprint: O(nnz). NewCooFrom: O(nnz) plus the source's Do cost.
package sparse

import (
	"cmp"
	"io"
	"slices"
	"strings"
)

const layoutCoo = "CooMatrix"

// triplet is one stored cell.
type triplet[T Number] struct {
	i, j int
	v    T
}

// CooMatrix stores triplets sorted by (i, j) with no duplicates.
type CooMatrix[T Number] struct {
	shape
	data []triplet[T]
}

var _ Matrix[float64] = (*CooMatrix[float64])(nil)

// NewCooMatrix returns an empty CooMatrix (Rows=Cols=NNZ=0).
// Complexity: O(capacity).
func NewCooMatrix[T Number](opts ...Option) *CooMatrix[T] {
	o := gatherOptions(opts...)

	return &CooMatrix[T]{
		shape: shape{validateNaNInf: o.validateNaNInf},
		data:  make([]triplet[T], 0, o.capacity),
	}
}

// NewCooFrom copies every stored cell of src into a new CooMatrix.
// MAIN DESCRIPTION:
//   - Layout conversion preserving shape, NNZ and values exactly.
//
// Implementation:
//   - Stage 1: validate src.
//   - Stage 2: append cells in src.Do order (already ascending by (row, col)).
//   - Stage 3: copy the shape counters.
//
// Behavior highlights:
//   - Values are copied verbatim; the numeric policy of the result only
//     governs later Set calls.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func NewCooFrom[T Number](src Matrix[T], opts ...Option) (*CooMatrix[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, layoutErrorf(layoutCoo, "NewCooFrom", err)
	}
	o := gatherOptions(opts...)
	out := &CooMatrix[T]{
		shape: shape{
			r:              src.Rows(),
			c:              src.Cols(),
			nnz:            src.NNZ(),
			validateNaNInf: o.validateNaNInf,
		},
		data: make([]triplet[T], 0, max(src.NNZ(), o.capacity)),
	}
	src.Do(func(i, j int, v T) bool {
		out.data = append(out.data, triplet[T]{i: i, j: j, v: v})
		return true
	})

	return out, nil
}

// search locates (i, j) in the sorted triplet slice.
func (m *CooMatrix[T]) search(i, j int) (int, bool) {
	return slices.BinarySearchFunc(m.data, [2]int{i, j}, func(t triplet[T], key [2]int) int {
		if c := cmp.Compare(t.i, key[0]); c != 0 {
			return c
		}
		return cmp.Compare(t.j, key[1])
	})
}

// At returns the value at (i, j), zero for absent in-bounds cells.
// Errors: ErrOutOfRange outside the current shape.
func (m *CooMatrix[T]) At(i, j int) (T, error) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, cellErrorf(layoutCoo, ctxAt, i, j, ErrOutOfRange)
	}
	if k, ok := m.search(i, j); ok {
		return m.data[k].v, nil
	}

	return zero, nil
}

// Ref returns a handle to the cell (i, j), inserting it when absent.
// Any later insertion anywhere in the matrix may move the handle.
// Errors: ErrOutOfRange on negative indices.
func (m *CooMatrix[T]) Ref(i, j int) (*T, error) {
	if err := ValidateIndex(i, j); err != nil {
		return nil, cellErrorf(layoutCoo, ctxRef, i, j, err)
	}

	return m.ref(i, j), nil
}

// Set stores v at (i, j); rejected writes leave the matrix untouched.
func (m *CooMatrix[T]) Set(i, j int, v T) error {
	if err := ValidateIndex(i, j); err != nil {
		return cellErrorf(layoutCoo, ctxSet, i, j, err)
	}
	if err := m.admit(float64(v)); err != nil {
		return cellErrorf(layoutCoo, ctxSet, i, j, err)
	}
	*m.ref(i, j) = v

	return nil
}

func (m *CooMatrix[T]) ref(i, j int) *T {
	m.touchRow(i)
	k, ok := m.search(i, j)
	if !ok {
		m.data = slices.Insert(m.data, k, triplet[T]{i: i, j: j})
		m.inserted(j)
	}

	return &m.data[k].v
}

// MulVec returns y = A·x in a fresh vector of length Rows().
// Errors: ErrNilVector, ErrDimensionMismatch.
func (m *CooMatrix[T]) MulVec(x []T) ([]T, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, layoutErrorf(layoutCoo, ctxMulVec, err)
	}
	y := make([]T, m.r)
	m.mulVec(y, x)

	return y, nil
}

// MulVecTo overwrites dst with A·x; dst is untouched on error.
func (m *CooMatrix[T]) MulVecTo(dst, x []T) error {
	if err := validateMulVecTo(m.r, m.c, dst, x); err != nil {
		return layoutErrorf(layoutCoo, ctxMulVecTo, err)
	}
	m.mulVec(dst, x)

	return nil
}

// mulVec zeroes dst first: rows without cells never appear in data.
func (m *CooMatrix[T]) mulVec(dst, x []T) {
	clear(dst)
	for _, t := range m.data {
		dst[t.i] += t.v * x[t.j]
	}
}

// Do visits stored cells in ascending (row, col) order.
func (m *CooMatrix[T]) Do(f func(i, j int, v T) bool) {
	for _, t := range m.data {
		if !f(t.i, t.j, t.v) {
			return
		}
	}
}

// Fprint writes the shape header and every stored cell to w.
func (m *CooMatrix[T]) Fprint(w io.Writer) error { return fprintMatrix[T](w, m) }

// String renders the same dump as Fprint.
func (m *CooMatrix[T]) String() string {
	var b strings.Builder
	_ = m.Fprint(&b)

	return b.String()
}

// Clone returns a deep copy.
func (m *CooMatrix[T]) Clone() Matrix[T] {
	return &CooMatrix[T]{
		shape: m.shape,
		data:  slices.Clone(m.data),
	}
}
