// SPDX-License-Identifier: MIT

// Package sparse: the Matrix interface, the element constraint and the shape
// bookkeeping shared by every layout.
package sparse

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint: anything addable, multipliable and with
// a zero value. Complex numbers are excluded (no ordering for the NaN policy).
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry is one stored cell as reported by Entries.
type Entry[T Number] struct {
	Row, Col int
	Value    T
}

// Matrix is the capability set every sparse layout provides.
//
// Complexity notes: Rows/Cols/NNZ are O(1); MulVec is O(nnz) for the shipped
// layouts. Ref/Set/At costs are layout-specific.
type Matrix[T Number] interface {
	// Rows returns 1 + the largest row index ever addressed (0 when empty).
	Rows() int

	// Cols returns 1 + the largest column index ever addressed (0 when empty).
	Cols() int

	// NNZ returns the number of explicitly stored cells.
	NNZ() int

	// Shape returns Rows() and Cols() in one call.
	Shape() (rows, cols int)

	// At returns the stored value at (i, j), or zero when the cell is absent.
	// Returns ErrOutOfRange if i<0, j<0, i>=Rows() or j>=Cols().
	// Never mutates the matrix.
	At(i, j int) (T, error)

	// Ref returns a handle to the cell (i, j), inserting a zero cell and
	// growing the shape when needed. The handle is valid only until the next
	// structural mutation. Returns ErrOutOfRange on negative indices.
	Ref(i, j int) (*T, error)

	// Set stores v at (i, j) through the same path as Ref.
	// Returns ErrOutOfRange on negative indices and ErrNaNInf when the numeric
	// policy rejects v; in both cases the matrix is left untouched.
	Set(i, j int, v T) error

	// MulVec returns a freshly allocated y = A·x of length Rows().
	// Returns ErrNilVector or ErrDimensionMismatch (len(x) != Cols()).
	MulVec(x []T) ([]T, error)

	// MulVecTo overwrites dst with A·x. dst must have length Rows() and must
	// not alias x.
	MulVecTo(dst, x []T) error

	// Do visits stored cells in ascending (row, col) order and stops early
	// when f returns false.
	Do(f func(i, j int, v T) bool)

	// Fprint writes the shape header followed by one "[i; j] = v" line per
	// stored cell in ascending (row, col) order.
	Fprint(w io.Writer) error

	// Clone returns an independent deep copy with the same layout and policy.
	Clone() Matrix[T]
}

// ---------- Formatting literals ----------
const (
	_fmtHeader = "nrows: %d | ncols: %d | nnz: %d\n"
	_fmtEntry  = "[%d; %d] = %v\n"
)

// ---------- error context tags ----------
const (
	ctxAt       = "At"
	ctxRef      = "Ref"
	ctxSet      = "Set"
	ctxMulVec   = "MulVec"
	ctxMulVecTo = "MulVecTo"
)

// cellErrorf wraps err with a layout method and the offending coordinates.
// Complexity: O(1).
func cellErrorf(layout, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", layout, method, row, col, err)
}

// layoutErrorf wraps err with a layout method that has no coordinates.
func layoutErrorf(layout, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", layout, method, err)
}

// shape holds the counters shared by every layout. Rows/Cols/NNZ are promoted
// to the embedding type.
type shape struct {
	r, c           int  // 1 + max row / column index ever addressed
	nnz            int  // number of stored cells
	validateNaNInf bool // numeric guard for Set
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (s *shape) Rows() int { return s.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (s *shape) Cols() int { return s.c }

// NNZ returns the number of stored cells. No side effects.
// Complexity: O(1).
func (s *shape) NNZ() int { return s.nnz }

// Shape returns (Rows(), Cols()).
func (s *shape) Shape() (rows, cols int) { return s.r, s.c }

// touchRow records that row i was addressed.
func (s *shape) touchRow(i int) {
	if i >= s.r {
		s.r = i + 1
	}
}

// inserted records a freshly stored cell in column j.
func (s *shape) inserted(j int) {
	s.nnz++
	if j >= s.c {
		s.c = j + 1
	}
}

// inBounds reports whether (i, j) lies within the current shape.
func (s *shape) inBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < s.r && j < s.c
}

// admit checks a value against the numeric policy.
func (s *shape) admit(v float64) error {
	if s.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// fprintMatrix renders the shared text dump for any layout.
// Stops at the first write error and returns it.
// Complexity: O(nnz) plus the layout's Do cost.
func fprintMatrix[T Number](w io.Writer, m Matrix[T]) error {
	if _, err := fmt.Fprintf(w, _fmtHeader, m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return err
	}
	var werr error
	m.Do(func(i, j int, v T) bool {
		_, werr = fmt.Fprintf(w, _fmtEntry, i, j, v)
		return werr == nil
	})

	return werr
}
