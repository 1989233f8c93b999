// SPDX-License-Identifier: MIT

// Package sparse defines the Matrix interface for sparse storage layouts and
// ships three interchangeable implementations.
//
// What & Why:
//
//	A sparse matrix stores only the cells that were explicitly addressed; all
//	other cells are implicitly zero. The Matrix interface separates the
//	capability set (shape queries, element access, matrix-vector product,
//	printing) from the storage layout, so callers fill and multiply without
//	knowing how rows are kept in memory.
//
// Layouts:
//
//	MapMatrix  - one sorted column→value row per row index (the reference layout).
//	HashMatrix - one hash-map row per row index; iteration sorts keys on demand.
//	CooMatrix  - a single (row, col, value) triplet list sorted by (row, col).
//
// Access policy:
//
//	At(i,j)  - read-only. Never inserts. Absent in-bounds cells read as zero;
//	           indices outside the current shape return ErrOutOfRange.
//	Ref(i,j) - write path. Grows the shape, inserts a zero cell when absent,
//	           returns a handle valid until the next structural mutation.
//	Set(i,j,v) - Ref followed by assignment, honoring the numeric policy.
//
// Shape invariants:
//
//	Rows() == 1 + the largest row index ever addressed through Ref/Set.
//	Cols() == 1 + the largest column index ever addressed through Ref/Set.
//	NNZ()  == the number of distinct (i,j) cells ever addressed.
//	None of the three ever shrinks.
//
// Determinism:
//
//	MulVec, Do and Fprint visit stored cells in ascending (row, col) order in
//	every layout, so floating-point sums are bit-identical across layouts.
//
// Concurrency:
//
//	Matrices carry no locks. Concurrent readers are safe once filling is done;
//	any writer requires external synchronization.
//
// Complexity:
//
//	Rows/Cols/NNZ are O(1). MulVec is O(nnz) plus, for HashMatrix, a per-row
//	key sort. See each layout for Ref/At costs.
package sparse
