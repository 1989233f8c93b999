// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the layout tests.
//   • Keep all data finite so the numeric policy never interferes.

package sparse_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"golang.org/x/exp/constraints"
)

// layoutCase names a constructor for table-driven tests over every layout.
type layoutCase struct {
	name string
	make func(opts ...sparse.Option) sparse.Matrix[float64]
}

// layouts lists every shipped layout; new layouts only need a row here.
var layouts = []layoutCase{
	{"MapMatrix", func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewMapMatrix[float64](opts...) }},
	{"HashMatrix", func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewHashMatrix[float64](opts...) }},
	{"CooMatrix", func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewCooMatrix[float64](opts...) }},
}

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ sparse.Matrix[float64] }

// mustSet writes v at (i,j) or fails the test.
func mustSet[T sparse.Number](t testing.TB, m sparse.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// signedNumber admits the element types that can hold the stencil's -2.
type signedNumber interface {
	constraints.Signed | constraints.Float
}

// fillStencil writes the tridiagonal-like pattern of size n (n ≥ 2):
// -2 on the diagonal, 1 on both neighbours; nnz = 3n-2.
func fillStencil[T signedNumber](t testing.TB, m sparse.Matrix[T], n int) {
	t.Helper()
	mustSet(t, m, 0, 0, -2)
	mustSet(t, m, 0, 1, 1)
	mustSet(t, m, n-1, n-2, 1)
	mustSet(t, m, n-1, n-1, -2)
	for i := 1; i < n-1; i++ {
		mustSet(t, m, i, i, -2)
		mustSet(t, m, i, i+1, 1)
		mustSet(t, m, i, i-1, 1)
	}
}

// ramp returns [0, 1, ..., n-1].
func ramp[T sparse.Number](n int) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = T(i)
	}

	return x
}

// fillRandom writes cells at random coordinates inside r×c with values in
// [-1,1); the same seed gives the same write sequence.
func fillRandom(t testing.TB, m sparse.Matrix[float64], r, c, writes int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for k := 0; k < writes; k++ {
		mustSet(t, m, rng.Intn(r), rng.Intn(c), 2*rng.Float64()-1)
	}
}

// failingWriter fails every write after the first n bytes.
type failingWriter struct{ n int }

var errWrite = errors.New("write refused")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	w.n -= len(p)

	return len(p), nil
}
