// SPDX-License-Identifier: MIT
// Package sparse_test: contract tests run against every layout.
package sparse_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// TestLayouts_EndToEnd4x4 builds the 4×4 stencil cell by cell and multiplies by [0,1,2,3].
func TestLayouts_EndToEnd4x4(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			cells := []struct {
				i, j int
				v    float64
			}{
				{0, 0, -2}, {0, 1, 1}, {3, 2, 1}, {3, 3, -2},
				{1, 1, -2}, {1, 2, 1}, {1, 0, 1},
				{2, 2, -2}, {2, 3, 1}, {2, 1, 1},
			}
			for _, c := range cells {
				mustSet(t, m, c.i, c.j, c.v)
			}
			require.Equal(t, 10, m.NNZ())
			require.Equal(t, 4, m.Rows())
			require.Equal(t, 4, m.Cols())

			y, err := m.MulVec([]float64{0, 1, 2, 3})
			require.NoError(t, err)
			require.Equal(t, []float64{1, 0, 0, -4}, y)
		})
	}
}

// TestLayouts_Stencil checks shape, NNZ and the closed-form product for x[k]=k.
func TestLayouts_Stencil(t *testing.T) {
	for _, lc := range layouts {
		for _, n := range []int{2, 3, 10, 1000} {
			t.Run(fmt.Sprintf("%s/n=%d", lc.name, n), func(t *testing.T) {
				m := lc.make()
				fillStencil(t, m, n)
				require.Equal(t, n, m.Rows())
				require.Equal(t, n, m.Cols())
				require.Equal(t, 3*n-2, m.NNZ())

				y, err := m.MulVec(ramp[float64](n))
				require.NoError(t, err)
				want := make([]float64, n)
				want[0] = 1
				want[n-1] = -float64(n)
				require.True(t, sparse.VecEqual(want, y), "got %v", y)
			})
		}
	}
}

// TestLayouts_DimensionMismatch ensures wrong lengths fail without partial work.
func TestLayouts_DimensionMismatch(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			fillStencil(t, m, 5)

			_, err := m.MulVec(make([]float64, 4))
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			_, err = m.MulVec(make([]float64, 6))
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			_, err = m.MulVec(nil)
			require.ErrorIs(t, err, sparse.ErrNilVector)

			dst := []float64{7, 7, 7, 7, 7}
			err = m.MulVecTo(dst, make([]float64, 3))
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Equal(t, []float64{7, 7, 7, 7, 7}, dst) // untouched

			short := []float64{7, 7}
			err = m.MulVecTo(short, ramp[float64](5))
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Equal(t, []float64{7, 7}, short)
		})
	}
}

// TestLayouts_MulVecToOverwrites ensures dst is overwritten, not accumulated into.
func TestLayouts_MulVecToOverwrites(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			fillStencil(t, m, 4)
			mustSet(t, m, 5, 1, 0) // row 4 stays empty, row 5 holds an explicit zero

			require.Equal(t, 6, m.Rows())
			require.Equal(t, 4, m.Cols())

			dst := []float64{9, 9, 9, 9, 9, 9}
			require.NoError(t, m.MulVecTo(dst, []float64{0, 1, 2, 3}))
			require.Equal(t, []float64{1, 0, 0, -4, 0, 0}, dst)
		})
	}
}

// TestLayouts_ReadPolicy pins lenient reads and strict bounds for every layout.
func TestLayouts_ReadPolicy(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			mustSet(t, m, 2, 4, 1.25)

			v, err := m.At(1, 3)
			require.NoError(t, err)
			require.Zero(t, v)
			require.Equal(t, 1, m.NNZ())

			_, err = m.At(3, 0)
			require.ErrorIs(t, err, sparse.ErrOutOfRange)
			_, err = m.At(0, 5)
			require.ErrorIs(t, err, sparse.ErrOutOfRange)
			require.Equal(t, 1, m.NNZ())

			// rejected writes: no growth, no new cells
			for _, ij := range [][2]int{
				{-1, 0},
				{0, -1},
				{math.MaxInt, 0},
				{0, math.MaxInt},
				{math.MaxInt, math.MaxInt},
			} {
				_, err = m.Ref(ij[0], ij[1])
				require.ErrorIs(t, err, sparse.ErrOutOfRange, "Ref%v", ij)
				require.ErrorIs(t, m.Set(ij[0], ij[1], 1), sparse.ErrOutOfRange, "Set%v", ij)
			}
			require.Equal(t, 1, m.NNZ())
			r, c := m.Shape()
			require.Equal(t, 3, r)
			require.Equal(t, 5, c)

			// the largest accepted index still yields a representable shape
			require.NoError(t, m.Set(0, math.MaxInt-1, 1))
			require.Equal(t, math.MaxInt, m.Cols())
			require.Equal(t, 2, m.NNZ())
		})
	}
}

// TestLayouts_GrowthInvariant checks Rows/Cols track 1 + max index written
// and never shrink, whatever the write order.
func TestLayouts_GrowthInvariant(t *testing.T) {
	writes := [][2]int{{3, 1}, {0, 7}, {5, 2}, {2, 2}, {5, 0}}
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			maxI, maxJ := 0, 0
			for _, w := range writes {
				mustSet(t, m, w[0], w[1], 1)
				maxI, maxJ = max(maxI, w[0]), max(maxJ, w[1])
				require.Equal(t, maxI+1, m.Rows())
				require.Equal(t, maxJ+1, m.Cols())
			}
			mustSet(t, m, 0, 0, 1)
			_, err := m.Ref(1, 1)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, 6, r)
			require.Equal(t, 8, c)
			require.Equal(t, 7, m.NNZ())
		})
	}
}

// TestLayouts_NNZAccounting verifies NNZ counts distinct cells only and that
// overwrites keep the latest value.
func TestLayouts_NNZAccounting(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			mustSet(t, m, 1, 1, 2)
			mustSet(t, m, 1, 1, 3) // overwrite
			mustSet(t, m, 1, 0, 4)
			mustSet(t, m, 0, 1, 5)
			mustSet(t, m, 1, 0, 6) // overwrite
			require.Equal(t, 3, m.NNZ())

			p, err := m.Ref(0, 1) // existing cell
			require.NoError(t, err)
			require.Equal(t, 5.0, *p)
			require.Equal(t, 3, m.NNZ())

			for _, c := range []struct {
				i, j int
				v    float64
			}{{1, 1, 3}, {1, 0, 6}, {0, 1, 5}, {0, 0, 0}} {
				v, err := m.At(c.i, c.j)
				require.NoError(t, err)
				require.Equal(t, c.v, v)
			}
			require.Equal(t, 3, m.NNZ())
		})
	}
}

// TestLayouts_SameBitsAcrossLayouts fills every layout with the same random
// writes and expects identical cells and bit-identical products.
func TestLayouts_SameBitsAcrossLayouts(t *testing.T) {
	const r, c, writes = 60, 45, 900
	ms := make([]sparse.Matrix[float64], len(layouts))
	for k, lc := range layouts {
		ms[k] = lc.make()
		fillRandom(t, ms[k], r, c, writes, 2024)
	}
	x := make([]float64, ms[0].Cols())
	for j := range x {
		x[j] = math.Sin(float64(j)) * 1e3
	}
	ref, err := ms[0].MulVec(x)
	require.NoError(t, err)

	for k := 1; k < len(ms); k++ {
		eq, err := sparse.Equal(ms[0], ms[k])
		require.NoError(t, err)
		require.True(t, eq, layouts[k].name)

		y, err := ms[k].MulVec(x)
		require.NoError(t, err)
		for i := range y {
			require.Equal(t, math.Float64bits(ref[i]), math.Float64bits(y[i]), "%s row %d", layouts[k].name, i)
		}
	}
}

// TestLayouts_FprintIdentical checks every layout renders the same dump.
func TestLayouts_FprintIdentical(t *testing.T) {
	var dumps []string
	for _, lc := range layouts {
		m := lc.make()
		fillStencil(t, m, 3)
		var buf bytes.Buffer
		require.NoError(t, m.Fprint(&buf))
		dumps = append(dumps, buf.String())
	}
	expected := "nrows: 3 | ncols: 3 | nnz: 7\n" +
		"[0; 0] = -2\n[0; 1] = 1\n" +
		"[1; 0] = 1\n[1; 1] = -2\n[1; 2] = 1\n" +
		"[2; 1] = 1\n[2; 2] = -2\n"
	for k, d := range dumps {
		require.Equal(t, expected, d, layouts[k].name)
	}
}

// TestLayouts_FprintWriteError ensures the first write error is returned.
func TestLayouts_FprintWriteError(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			fillStencil(t, m, 3)
			require.ErrorIs(t, m.Fprint(&failingWriter{n: 0}), errWrite)
			require.ErrorIs(t, m.Fprint(&failingWriter{n: 40}), errWrite)
		})
	}
}

// TestLayouts_DoEarlyStop verifies Do stops when the callback returns false.
func TestLayouts_DoEarlyStop(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			fillStencil(t, m, 6)
			seen := 0
			m.Do(func(_, _ int, _ float64) bool {
				seen++
				return seen < 4
			})
			require.Equal(t, 4, seen)
		})
	}
}

// TestLayouts_Clone ensures every layout clones into the same layout.
func TestLayouts_Clone(t *testing.T) {
	for _, lc := range layouts {
		t.Run(lc.name, func(t *testing.T) {
			m := lc.make()
			fillStencil(t, m, 4)
			c := m.Clone()
			require.IsType(t, m, c)
			eq, err := sparse.Equal(m, c)
			require.NoError(t, err)
			require.True(t, eq)

			mustSet(t, c, 0, 0, 100)
			v, err := m.At(0, 0)
			require.NoError(t, err)
			require.Equal(t, -2.0, v)
		})
	}
}

// TestLayouts_IntegerElements runs the stencil with int64 elements.
func TestLayouts_IntegerElements(t *testing.T) {
	ms := []sparse.Matrix[int64]{
		sparse.NewMapMatrix[int64](),
		sparse.NewHashMatrix[int64](),
		sparse.NewCooMatrix[int64](),
	}
	for _, m := range ms {
		fillStencil(t, m, 7)
		y, err := m.MulVec(ramp[int64](7))
		require.NoError(t, err)
		require.Equal(t, []int64{1, 0, 0, 0, 0, 0, -7}, y)
	}
}
