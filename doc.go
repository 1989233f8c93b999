// Package sparsemat is a small toolkit for sparse matrices: interchangeable
// storage layouts behind one generic interface, deterministic fixtures to
// fill them, and a bridge to gonum for dense cross-checks.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• One interface: sparse.Matrix[T] over any integer or float element type
//		• Three layouts: MapMatrix (ordered rows), HashMatrix (hashed rows),
//		  CooMatrix (sorted triplets)
//		• Safe reads: At never grows the matrix, Ref/Set are the only write path
//		• O(nnz) matrix-vector products, bit-identical across layouts
//		• Fixtures: stencil, identity and seeded random patterns
//		• gonum interop: mat.Matrix views, dense conversions, reference products
//
// Everything is organized under three packages and one command:
//
//	sparse/          - the Matrix interface, layouts, options, validators, facades
//	builder/         - deterministic Constructors and input vectors
//	interop/         - gonum.org/v1/gonum/mat adapters
//	cmd/sparsebench/ - fill/multiply timing harness
//
// Quick example (the 4×4 stencil times 0,1,2,3):
//
//	m, _ := builder.NewStencil[float64](4)
//	y, _ := m.MulVec(builder.Iota[float64](4)) // [1 0 0 -4]
//	_ = m.Fprint(os.Stdout)
//
//	nrows: 4 | ncols: 4 | nnz: 10
//	[0; 0] = -2
//	[0; 1] = 1
//	...
//
//	go run github.com/katalvlaran/sparsemat/cmd/sparsebench -n 8 --verify
package sparsemat
