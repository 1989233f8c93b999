// Package builder provides deterministic, functional-options-style fixture
// constructors for sparse matrices and the dense vectors used to exercise them.
// It keeps test and benchmark setup out of the sparse package while routing
// every write through the public sparse.Matrix interface, so the same
// fixture can be poured into any layout.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:             applies Constructors in order to a caller-owned matrix.
//     – Constructor:       a closure that writes cells through sparse.Matrix.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, stencil coefficients, value distribution.
//   - Matrix constructors:
//     – Stencil:           the 1-D second-difference tridiagonal matrix.
//     – Identity:          ones on the diagonal.
//     – RandomSparse:      independent Bernoulli cells with sampled values.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn, ConstantValueFn, UniformValueFn, NormalValueFn.
//   - Vectors:
//     – Iota:              0, 1, ..., n-1.
//     – StencilIotaProduct: the exact product Stencil(n)·Iota(n).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order produce
//     identical cells written in identical order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is friendly).
//   - Documented complexity per constructor.
package builder
