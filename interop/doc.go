// SPDX-License-Identifier: MIT

// Package interop bridges sparse matrices and gonum's dense linear algebra.
//
// What:
//   - View adapts any sparse.Matrix[T] to gonum's mat.Matrix (read-only, float64).
//   - ToDense and FromDense convert between sparse layouts and *mat.Dense.
//   - MulVecReference computes A·x with gonum's dense kernel, for
//     cross-checking sparse products.
//
// Why:
//   - Dense conversions are the natural oracle in tests and the usual hand-off
//     to solvers that sparse layouts do not implement.
//
// Contracts:
//   - Values are converted to float64 on the way out and truncated back to T
//     on the way in (for integer T).
//   - View.At follows gonum conventions: out-of-range indices panic with
//     mat.ErrIndexOutOfRange. Every other entry point returns errors.
//   - Zero-sized matrices cannot be represented by *mat.Dense; conversions
//     return ErrEmpty.
//
// Complexity:
//   - ToDense O(r·c + nnz); FromDense O(r·c); MulVecReference O(r·c).
package interop
