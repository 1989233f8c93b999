// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`: "<Method>: <detail>: <sentinel>".
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when several validations fail):
//   • ErrTooFewRows         - size/domain checks first (n, rows, cols).
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource     - then RNG presence for stochastic builders.
//   • sparse sentinels      - surfaced from the matrix during writes.

package builder

import "errors"

// ErrTooFewRows indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
// Typical origins: Stencil(n<2), Identity(n<1), RandomSparse(rows<1 or cols<1).
// Usage: if errors.Is(err, ErrTooFewRows) { /* report invalid size */ }.
var ErrTooFewRows = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (or is NaN).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the orchestrator could not run a
// constructor at all (e.g., a nil Constructor was passed to Build).
var ErrConstructFailed = errors.New("builder: construction failed")
