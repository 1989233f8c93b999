// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for layout constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	// Integer element types are never affected.
	DefaultValidateNaNInf = true

	// DefaultCapacity is the preallocation hint used when none is given.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "sparse: WithCapacity: capacity must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	capacity       int  // DefaultCapacity; >= 0
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set rejects NaN and ±Inf with ErrNaNInf before touching the
// matrix.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Values written through Ref handles are never validated regardless of policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithCapacity sets a preallocation hint: row slots for MapMatrix and
// HashMatrix, triplets for CooMatrix. The hint never changes Rows/Cols/NNZ.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Complexity:
//   - Time O(1); the allocation happens in the constructor.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; nil setters are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		capacity:       DefaultCapacity,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
