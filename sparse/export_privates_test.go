// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for the options snapshot and panic messages.
//
// Purpose:
//   - Expose the resolved Options to sparse_test without widening the API.
//   - Compiled only with the test binary (file name ends in _test.go).

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Capacity       int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, Capacity: o.capacity}
}

// RowCapacity_TestOnly reports the preallocated row-slot capacity of a MapMatrix.
func RowCapacity_TestOnly[T Number](m *MapMatrix[T]) int { return cap(m.data) }

// PanicCapacityInvalid_TestOnly mirrors the WithCapacity panic message.
const PanicCapacityInvalid_TestOnly = panicCapacityInvalid
