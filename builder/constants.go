// Package builder defines shared constants used by matrix constructors,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodStencil is the canonical name for the Stencil constructor.
	MethodStencil = "Stencil"
	// MethodIdentity is the canonical name for the Identity constructor.
	MethodIdentity = "Identity"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinStencilSize is the smallest size for the second-difference stencil.
// The first and last rows each reference a neighbour, so n=1 has no valid layout.
// Complexity impact: Stencil writes 3n-2 cells; n >= MinStencilSize.
const MinStencilSize = 2

// MinIdentitySize is the smallest size for Identity.
const MinIdentitySize = 1

// MinRandomDim is the smallest allowed dimension (rows or cols) for RandomSparse.
const MinRandomDim = 1

//-----------------------------------------------------------------------------
// Stencil Coefficients and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultDiagonal is the stencil's main-diagonal coefficient.
const DefaultDiagonal = -2.0

// DefaultOffDiagonal is the stencil's sub- and super-diagonal coefficient.
const DefaultOffDiagonal = 1.0

// MinProbability is the lower bound for the probability parameter p in
// RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p in
// RandomSparse, inclusive.
const MaxProbability = 1.0
