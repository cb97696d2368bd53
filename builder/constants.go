// Package builder defines shared constants used by point-set constructors,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCircle is the canonical name for the Circle constructor.
	MethodCircle = "Circle"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodCoincident is the canonical name for the Coincident constructor.
	MethodCoincident = "Coincident"
)

//-----------------------------------------------------------------------------
// Minimum Counts
//-----------------------------------------------------------------------------

// MinCirclePoints is the smallest meaningful circle: one point.
const MinCirclePoints = 1

// MinGridDim is the smallest allowed number of rows or columns.
const MinGridDim = 1

// MinUniformPoints allows an empty scatter (n == 0).
const MinUniformPoints = 0

// MinCoincidentPoints allows an empty set (n == 0).
const MinCoincidentPoints = 0
