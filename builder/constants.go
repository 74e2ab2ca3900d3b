// Package builder defines shared constants used by fixture constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor method names, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodIsolated is the canonical name for the Isolated constructor.
	MethodIsolated = "Isolated"
	// MethodHyperedge is the canonical name for the Hyperedge constructor.
	MethodHyperedge = "Hyperedge"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodRepetitionCode is the canonical name for the RepetitionCode constructor.
	MethodRepetitionCode = "RepetitionCode"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest path; fewer than 2 detectors have no mechanism.
const MinPathNodes = 2

// MinCycleNodes is the smallest ring without repeated pairs.
const MinCycleNodes = 3

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-ring plus its hub.
const MinWheelNodes = 4

// MinGridDim is the smallest row or column count; a 1×1 grid is valid.
const MinGridDim = 1

// MinRepetitionDistance is the smallest code with at least one parity check.
const MinRepetitionDistance = 2

//-----------------------------------------------------------------------------
// Probabilities
//-----------------------------------------------------------------------------

// DefaultProbability is the error probability used when no option overrides it.
const DefaultProbability = 1e-3

// MinProbability is the inclusive lower bound of any probability.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of any probability.
const MaxProbability = 1.0
