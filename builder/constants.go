// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Canonical constructor names, used to prefix errors with method context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodHexagram          = "Hexagram"
	MethodPlatonicSolid     = "PlatonicSolid"
)

// Minimum node counts each topology requires to be well-formed.
const (
	MinCycleNodes = 3 // a ring needs at least a triangle
	MinPathNodes  = 2
	MinStarNodes  = 2 // one hub, at least one leaf
	MinWheelNodes = 4 // outer cycle C_{n-1} needs n-1 >= 3
	MinGridDim    = 1
	MinPartition  = 1 // each side of a complete bipartite graph
)

// DefaultEdgeWeight is the weight assigned to every edge when no WeightFn is
// supplied via WithWeightFn.
const DefaultEdgeWeight float64 = 1

// MinProbability and MaxProbability bound the probability parameter of
// RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular's retries before it gives up
// and returns ErrConstructFailed.
const maxStubMatchingAttempts = 8
