package numeric

import "math"

// F is the scalar type used for node positions, edge weights, and all
// functional arithmetic. A compile-time switch to float32 is possible by
// editing this alias; nothing else in the engine assumes float64 width.
type F = float64

// FMax is the largest finite value representable by F, used to seed
// running minima before any candidate has been evaluated.
const FMax F = math.MaxFloat64

// FEps is the machine epsilon for F.
var FEps F = math.Nextafter(1, 2) - 1

// PartFrac is the ratio of max to min coarsening bond used to weed out
// insignificant connections when assigning node fractions to aggregates.
const PartFrac F = 4

// WindowMax caps the size of the brute-force permutation window; n! growth
// makes this the engine's practical time floor.
const WindowMax = 16

// CRSweeps and GSSweeps are the default per-level sweep counts for
// compatible and Gauss-Seidel relaxation, respectively.
const (
	CRSweeps = 1
	GSSweeps = 1
)
