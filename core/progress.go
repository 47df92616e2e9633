package core

import "github.com/katalvlaran/linorder/numeric"

// Progress is the set of callbacks the engine invokes at phase and
// iteration boundaries, and the single cancellation checkpoint it polls.
// All methods are optional in spirit: embed NoopProgress to get no-op
// defaults for the ones a caller doesn't care about.
type Progress interface {
	BeginOrder(g *Graph, cost numeric.F)
	EndOrder(g *Graph, cost numeric.F)
	BeginIter(g *Graph, iter, maxIter, window int)
	EndIter(g *Graph, minCost, cost numeric.F)
	BeginPhase(g *Graph, name string)
	EndPhase(g *Graph, show bool)
	// Cancel is polled between outer iterations, between V-cycle levels,
	// during relaxation sweeps, and between window start indices inside
	// window optimization. Work in progress at that granularity completes
	// before the engine backs out, so perm is never left half-mutated.
	Cancel() bool
}

// NoopProgress implements Progress with callbacks that do nothing and a
// Cancel that never fires. Embed it so callers only need to override the
// methods they care about. Order substitutes a NoopProgress{} value when
// the caller supplies no Progress, so engine code never nil-checks its
// progress field.
type NoopProgress struct{}

func (NoopProgress) BeginOrder(*Graph, numeric.F)          {}
func (NoopProgress) EndOrder(*Graph, numeric.F)            {}
func (NoopProgress) BeginIter(*Graph, int, int, int)       {}
func (NoopProgress) EndIter(*Graph, numeric.F, numeric.F)  {}
func (NoopProgress) BeginPhase(*Graph, string)             {}
func (NoopProgress) EndPhase(*Graph, bool)                 {}
func (NoopProgress) Cancel() bool                          { return false }
