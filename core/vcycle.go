package core

import "github.com/katalvlaran/linorder/numeric"

// vcycle performs one descent/ascent: while the graph is still large
// enough relative to its edge count and coarsening depth remains, it
// recurses into a coarser graph and refines back; otherwise it places the
// (coarsest) leaf directly. On the way back up it relaxes and, budget
// permitting, runs window optimization.
//
// windowN is the base window size; work accumulates the edge count
// traversed so far this V-cycle. On the ascent the window grows while an
// (n+1)-window pass over this level's edges still fits the accumulated
// budget, capped at WindowMax.
func (g *Graph) vcycle(windowN, work int) {
	if windowN < g.Nodes() && g.Nodes() < g.Edges() && g.level > 0 && !g.progress.Cancel() {
		coarse := g.coarsen()
		coarse.vcycle(windowN, work+g.Edges())
		g.refine(coarse)
	} else {
		g.Place(true)
	}

	if g.Edges() == 0 {
		return
	}

	g.relax(true, numeric.CRSweeps)
	g.relax(false, numeric.GSSweeps)

	n := windowN
	w := g.Edges()
	for w*(n+1) < work {
		n++
		w *= n
	}
	if n > numeric.WindowMax {
		n = numeric.WindowMax
	}
	if n > 0 {
		g.optimizeWindows(n)
	}
}

// optimizeWindows runs optimize(n) over every contiguous n-node window of
// perm, from left to right, stopping early if cancellation is observed
// between window starts.
func (g *Graph) optimizeWindows(n int) {
	if n > len(g.perm) {
		n = len(g.perm)
	}
	g.progress.BeginPhase(g, "perm")
	for k := 0; k <= len(g.perm)-n; k++ {
		if g.progress.Cancel() {
			break
		}
		g.optimize(k, n)
	}
	g.progress.EndPhase(g, true)
}
