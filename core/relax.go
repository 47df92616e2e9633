package core

// relax performs m sweeps over perm, repositioning each node at its
// locally optimal position. When compatible is true, persistent nodes
// (coarsening seeds) are held fixed — compatible relaxation; otherwise
// every node is repositioned — Gauss-Seidel relaxation. Positions are not
// re-sorted mid-sweep; a single Place(true) re-canonicalizes once all m
// sweeps complete.
func (g *Graph) relax(compatible bool, m int) {
	phase := "frelax"
	if compatible {
		phase = "crelax"
	}
	g.progress.BeginPhase(g, phase)
	for ; m > 0; m-- {
		for _, i := range g.perm {
			if g.progress.Cancel() {
				break
			}
			if !compatible || !g.node[i].persistent() {
				g.node[i].pos = g.optimal(i)
			}
		}
	}
	g.Place(true)
	g.progress.EndPhase(g, true)
}
