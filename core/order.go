package core

import "github.com/katalvlaran/linorder/functional"

// Options configures a call to Order. Fields are used as given: start
// from DefaultOptions for the usual values, since the zero Options runs
// no V-cycles at all. A zero Seed skips the initial shuffle, ordering the
// graph from its current permutation instead of a randomized one; a zero
// Period never grows the window. A nil Progress is replaced by
// NoopProgress{}.
type Options struct {
	Iterations int
	Window     int
	Period     int
	Seed       uint32
	Progress   Progress
}

// DefaultOptions returns the conventional starting parameters: one
// V-cycle, a window of 2, a period of 2.
func DefaultOptions() Options {
	return Options{Iterations: 1, Window: 2, Period: 2}
}

// Order runs the multilevel outer loop: it places the graph,
// optionally shuffles it with a seeded, reproducible permutation, then
// repeatedly reweights bonds and runs a V-cycle, keeping the
// lowest-cost permutation seen across iterations. The permutation and
// cost retained on return are always the best found, even if the last
// iteration regressed or was cancelled partway through.
func (g *Graph) Order(fn functional.Functional, opts Options) {
	g.fn = fn
	if opts.Progress != nil {
		g.progress = opts.Progress
	} else {
		g.progress = NoopProgress{}
	}

	for g.level = 0; (1 << g.level) < g.Nodes(); g.level++ {
	}
	g.Place(false)

	minCost := g.Cost()
	minPerm := append([]NodeIndex(nil), g.perm...)

	if opts.Seed != 0 {
		g.shuffle(opts.Seed)
	}

	g.progress.BeginOrder(g, minCost)
	if g.Edges() > 0 {
		window := opts.Window
		for k := 1; k <= opts.Iterations && !g.progress.Cancel(); k++ {
			g.progress.BeginIter(g, k, opts.Iterations, window)
			g.reweight(k)
			g.vcycle(window, 0)
			c := g.Cost()
			if c < minCost {
				minCost = c
				minPerm = append(minPerm[:0], g.perm...)
			}
			g.progress.EndIter(g, minCost, c)
			if opts.Period != 0 && k%opts.Period == 0 {
				window++
			}
		}
		g.perm = minPerm
		g.Place(false)
	}
	g.progress.EndOrder(g, minCost)
}

// reweight recomputes every arc's bond for the k'th V-cycle from its
// weight and current layout length.
func (g *Graph) reweight(k int) {
	g.bond = make([]float64, len(g.weight))
	i := NodeIndex(1)
	for a := ArcIndex(1); a < ArcIndex(len(g.adj)); a++ {
		for g.nodeEnd(i) <= a {
			i++
		}
		g.bond[a] = g.fn.Bond(g.weight[a], g.lengthArc(i, a), k)
	}
}

// shuffle permutes perm using the seeded LCG, then re-canonicalizes
// positions. The generator's state is reset to seed before the first
// draw; it is owned by this Graph, not global, so independent Graphs
// seeded identically produce identical shuffles regardless of each
// other's history.
func (g *Graph) shuffle(seed uint32) {
	g.rng.Seed(seed)
	n := len(g.perm)
	for k := 0; k < n; k++ {
		r := g.rng.Intn(uint32(n - k))
		l := k + int(r)
		g.perm[k], g.perm[l] = g.perm[l], g.perm[k]
	}
	g.Place(false)
}

// Permutation returns the current rank-to-node mapping: index r holds the
// node at rank r.
func (g *Graph) Permutation() []NodeIndex {
	return append([]NodeIndex(nil), g.perm...)
}

// PermutationAt returns the node occupying rank r.
func (g *Graph) PermutationAt(r int) NodeIndex {
	return g.perm[r]
}

// Rank returns node i's position in [0, N).
func (g *Graph) Rank(i NodeIndex) int {
	return int(g.node[i].pos)
}

