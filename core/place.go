package core

import "sort"

// Place canonicalizes the positions of all nodes, optionally re-sorting
// perm by current position first.
func (g *Graph) Place(doSort bool) {
	g.place(doSort, 0, len(g.perm))
}

// place canonicalizes positions of the n nodes perm[k:k+n], optionally
// stable-sorting that slice by position first. Each node in turn gets
// pos = prev + hlen, then prev advances by 2*hlen: the sweep that turns
// an ordering into the canonical non-overlapping layout with strictly
// increasing positions along perm.
func (g *Graph) place(doSort bool, k, n int) {
	window := g.perm[k : k+n]
	if doSort {
		sort.SliceStable(window, func(a, b int) bool {
			return g.node[window[a]].pos < g.node[window[b]].pos
		})
	}

	var p float64
	if k > 0 {
		prev := g.perm[k-1]
		p = g.node[prev].pos + g.node[prev].hlen
	}
	for _, i := range window {
		p += g.node[i].hlen
		g.node[i].pos = p
		p += g.node[i].hlen
	}
}

// swapRange swaps perm[k] and perm[l] (k <= l) and re-canonicalizes the
// positions of every node in between, so callers can try a candidate
// transposition in place without a full Place pass.
func (g *Graph) swapRange(k, l int) {
	i := g.perm[k]
	p := g.node[i].pos - g.node[i].hlen
	g.perm[k], g.perm[l] = g.perm[l], g.perm[k]
	for {
		i = g.perm[k]
		p += g.node[i].hlen
		g.node[i].pos = p
		p += g.node[i].hlen
		if k == l {
			break
		}
		k++
	}
}
