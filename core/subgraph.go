package core

import "github.com/katalvlaran/linorder/functional"

// subnode is one node of a window under consideration: the hypothetical
// position it would occupy at a given sub-permutation slot, and the
// external cost (contribution of its arcs leaving the window) at that
// position.
type subnode struct {
	pos  float64
	cost functional.WeightedSum
}

// subgraph holds the precomputed state for brute-force optimizing one
// n-node window of perm: the external-cost cache for every (node,
// candidate slot) pair, and the internal adjacency restricted to arcs
// between two window members. It is rebuilt once per window start index
// k, since the member set and the external neighborhood both change as
// the window slides.
type subgraph struct {
	g *Graph
	n int

	nodes  []NodeIndex // window members, perm[k:k+n], in original order
	cache  [][]subnode // cache[u][s]: node u at candidate slot s
	weight [][]float64 // internal weight[u][v], 0 if no internal arc

	best []int // best permutation found so far, as indices into nodes
	min  functional.WeightedSum
	have bool
}

// newSubgraph precomputes the external-cost cache and internal weight
// matrix for the window perm[k:k+n].
func newSubgraph(g *Graph, k, n int) *subgraph {
	s := &subgraph{g: g, n: n}
	s.nodes = append(s.nodes, g.perm[k:k+n]...)

	// hlen of each window member, in window order, lets us reconstruct the
	// candidate position of node at slot `slot` without mutating Graph
	// state: it is windowLeft + sum of 2*hlen of all window members placed
	// before it, plus its own hlen.
	windowLeft := g.node[s.nodes[0]].pos - g.node[s.nodes[0]].hlen

	s.weight = make([][]float64, n)
	for i := range s.weight {
		s.weight[i] = make([]float64, n)
	}
	indexOf := make(map[NodeIndex]int, n)
	for idx, u := range s.nodes {
		indexOf[u] = idx
	}

	s.cache = make([][]subnode, n)
	for u, node := range s.nodes {
		s.cache[u] = make([]subnode, n)

		var external []ArcIndex
		for a := g.nodeBegin(node); a < g.nodeEnd(node); a++ {
			if v, inside := indexOf[g.adj[a]]; inside {
				s.weight[u][v] = g.weight[a]
			} else {
				external = append(external, a)
			}
		}

		for slot := 0; slot < n; slot++ {
			p := windowLeft
			for t := 0; t < slot; t++ {
				p += 2 * g.node[s.nodes[t]].hlen
			}
			p += g.node[node].hlen
			s.cache[u][slot] = subnode{pos: p, cost: g.costOf(external, p)}
		}
	}
	return s
}

// optimize enumerates every permutation of the window's n nodes, keeping
// the cheapest under g.fn.Less, then applies it to perm[k:k+n].
func (g *Graph) optimize(k, n int) {
	s := newSubgraph(g, k, n)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	used := make([]bool, n)
	s.permute(perm, used, 0)

	if !s.have {
		return
	}

	// Apply the best permutation: best[slot] is the window-local index of
	// the node that should sit at that slot.
	newOrder := make([]NodeIndex, n)
	for slot, u := range s.best {
		newOrder[slot] = s.nodes[u]
	}
	for i, node := range newOrder {
		g.perm[k+i] = node
	}
	g.place(false, k, n)
}

// permute fills assignment slot `slot` with every still-unused window node
// in turn, recursing until a full permutation is assigned, then scores it.
func (s *subgraph) permute(assignment []int, used []bool, slot int) {
	if slot == s.n {
		s.score(assignment)
		return
	}
	for u := 0; u < s.n; u++ {
		if used[u] {
			continue
		}
		used[u] = true
		assignment[slot] = u
		s.permute(assignment, used, slot+1)
		used[u] = false
	}
}

// score evaluates one full window assignment (assignment[slot] = window
// node index placed at slot) and keeps it if it beats the best found so
// far. Ties keep the earlier (and hence, since permute enumerates in
// index order, lexicographically first / original-order-closest)
// candidate.
func (s *subgraph) score(assignment []int) {
	var total functional.WeightedSum
	for slot, u := range assignment {
		total = s.g.fn.Accumulate(total, s.cache[u][slot].cost)
	}
	for slotA, uA := range assignment {
		for slotB, uB := range assignment {
			if slotB <= slotA {
				continue
			}
			w := s.weight[uA][uB]
			if w == 0 {
				continue
			}
			l := s.cache[uA][slotA].pos - s.cache[uB][slotB].pos
			if l < 0 {
				l = -l
			}
			total = s.g.fn.Accumulate(total, s.g.fn.Term(functional.WeightedValue{Value: l, Weight: w}))
		}
	}

	if !s.have || s.g.fn.Less(total, s.min) {
		s.have = true
		s.min = total
		s.best = append(s.best[:0], assignment...)
	}
}
