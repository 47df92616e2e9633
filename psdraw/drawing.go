package psdraw

import (
	"io"
	"sort"

	"github.com/katalvlaran/linorder/core"
)

const arcLengthThreshold = 0.5

// anchor marks which side of the baseline an arc's semicircle (if any)
// should be drawn on, chosen so that the busier side of each endpoint's
// existing arcs is balanced.
type anchor int

const (
	anchorNone anchor = iota
	anchorTop
	anchorBottom
)

// Draw renders g's current layout to w as a complete PostScript document.
func Draw(w io.Writer, g *core.Graph, wx, wy float64) error {
	writer := NewWriter(w, g.Nodes(), wx, wy)
	writer.Begin()

	type arcRef struct {
		a      core.ArcIndex
		length float64
	}
	var arcs []arcRef
	for i := core.NodeIndex(1); int(i) <= g.Nodes(); i++ {
		for a := g.ArcBegin(i); a < g.ArcEnd(i); a++ {
			j := g.ArcTarget(a)
			if g.Pos(i) < g.Pos(j) {
				arcs = append(arcs, arcRef{a: a, length: g.Length(i, j)})
			}
		}
	}
	sort.Slice(arcs, func(x, y int) bool { return arcs[x].length < arcs[y].length })

	anchors := make(map[core.ArcIndex]anchor, 2*len(arcs))
	for _, ref := range arcs {
		if ref.length < arcLengthThreshold {
			continue
		}
		rev, err := g.ReverseArc(ref.a)
		if err != nil {
			continue
		}
		top, bottom := countSides(g, ref.a, anchors)
		if top <= bottom {
			anchors[ref.a] = anchorTop
			anchors[rev] = anchorTop
		} else {
			anchors[ref.a] = anchorBottom
			anchors[rev] = anchorBottom
		}
	}

	for k := len(arcs) - 1; k >= 0; k-- {
		a := arcs[k].a
		i, err := g.ArcSource(a)
		if err != nil {
			continue
		}
		j := g.ArcTarget(a)
		switch anchors[a] {
		case anchorTop:
			writer.EdgeArc(g.Pos(i), g.Pos(j), weightOf(g, a), true)
		case anchorBottom:
			writer.EdgeArc(g.Pos(i), g.Pos(j), weightOf(g, a), false)
		default:
			writer.Edge(g.Pos(i), g.Pos(j), weightOf(g, a))
		}
	}

	for i := core.NodeIndex(1); int(i) <= g.Nodes(); i++ {
		gray := 0.75
		if g.Persistent(i) {
			gray = 0.25
		}
		writer.Node(g.Pos(i), 0.5*g.HalfLen(i), gray)
	}

	writer.End()
	return writer.Close()
}

// countSides tallies how many already-anchored arcs at a's endpoints sit
// on the top versus bottom, to balance the next assignment.
func countSides(g *core.Graph, a core.ArcIndex, anchors map[core.ArcIndex]anchor) (top, bottom int) {
	i, err := g.ArcSource(a)
	if err != nil {
		return 0, 0
	}
	j := g.ArcTarget(a)
	for c := g.ArcBegin(i); c < g.ArcEnd(i); c++ {
		switch anchors[c] {
		case anchorTop:
			top++
		case anchorBottom:
			bottom++
		}
	}
	for c := g.ArcBegin(j); c < g.ArcEnd(j); c++ {
		switch anchors[c] {
		case anchorTop:
			top++
		case anchorBottom:
			bottom++
		}
	}
	return top, bottom
}

func weightOf(g *core.Graph, a core.ArcIndex) float64 {
	return g.ArcWeight(a)
}
