package viz

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/linorder/core"
)

// ToDOT renders a coarsening hierarchy, as returned by core.Graph.Hierarchy,
// to Graphviz DOT: one cluster per level (finest first), an edge between
// every pair of adjacent nodes within a level, and a dashed edge from each
// persistent node up to the aggregate it became in the next level.
func ToDOT(levels []*core.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hierarchy {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("  edge [color=gray40];\n\n")

	for lvl, g := range levels {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", lvl)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("level %d (%d nodes)", lvl, g.Nodes()))
		fmt.Fprintf(&buf, "    style=dashed;\n")

		for i := core.NodeIndex(1); int(i) <= g.Nodes(); i++ {
			id := nodeID(lvl, i)
			var importance float64
			for a := g.ArcBegin(i); a < g.ArcEnd(i); a++ {
				importance += g.ArcWeight(a)
			}
			label := fmt.Sprintf("%d\\nh=%.2f w=%.2f", i, g.HalfLen(i), importance)
			fmt.Fprintf(&buf, "    %q [label=%q];\n", id, label)
		}

		for i := core.NodeIndex(1); int(i) <= g.Nodes(); i++ {
			for a := g.ArcBegin(i); a < g.ArcEnd(i); a++ {
				j := g.ArcTarget(a)
				if j <= i {
					continue
				}
				fmt.Fprintf(&buf, "    %q -> %q [dir=none];\n", nodeID(lvl, i), nodeID(lvl, j))
			}
		}
		buf.WriteString("  }\n\n")

		if lvl == 0 {
			continue
		}
		fine := levels[lvl-1]
		for i := core.NodeIndex(1); int(i) <= fine.Nodes(); i++ {
			p := fine.Parent(i)
			if p == core.NullNode {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=red];\n", nodeID(lvl-1, i), nodeID(lvl, p))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(level int, i core.NodeIndex) string {
	return fmt.Sprintf("L%d_N%d", level, i)
}
