package viz_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/fixtures"
	"github.com/katalvlaran/linorder/viz"
	"github.com/stretchr/testify/require"
)

func TestToDOTProducesOneClusterPerLevel(t *testing.T) {
	g := fixtures.Grid(4)
	levels := g.Hierarchy()
	require.Greater(t, len(levels), 1, "a 16-node grid should coarsen at least once")

	dot := viz.ToDOT(levels)
	require.True(t, strings.HasPrefix(dot, "digraph hierarchy {"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	for lvl := range levels {
		require.Contains(t, dot, "subgraph cluster_"+strconv.Itoa(lvl))
	}
	require.Contains(t, dot, "style=dashed, color=red")
}

func TestToDOTSingleLevelHasNoParentEdges(t *testing.T) {
	g := core.NewGraph(3)
	g.InsertEdge(1, 2, 1)
	dot := viz.ToDOT([]*core.Graph{g})
	require.NotContains(t, dot, "color=red")
}
