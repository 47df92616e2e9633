package core_test

import (
	"testing"

	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/fixtures"
	"github.com/stretchr/testify/require"
)

func TestNewGraphPreallocatesHalfLengthNodes(t *testing.T) {
	g := core.NewGraph(5)
	require.Equal(t, 5, g.Nodes())
	require.Equal(t, 0, g.Edges())
	for i := 1; i <= 5; i++ {
		require.Equal(t, 0.5, g.HalfLen(core.NodeIndex(i)))
	}
}

func TestInsertArcRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph(3)
	_, ok := g.InsertArc(1, 1, 1, 1)
	require.False(t, ok)
}

func TestInsertArcRejectsNullEndpoints(t *testing.T) {
	g := core.NewGraph(3)
	_, ok := g.InsertArc(core.NullNode, 2, 1, 1)
	require.False(t, ok)
	_, ok = g.InsertArc(1, core.NullNode, 1, 1)
	require.False(t, ok)
}

func TestInsertArcRejectsOutOfRange(t *testing.T) {
	g := core.NewGraph(3)
	_, ok := g.InsertArc(1, 99, 1, 1)
	require.False(t, ok)
}

func TestInsertArcRejectsNonAscendingSource(t *testing.T) {
	g := core.NewGraph(3)
	_, ok := g.InsertArc(2, 3, 1, 1)
	require.True(t, ok)
	_, ok = g.InsertArc(1, 2, 1, 1)
	require.False(t, ok, "source must not regress below the last-used source")
}

func TestInsertArcAllowsRepeatedSource(t *testing.T) {
	g := core.NewGraph(3)
	_, ok := g.InsertArc(1, 2, 1, 1)
	require.True(t, ok)
	_, ok = g.InsertArc(1, 3, 1, 1)
	require.True(t, ok, "a second arc from the same source is not a regression")
}

func TestInsertEdgeIsSymmetric(t *testing.T) {
	g := core.NewGraph(2)
	ok := g.InsertEdge(1, 2, 3.5)
	require.True(t, ok)

	a, found := g.ArcIndexOf(1, 2)
	require.True(t, found)
	require.Equal(t, 3.5, g.ArcWeight(a))

	b, found := g.ArcIndexOf(2, 1)
	require.True(t, found)
	require.Equal(t, 3.5, g.ArcWeight(b))

	_, isDirected := g.Directed()
	require.False(t, isDirected)
}

func TestDirectedDetectsMissingReverse(t *testing.T) {
	g := core.NewGraph(2)
	_, ok := g.InsertArc(1, 2, 1, 1)
	require.True(t, ok)

	a, isDirected := g.Directed()
	require.True(t, isDirected)
	require.NotEqual(t, core.NullArc, a)
}

func TestArcSourceRecoversOriginalNode(t *testing.T) {
	g := fixtures.Path(3) // edges (1,2), (2,3)

	a, ok := g.ArcIndexOf(2, 3)
	require.True(t, ok)
	src, err := g.ArcSource(a)
	require.NoError(t, err)
	require.Equal(t, core.NodeIndex(2), src)
}

func TestReverseArcRoundTrips(t *testing.T) {
	g := fixtures.SingleEdge()

	a, ok := g.ArcIndexOf(1, 2)
	require.True(t, ok)
	rev, err := g.ReverseArc(a)
	require.NoError(t, err)

	j, ok := g.ArcIndexOf(2, 1)
	require.True(t, ok)
	require.Equal(t, j, rev)
}

func TestRemoveEdgeShiftsAdjacencySuffix(t *testing.T) {
	g := fixtures.Triangle()

	require.True(t, g.RemoveEdge(1, 2))
	_, ok := g.ArcIndexOf(1, 2)
	require.False(t, ok)
	_, ok = g.ArcIndexOf(2, 1)
	require.False(t, ok)

	// Surviving arcs remain reachable after the shift.
	_, ok = g.ArcIndexOf(1, 3)
	require.True(t, ok)
	_, ok = g.ArcIndexOf(2, 3)
	require.True(t, ok)
}

func TestNodeNeighborsOrder(t *testing.T) {
	g := core.NewGraph(4)
	_, ok := g.InsertArc(1, 2, 1, 1)
	require.True(t, ok)
	_, ok = g.InsertArc(1, 3, 1, 1)
	require.True(t, ok)
	_, ok = g.InsertArc(1, 4, 1, 1)
	require.True(t, ok)

	require.ElementsMatch(t, []core.NodeIndex{2, 3, 4}, g.NodeNeighbors(1))
}
