package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linorder/builder"
	"github.com/katalvlaran/linorder/core"
	"github.com/stretchr/testify/require"
)

func TestCycleProducesClosedRing(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.Nodes())
	require.Equal(t, 5, g.Edges())
}

func TestCycleRejectsTooFewNodes(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPathProducesNMinusOneEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(6))
	require.NoError(t, err)
	require.Equal(t, 6, g.Nodes())
	require.Equal(t, 5, g.Edges())
}

func TestStarHubHasDegreeNMinusOne(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.Nodes())
	require.Equal(t, 4, g.Edges())
	require.Len(t, g.NodeNeighbors(core.NodeIndex(1)), 4)
}

func TestWheelComposesCycleAndHub(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	require.NoError(t, err)
	require.Equal(t, 6, g.Nodes())
	require.Equal(t, 10, g.Edges()) // 5-cycle (5 edges) + 5 spokes
}

func TestCompleteHasAllPairs(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.Nodes())
	require.Equal(t, 10, g.Edges()) // C(5,2)
}

func TestCompleteBipartiteHasProductEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.CompleteBipartite(3, 4))
	require.NoError(t, err)
	require.Equal(t, 7, g.Nodes())
	require.Equal(t, 12, g.Edges())
}

func TestCompleteBipartiteRejectsEmptyPartition(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.CompleteBipartite(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGridHasOrthogonalAdjacency(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	require.Equal(t, 12, g.Nodes())
	// horizontal: 3*3=9, vertical: 2*4=8
	require.Equal(t, 17, g.Edges())
}

func TestRandomSparseIsDeterministicUnderSameSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestRandomSparseRequiresRngForFractionalProbability(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(10, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparseRejectsOutOfRangeProbability(t *testing.T) {
	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparseDeterministicBoundaryProbabilities(t *testing.T) {
	gAllEdges, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1.0))
	require.NoError(t, err)
	require.Equal(t, 10, gAllEdges.Edges())

	gNoEdges, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0, gNoEdges.Edges())
}

func TestRandomRegularProducesDRegularGraph(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	require.Equal(t, 10, g.Nodes())
	require.Equal(t, 15, g.Edges()) // n*d/2
	for i := 1; i <= 10; i++ {
		require.Len(t, g.NodeNeighbors(core.NodeIndex(i)), 3)
	}
}

func TestRandomRegularRejectsOddProduct(t *testing.T) {
	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomRegularRequiresRng(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomRegular(6, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestPlatonicSolidVertexAndEdgeCounts(t *testing.T) {
	cases := []struct {
		name  builder.PlatonicName
		nodes int
		edges int
	}{
		{builder.Tetrahedron, 4, 6},
		{builder.Cube, 8, 12},
		{builder.Octahedron, 6, 12},
		{builder.Dodecahedron, 20, 30},
		{builder.Icosahedron, 12, 30},
	}
	for _, c := range cases {
		g, err := builder.BuildGraph(nil, builder.PlatonicSolid(c.name, false))
		require.NoError(t, err, c.name.String())
		require.Equal(t, c.nodes, g.Nodes(), c.name.String())
		require.Equal(t, c.edges, g.Edges(), c.name.String())
	}
}

func TestPlatonicSolidWithCenterAddsHub(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Tetrahedron, true))
	require.NoError(t, err)
	require.Equal(t, 5, g.Nodes())
	require.Equal(t, 6+4, g.Edges())
}

func TestHexagramVariantsBuildWithoutDuplicateArcs(t *testing.T) {
	for variant, n := range map[builder.HexagramVariant]int{
		builder.HexDefault: 6,
		builder.HexMedium:  8,
		builder.HexBig:     12,
		builder.HexHuge:    12,
	} {
		g, err := builder.BuildGraph(nil, builder.Hexagram(variant))
		require.NoError(t, err)
		require.Equal(t, n, g.Nodes())
		for i := 1; i <= n; i++ {
			seen := map[core.NodeIndex]bool{}
			for _, j := range g.NodeNeighbors(core.NodeIndex(i)) {
				require.False(t, seen[j])
				seen[j] = true
			}
		}
	}
}

func TestWithWeightFnAppliesCustomWeights(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithConstantWeight(2.5)},
		builder.Path(3),
	)
	require.NoError(t, err)
	a, ok := g.ArcIndexOf(core.NodeIndex(1), core.NodeIndex(2))
	require.True(t, ok)
	require.Equal(t, 2.5, g.ArcWeight(a))
}

func TestWithRandPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithWeightFnPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestBuildGraphRejectsNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestUniformWeightFnRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fn := builder.UniformWeightFn(2, 4)
	for i := 0; i < 100; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, 2.0)
		require.Less(t, w, 4.0)
	}
}

func TestComposedConstructorsShareOneGraphSpec(t *testing.T) {
	// Two independent topologies laid side by side in one graph.
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.Nodes())
	require.Equal(t, 3+2, g.Edges())
}
