package viz_test

import (
	"testing"

	"github.com/katalvlaran/linorder/fixtures"
	"github.com/katalvlaran/linorder/viz"
	"github.com/stretchr/testify/require"
)

func TestRenderHierarchyProducesSVG(t *testing.T) {
	g := fixtures.Grid(4)
	svg, err := viz.RenderHierarchy(g)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
}

func TestRenderSVGRejectsMalformedDOT(t *testing.T) {
	_, err := viz.RenderSVG("not a dot file {{{")
	require.Error(t, err)
}
