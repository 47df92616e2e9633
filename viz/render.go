package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/linorder/core"
)

// RenderSVG renders a DOT graph to SVG using an in-process Graphviz
// layout engine.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("viz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("viz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("viz: render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderHierarchy builds g's coarsening hierarchy and renders it directly
// to SVG, in one call.
func RenderHierarchy(g *core.Graph) ([]byte, error) {
	return RenderSVG(ToDOT(g.Hierarchy()))
}
