// Package viz renders a Graph's coarsening hierarchy (core.Graph.Hierarchy)
// as a Graphviz diagram: one cluster per level, each persistent fine node
// pointing up at the coarse node it was carried into (nodes folded away
// during coarsening get no such edge). Where package psdraw draws
// the final 1-D layout, this package shows how the multilevel method got
// there — a debugging aid for tuning coarsening behavior, not part of the
// ordering pipeline itself.
//
// Usage:
//
//	dot := viz.ToDOT(g.Hierarchy())
//	svg, err := viz.RenderSVG(dot)
//
// or, equivalently, viz.RenderHierarchy(g) in one call.
package viz
