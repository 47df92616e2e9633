// Package linorder computes a linear ordering of a graph's vertices that
// minimizes a weighted edge-length cost functional — the kind of layout used
// to shrink bandwidth/envelope in sparse solvers, VLSI cell placement, and
// cache-friendly traversal orders.
//
// 🚀 What is linorder?
//
//	A multilevel (V-cycle) heuristic: the graph is coarsened level by level
//	into a chain of smaller graphs, the coarsest level is laid out directly,
//	and the layout is refined back up with local relaxation and small-window
//	brute-force permutation search at every level.
//
// ✨ Under the hood:
//
//	numeric/    — the scalar type and the deterministic LCG shared by the engine
//	pqueue/     — an indexed binary heap (insert/update/extract/erase/find, O(log n))
//	functional/ — the p-mean family (harmonic, geometric, SMR, arithmetic, RMS, max)
//	core/       — the multilevel Graph: construction, coarsening, refinement,
//	              relaxation, the V-cycle scheduler, the window optimizer, and
//	              the outer ordering loop
//	chacoio/    — a reader for the textual Chaco graph format
//	psdraw/     — a PostScript writer for the final 1-D layout
//	viz/        — an SVG renderer for the coarsening hierarchy (debugging aid)
//	fixtures/   — deterministic graph generators used by the test suite
//	cmd/mlorder/— a CLI driver tying the above together
//
// Quick example:
//
//	g := core.NewGraph(4)
//	g.InsertArc(1, 2, 1, 1)
//	g.InsertArc(2, 1, 1, 1)
//	g.InsertArc(2, 3, 1, 1)
//	g.InsertArc(3, 2, 1, 1)
//	g.Order(functional.Arithmetic{}, core.DefaultOptions())
//	rank := g.Rank(1)
//
// Non-goals: hyperedges, directed or negative-weight graphs, streaming or
// out-of-core graphs, parallel execution, persistence of the ordering.
package linorder
