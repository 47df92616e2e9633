// Package core implements the multilevel linear ordering engine: the Graph
// data structure, its arc and node queries, and the full V-cycle
// coarsening/refinement/relaxation/window-optimization machinery that
// minimizes a functional.Functional cost over a permutation of nodes.
//
// The whole engine lives in one package: the coarsen, refine, relax,
// vcycle, and order phases all operate on the same private Graph state,
// and the small-window permutation optimizer (subgraph.go) reaches into
// Graph's unexported fields directly rather than going through a widened
// public API.
//
// Nodes and arcs are addressed by 1-based indices into parallel slices;
// index 0 is a permanent sentinel meaning "no node" / "no arc". This is a
// deliberate departure from idiomatic zero-based Go slices, carried over
// because the engine's algorithms (coarsen, refine, arc_source recovery)
// are stated everywhere in terms of the null-at-zero convention, and
// translating the index base without translating the algorithms invites
// off-by-one bugs.
package core
