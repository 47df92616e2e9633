// Package fixtures builds small, well-understood graphs for exercising
// the ordering engine in tests: paths, k x k grids, and hypercubes,
// mirroring the topology generators a graph library ships for exactly
// this purpose, adapted here to build a *core.Graph directly rather than
// a general-purpose adjacency structure.
//
// Every constructor here emits arcs in strictly ascending source-node
// order, the only order core.Graph.InsertArc accepts, and inserts both
// directions of every edge so the result always passes core.Graph.Directed
// as undirected.
package fixtures
