// Package psdraw renders a Graph's final 1-D layout as an Encapsulated
// PostScript drawing: nodes become filled circles on a horizontal
// baseline, and edges become either a straight connecting line (short
// edges) or an upper/lower semicircular arc (longer edges, alternated to
// keep the drawing legible).
//
// The exact byte-for-byte PostScript output is not part of any external
// contract: only that it opens with a valid EPSF header,
// defines primitives once, and emits one node/edge command per graph
// element.
package psdraw
