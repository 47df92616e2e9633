// Package chacoio reads graphs in the Chaco textual format: a header line
// "N M [FMT]" followed by one line per node listing its neighbors (and,
// if FMT=1, a weight after each neighbor). Lines starting with '%' or '#'
// within a node's block are comments and are skipped.
//
// This reader is an external collaborator to the ordering engine: it only
// knows how to populate a *core.Graph via the construction API, never the
// engine's internals.
package chacoio
