package chacoio

import "errors"

// ErrEmptyFile indicates the input contained no header line.
var ErrEmptyFile = errors.New("chacoio: file is empty")

// ErrBadHeader indicates the first line did not parse as "N M [FMT]".
var ErrBadHeader = errors.New("chacoio: invalid header line")

// ErrBadFormat indicates the header's FMT field was neither 0 nor 1.
var ErrBadFormat = errors.New("chacoio: invalid format specifier")

// ErrMissingNodeLine indicates fewer node blocks were present than the
// header's node count promised.
var ErrMissingNodeLine = errors.New("chacoio: missing data for node")

// ErrBadNeighbor indicates a neighbor token did not parse as an integer,
// or a weight token was missing/unparseable in a weighted graph.
var ErrBadNeighbor = errors.New("chacoio: cannot parse neighbor or weight")

// ErrInsertFailed indicates the parsed arc was rejected by the graph
// (out-of-range endpoint, self-loop, or non-ascending source — the
// reader emits arcs in node order, so this signals a malformed file
// rather than a reader bug).
var ErrInsertFailed = errors.New("chacoio: arc insertion failed")

// ErrDirected indicates the fully-read graph is not undirected: some arc
// lacks its reverse counterpart.
var ErrDirected = errors.New("chacoio: graph is directed")
