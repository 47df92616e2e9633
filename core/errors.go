package core

import "errors"

// ErrCorrupt indicates an arc's source node could not be recovered by
// reverse-traversal — an invariant violation in the adjacency structure,
// not a recoverable input error. Callers encountering this should discard
// the Graph; continued use is undefined.
var ErrCorrupt = errors.New("core: adjacency structure corrupted (arc source not found)")
