package core

import "github.com/katalvlaran/linorder/numeric"

// NodeIndex addresses a node. Zero is the reserved null index; valid
// nodes start at 1.
type NodeIndex uint32

// ArcIndex addresses a directed arc in the adjacency arrays. Zero is the
// reserved null index; valid arcs start at 1.
type ArcIndex uint32

// NullNode and NullArc are the null sentinels for NodeIndex and ArcIndex.
const (
	NullNode NodeIndex = 0
	NullArc  ArcIndex  = 0
)

// node holds the per-node state used by placement and coarsening. Index 0
// is a permanent sentinel entry so that real nodes start at 1.
type node struct {
	pos    numeric.F // current 1-D position; -1 means "not yet placed"
	hlen   numeric.F // half the node's width along the line
	arcEnd ArcIndex  // one-past-the-last outgoing arc of this node
	parent NodeIndex // aggregate in the next coarser level, or NullNode
}

func (n node) placed() bool { return n.pos >= 0 }

func (n node) persistent() bool { return n.parent != NullNode }
