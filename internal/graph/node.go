// Package graph links sorted overlay segment endpoints into a planar
// graph of nodes (spec.md §4.7): a two-pointer sweep over the
// lexicographically-sorted link and end arrays groups every link
// incident to the same point into one node, tagged Bridge (exactly two
// incident links) or Cross (three or more).
//
// Grounded on original_source/xOverlay/src/graph/ (arena-of-indices
// node representation, no pointer cycles) and spec.md §4.7's two-
// pointer sweep description.
package graph

import "github.com/gogpu/xoverlay/internal/geom"

// NodeKind tags whether a node sits on exactly two links (a pass-
// through point on a single contour) or three or more (a true
// branching point in the planar subdivision).
type NodeKind uint8

const (
	Bridge NodeKind = iota
	Cross
)

// Node is one point of the planar graph, referencing its incident
// links by index into the owning Graph's Links slice.
type Node struct {
	Point   geom.Point
	Kind    NodeKind
	Links   []int
	Visited []bool // per incident link slot, in the same order as Links
}

// MarkVisited flags the incident link at the given slot as used, and
// reports whether every incident link at this node has now been used.
func (n *Node) MarkVisited(slot int) (allUsed bool) {
	n.Visited[slot] = true
	for _, v := range n.Visited {
		if !v {
			return false
		}
	}
	return true
}

// SlotOf returns the incident-link slot index for the given global
// link index, or -1 if not incident to this node.
func (n *Node) SlotOf(linkIndex int) int {
	for i, l := range n.Links {
		if l == linkIndex {
			return i
		}
	}
	return -1
}
