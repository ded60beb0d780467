package graph

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/overlayfilter"
	"github.com/gogpu/xoverlay/internal/xlog"
)

// Graph is the planar subdivision built from one overlay rule's
// surviving links: a node arena plus the link list with each link's
// endpoint ids filled in.
type Graph struct {
	Links []overlayfilter.OverlayLink
	Nodes []Node
}

type end struct {
	linkIndex int
	point     overlayfilter.IdPoint
}

// Build consumes a globally point-sorted links slice (already
// concatenated across columns at their reserved offsets) and produces
// the node arena, stamping each link's A.ID/B.ID in place.
func Build(links []overlayfilter.OverlayLink) *Graph {
	g := &Graph{Links: links}
	if len(links) == 0 {
		return g
	}

	ends := make([]end, len(links))
	for i, l := range links {
		ends[i] = end{linkIndex: i, point: l.B}
	}
	sort.Slice(ends, func(i, j int) bool { return ends[i].point.Point.Less(ends[j].point.Point) })

	ai, bi := 0, 0
	for ai < len(links) || bi < len(ends) {
		var candidate overlayfilter.IdPoint
		haveA := ai < len(links)
		haveB := bi < len(ends)

		switch {
		case haveA && haveB:
			pa := links[ai].A.Point
			pb := ends[bi].point.Point
			if pa.Less(pb) {
				candidate = links[ai].A
			} else {
				candidate = ends[bi].point
			}
		case haveA:
			candidate = links[ai].A
		default:
			candidate = ends[bi].point
		}

		nodeID := uint32(len(g.Nodes))
		var incoming, outgoing []int

		for ai < len(links) && links[ai].A.Point.Equal(candidate.Point) {
			outgoing = append(outgoing, ai)
			links[ai].A.ID = nodeID
			ai++
		}
		for bi < len(ends) && ends[bi].point.Point.Equal(candidate.Point) {
			incoming = append(incoming, ends[bi].linkIndex)
			links[ends[bi].linkIndex].B.ID = nodeID
			bi++
		}

		all := append(outgoing, incoming...)
		kind := Bridge
		if len(all) != 2 {
			kind = Cross
			if len(all) < 2 {
				xlog.Get().Warn("graph node has fewer than 2 incident links",
					"point", candidate.Point, "links", len(all))
			}
		}
		g.Nodes = append(g.Nodes, Node{
			Point:   candidate.Point,
			Kind:    kind,
			Links:   all,
			Visited: make([]bool, len(all)),
		})
	}

	return g
}
