package extract

import (
	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/graph"
)

// Ring is a closed sequence of points, direction not yet normalised.
type Ring []geom.Point

// walkResult collects every ring produced and whether every link was
// consumed cleanly (no dead end before returning to its start).
type walkResult struct {
	rings []Ring
	valid bool
}

// walkAll traces every unused link into a closed ring using the
// nearest-turn rule (spec.md §4.8). Each link is consumed exactly
// once overall; starting a ring always walks its seed link a-to-b,
// but pickNext may subsequently walk a link b-to-a when that is the
// side the current node sits on (see pickNext).
func walkAll(g *graph.Graph) walkResult {
	res := walkResult{valid: true}
	visited := make([]bool, len(g.Links))

	for start := range g.Links {
		if visited[start] {
			continue
		}
		ring, ok := walkFrom(g, start, visited)
		if ring != nil {
			res.rings = append(res.rings, ring)
		}
		if !ok {
			res.valid = false
		}
	}
	return res
}

// walkFrom traces one ring starting by walking linkIdx from a to b,
// then repeatedly choosing the next outgoing link at each node by the
// nearest-turn rule, until the walk returns to its start node.
func walkFrom(g *graph.Graph, linkIdx int, visited []bool) (Ring, bool) {
	l := g.Links[linkIdx]
	visited[linkIdx] = true
	startID, curID := l.A.ID, l.B.ID
	startPoint, curPoint := l.A.Point, l.B.Point

	ring := Ring{startPoint, curPoint}
	inDir := curPoint.Sub(startPoint)
	curLink := linkIdx

	for curID != startID {
		node := &g.Nodes[curID]
		next, reversed, ok := pickNext(g, node, curID, curLink, inDir, visited)
		if !ok {
			return ring, false
		}

		visited[next] = true
		nl := g.Links[next]
		var nextPoint geom.Point
		if reversed {
			nextPoint, curID = nl.A.Point, nl.A.ID
		} else {
			nextPoint, curID = nl.B.Point, nl.B.ID
		}

		ring = append(ring, nextPoint)
		inDir = nextPoint.Sub(curPoint)
		curPoint = nextPoint
		curLink = next
	}

	return ring, true
}

// pickNext chooses the link incident to node with the smallest
// counterclockwise turn from inDir, excluding the link just arrived
// on. A link's A/B endpoints are assigned purely by lexicographic
// point order (internal/overlayfilter's newLink), unrelated to which
// way any given face's boundary runs, so a link reachable only
// through its B-side endpoint is walked in reverse (B to A, reported
// via the reversed flag) exactly as readily as one reached through
// its A-side.
func pickNext(g *graph.Graph, node *graph.Node, nodeIdx uint32, arrivedLink int, inDir geom.Point, visited []bool) (link int, reversed, ok bool) {
	bestTurn := -1
	found := false

	for _, li := range node.Links {
		if li == arrivedLink || visited[li] {
			continue
		}
		l := g.Links[li]

		var out geom.Point
		var rev bool
		switch nodeIdx {
		case l.A.ID:
			out = l.B.Point.Sub(l.A.Point)
			rev = false
		case l.B.ID:
			out = l.A.Point.Sub(l.B.Point)
			rev = true
		default:
			continue
		}

		turn := ccwTurn(inDir, out)
		if !found || turn < bestTurn {
			bestTurn = turn
			link = li
			reversed = rev
			found = true
		}
	}

	return link, reversed, found
}
