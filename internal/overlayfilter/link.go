package overlayfilter

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/segment"
)

// IdPoint is a point paired with the id of the graph node that will
// eventually sit there; id is zero until internal/graph assigns it.
type IdPoint struct {
	ID    uint32
	Point geom.Point
}

// OverlayLink is a directed, oriented edge surviving the overlay
// filter, always stored with a.point < b.point lexicographically
// (spec.md §3).
type OverlayLink struct {
	A, B IdPoint
	Fill segment.Fill
}

func newLink(p0, p1 geom.Point, fill segment.Fill) OverlayLink {
	if p1.Less(p0) {
		p0, p1 = p1, p0
	}
	return OverlayLink{A: IdPoint{Point: p0}, B: IdPoint{Point: p1}, Fill: fill}
}

// NewLink builds a link between p0 and p1 with the package's
// canonical a.point < b.point ordering, for callers (e.g. tests)
// constructing links outside Emit.
func NewLink(p0, p1 geom.Point, fill segment.Fill) OverlayLink {
	return newLink(p0, p1, fill)
}

// Emit builds the OverlayLink list for one column under the given
// rule, sorted by (a.point, b.point). The caller is responsible for
// concatenating per-column results into the global links array at the
// column's pre-reserved offset (spec.md §4.6, §9).
func Emit(col *segment.Column, rule Rule) []OverlayLink {
	links := make([]OverlayLink, 0, len(col.Vert)+len(col.Horz)+len(col.PosD)+len(col.NegD))

	for i, v := range col.Vert {
		if !rule.Include(col.FillVert[i]) {
			continue
		}
		links = append(links, newLink(geom.Pt(v.X, v.Y.Min), geom.Pt(v.X, v.Y.Max), col.FillVert[i]))
	}
	for i, h := range col.Horz {
		if !rule.Include(col.FillHorz[i]) {
			continue
		}
		links = append(links, newLink(geom.Pt(h.X.Min, h.Y), geom.Pt(h.X.Max, h.Y), col.FillHorz[i]))
	}
	for i, d := range col.PosD {
		if !rule.Include(col.FillPosD[i]) {
			continue
		}
		links = append(links, newLink(geom.Pt(d.X.Min, d.MinY), geom.Pt(d.X.Max, d.MaxYPos()), col.FillPosD[i]))
	}
	for i, d := range col.NegD {
		if !rule.Include(col.FillNegD[i]) {
			continue
		}
		links = append(links, newLink(geom.Pt(d.X.Min, d.MinY), geom.Pt(d.X.Max, d.MaxYNeg()), col.FillNegD[i]))
	}

	sort.Slice(links, func(i, j int) bool {
		if !links[i].A.Point.Equal(links[j].A.Point) {
			return links[i].A.Point.Less(links[j].A.Point)
		}
		return links[i].B.Point.Less(links[j].B.Point)
	})
	return links
}
