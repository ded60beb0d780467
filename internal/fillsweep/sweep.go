package fillsweep

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/segment"
	"github.com/gogpu/xoverlay/internal/xlog"
)

// rowKind orders same-row participants so a vr segment is always
// queried just before any hz/dp/dn segment that starts at a strictly
// higher y (spec.md §4.5); ties at the same row are broken deterministically.
type rowKind uint8

const (
	rowVert rowKind = iota
	rowHorz
	rowPosDiag
	rowNegDiag
)

type rowItem struct {
	y     int32
	kind  rowKind
	index int
}

// Sweep assigns col.FillVert, col.FillHorz, col.FillPosD and
// col.FillNegD in place by walking the column's rows in increasing y.
// Diagonal segments are bucketed by their starting row (min y), the
// same convention the upstream engine uses to group dp/dn edges for
// the fill pass.
func Sweep(col *segment.Column, rule Rule) {
	col.FillVert = make([]segment.Fill, len(col.Vert))
	col.FillHorz = make([]segment.Fill, len(col.Horz))
	col.FillPosD = make([]segment.Fill, len(col.PosD))
	col.FillNegD = make([]segment.Fill, len(col.NegD))

	items := make([]rowItem, 0, len(col.Vert)+len(col.Horz)+len(col.PosD)+len(col.NegD))
	for i, v := range col.Vert {
		items = append(items, rowItem{y: v.Y.Min, kind: rowVert, index: i})
	}
	for i, h := range col.Horz {
		items = append(items, rowItem{y: h.Y, kind: rowHorz, index: i})
	}
	for i, d := range col.PosD {
		items = append(items, rowItem{y: d.MinY, kind: rowPosDiag, index: i})
	}
	for i, d := range col.NegD {
		items = append(items, rowItem{y: d.MinY, kind: rowNegDiag, index: i})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].y != items[b].y {
			return items[a].y < items[b].y
		}
		return items[a].kind < items[b].kind
	})

	buf := NewBuffer(col.MaxX)
	for _, it := range items {
		switch it.kind {
		case rowVert:
			v := col.Vert[it.index]
			_, fill := AddAndFill(rule, v.Count, buf.CountStrictlyLeftOf(v.X))
			col.FillVert[it.index] = fill
		case rowHorz:
			h := col.Horz[it.index]
			prev := buf.CountRightOf(h.X.Min)
			top, fill := AddAndFill(rule, h.Count, prev)
			buf.UpdateSpan(h.X.Min, h.X.Max, top)
			col.FillHorz[it.index] = fill
		case rowPosDiag:
			d := col.PosD[it.index]
			prev := buf.CountRightOf(d.X.Min)
			top, fill := AddAndFill(rule, d.Count, prev)
			buf.UpdateSpan(d.X.Min, d.X.Max, top)
			col.FillPosD[it.index] = fill
		case rowNegDiag:
			d := col.NegD[it.index]
			prev := buf.CountRightOf(d.X.Min)
			top, fill := AddAndFill(rule, d.Count, prev)
			buf.UpdateSpan(d.X.Min, d.X.Max, top)
			col.FillNegD[it.index] = fill
		}
	}

	buf.Compact()
	if !buf.IsFullyEmpty() {
		xlog.Get().Warn("winding sweep did not return to the empty sentinel",
			"column_min_x", col.MinX, "column_max_x", col.MaxX)
	}
}
