package cutmerge

import (
	"github.com/gogpu/xoverlay/internal/segment"
	"github.com/gogpu/xoverlay/internal/xsect"
)

// Process cuts every segment in col at its marks, sorts each
// orientation list into canonical order, and merges adjacent
// identical-geometry pieces. It mutates col in place.
func Process(col *segment.Column, marks xsect.Marks) {
	col.Vert = CutVert(col.Vert, marks.Vert)
	col.Horz = CutHorz(col.Horz, marks.Horz)
	col.PosD = CutDiag(col.PosD, marks.PosD, true)
	col.NegD = CutDiag(col.NegD, marks.NegD, false)

	SortVert(col.Vert)
	SortHorz(col.Horz)
	SortDiag(col.PosD)
	SortDiag(col.NegD)

	col.Vert = MergeVert(col.Vert)
	col.Horz = MergeHorz(col.Horz)
	col.PosD = MergeDiag(col.PosD)
	col.NegD = MergeDiag(col.NegD)
}
