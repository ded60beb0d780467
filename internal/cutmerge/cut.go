// Package cutmerge implements the cut and merge phases of the overlay
// pipeline (spec.md §4.4): every segment is split at the marks found
// by internal/xsect, then adjacent pieces with identical geometry are
// combined by summing their winding counts, dropping the result when
// it returns to the canonical empty count.
//
// Grounded on original_source/xOverlay/src/gear/split.rs (cut-at-marks)
// and src/gear/merge.rs (adjacent-identical-geometry fold).
package cutmerge

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/segment"
	"github.com/gogpu/xoverlay/internal/xsect"
)

// CutVert splits each vertical at every y mark addressed to it. A
// vertical with no marks passes through unchanged.
func CutVert(verts []segment.Vert, marks []xsect.YMark) []segment.Vert {
	if len(marks) == 0 {
		return verts
	}
	byIndex := groupYMarks(marks, len(verts))

	out := make([]segment.Vert, 0, len(verts)+len(marks))
	for i, v := range verts {
		ys := byIndex[i]
		if len(ys) == 0 {
			out = append(out, v)
			continue
		}
		prev := v.Y.Min
		for _, y := range ys {
			out = append(out, segment.Vert{X: v.X, Y: geom.NewLineRange(prev, y), Count: v.Count})
			prev = y
		}
		out = append(out, segment.Vert{X: v.X, Y: geom.NewLineRange(prev, v.Y.Max), Count: v.Count})
	}
	return out
}

// CutHorz splits each horizontal at every x mark addressed to it.
func CutHorz(horz []segment.Horz, marks []xsect.XMark) []segment.Horz {
	if len(marks) == 0 {
		return horz
	}
	byIndex := groupXMarks(marks, len(horz))

	out := make([]segment.Horz, 0, len(horz)+len(marks))
	for i, h := range horz {
		xs := byIndex[i]
		if len(xs) == 0 {
			out = append(out, h)
			continue
		}
		prev := h.X.Min
		for _, x := range xs {
			out = append(out, segment.Horz{Y: h.Y, X: geom.NewLineRange(prev, x), Count: h.Count})
			prev = x
		}
		out = append(out, segment.Horz{Y: h.Y, X: geom.NewLineRange(prev, h.X.Max), Count: h.Count})
	}
	return out
}

// CutDiag splits each diagonal at every x mark addressed to it,
// recomputing each piece's base y from the line's own slope so the
// cut pieces remain collinear with the original (spec.md §4.4).
func CutDiag(diag []segment.Diag, marks []xsect.XMark, positive bool) []segment.Diag {
	if len(marks) == 0 {
		return diag
	}
	byIndex := groupXMarks(marks, len(diag))

	out := make([]segment.Diag, 0, len(diag)+len(marks))
	for i, d := range diag {
		xs := byIndex[i]
		if len(xs) == 0 {
			out = append(out, d)
			continue
		}
		prevX := d.X.Min
		prevY := d.MinY
		for _, x := range xs {
			out = append(out, segment.Diag{X: geom.NewLineRange(prevX, x), MinY: prevY, Count: d.Count})
			prevY = yAt(positive, prevY, prevX, x)
			prevX = x
		}
		out = append(out, segment.Diag{X: geom.NewLineRange(prevX, d.X.Max), MinY: prevY, Count: d.Count})
	}
	return out
}

func yAt(positive bool, baseY, baseX, x int32) int32 {
	if positive {
		return baseY + (x - baseX)
	}
	return baseY - (x - baseX)
}

func groupYMarks(marks []xsect.YMark, n int) [][]int32 {
	byIndex := make([][]int32, n)
	for _, m := range marks {
		byIndex[m.Index] = append(byIndex[m.Index], m.Y)
	}
	for i := range byIndex {
		byIndex[i] = sortDedupI32(byIndex[i])
	}
	return byIndex
}

func groupXMarks(marks []xsect.XMark, n int) [][]int32 {
	byIndex := make([][]int32, n)
	for _, m := range marks {
		byIndex[m.Index] = append(byIndex[m.Index], m.X)
	}
	for i := range byIndex {
		byIndex[i] = sortDedupI32(byIndex[i])
	}
	return byIndex
}

// sortDedupI32 sorts vs and collapses repeated values, so two marks
// landing on the same coordinate (spec.md §4.3: "Shared exact
// intersection point among three or more segments ... no global
// deduplication at this stage — duplicates collapse at the cut step")
// produce a single cut rather than a zero-length piece.
func sortDedupI32(vs []int32) []int32 {
	if len(vs) < 2 {
		return vs
	}
	sort.Slice(vs, func(a, b int) bool { return vs[a] < vs[b] })
	out := vs[:1]
	for _, v := range vs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
