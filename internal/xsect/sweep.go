package xsect

import (
	"math/bits"

	"github.com/gogpu/xoverlay/internal/layout"
	"github.com/gogpu/xoverlay/internal/segment"
)

// FindMarks tests every pairwise combination of orientations within a
// single column and returns every mark produced. Same-orientation
// pairs are not tested (two verticals, two horizontals, two diagonals
// of the same sign are parallel and never cross transversally; their
// collinear overlaps are left to internal/cutmerge, which folds only
// pieces of identical geometry), so only the six cross-orientation
// pairs are tested (spec.md §4.3).
//
// The vr×hz pairing, the most common in typical rectilinear input, is
// narrowed with a layout.YLayout: horizontals are bucketed by the y
// strip containing their row, and each vertical only scans the
// strips its own y-range touches. The other five pairings are tested
// exhaustively — a column's element count is already kept small by
// layout.XLayout, and a ±45° edge's reach spans enough strips to make
// bucketing them worth little.
func FindMarks(col *segment.Column) Marks {
	var m Marks

	vertHorzCandidates(col, &m)

	for vi, v := range col.Vert {
		for di, d := range col.PosD {
			crossVertDiag(vi, v, di, d, yAtPos, true, &m)
		}
		for di, d := range col.NegD {
			crossVertDiag(vi, v, di, d, yAtNeg, false, &m)
		}
	}

	for hi, h := range col.Horz {
		for di, d := range col.PosD {
			crossHorzDiag(hi, h, di, d, xAtPos, true, &m)
		}
		for di, d := range col.NegD {
			crossHorzDiag(hi, h, di, d, xAtNeg, false, &m)
		}
	}

	for pi, p := range col.PosD {
		for ni, n := range col.NegD {
			crossDiagDiag(pi, p, ni, n, &m)
		}
	}

	return m
}

// vertHorzCandidates narrows each vertical's horizontal candidates to
// the y strips its range touches before running crossVertHorz, rather
// than testing every horizontal in the column.
func vertHorzCandidates(col *segment.Column, m *Marks) {
	if len(col.Vert) == 0 || len(col.Horz) == 0 {
		return
	}

	minY, maxY := col.Horz[0].Y, col.Horz[0].Y
	for _, h := range col.Horz {
		if h.Y < minY {
			minY = h.Y
		}
		if h.Y > maxY {
			maxY = h.Y
		}
	}
	for _, v := range col.Vert {
		if v.Y.Min < minY {
			minY = v.Y.Min
		}
		if v.Y.Max > maxY {
			maxY = v.Y.Max
		}
	}

	yl := layout.NewYLayout(minY, maxY, stripLogHeight(minY, maxY, len(col.Horz)))

	byStrip := make([][]int, yl.Count())
	for hi, h := range col.Horz {
		s := clampStrip(yl.BottomIndex(h.Y), len(byStrip))
		byStrip[s] = append(byStrip[s], hi)
	}

	for vi, v := range col.Vert {
		lo := clampStrip(yl.BottomIndex(v.Y.Min), len(byStrip))
		hi := clampStrip(yl.BottomIndex(v.Y.Max), len(byStrip))
		for s := lo; s <= hi; s++ {
			for _, hIdx := range byStrip[s] {
				crossVertHorz(vi, v, hIdx, col.Horz[hIdx], m)
			}
		}
	}
}

func clampStrip(s, count int) int {
	if s < 0 {
		return 0
	}
	if s >= count {
		return count - 1
	}
	return s
}

// stripLogHeight picks a strip height targeting a handful of
// horizontals per strip, so BottomIndex narrows the scan without
// fragmenting it into strips holding a single element each.
func stripLogHeight(minY, maxY int32, horzCount int) uint {
	const targetPerStrip = 8
	height := int64(maxY) - int64(minY) + 1
	if height < 1 {
		height = 1
	}
	if horzCount < 1 {
		horzCount = 1
	}
	approx := targetPerStrip * height / int64(horzCount)
	if approx < 1 {
		approx = 1
	}
	return uint(bits.Len64(uint64(approx)) - 1)
}
