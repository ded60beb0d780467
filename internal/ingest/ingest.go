package ingest

import (
	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/layout"
	"github.com/gogpu/xoverlay/internal/segment"
)

// Ingest classifies and slices every edge of every contour into the
// owning column's segment lists. Contours that collapse to fewer than
// three distinct points after cleaning are silently skipped (spec.md
// §7: EmptyPath is not fatal for a single contour in a multi-contour
// input). The first edge with a slope other than vertical, horizontal
// or ±45° aborts the whole call with ErrNotValidPath, since
// construction must not produce a partially-built Overlay.
func Ingest(columns []*segment.Column, xl layout.XLayout, contours []Contour, shapeType geom.ShapeType, preserveCollinear bool) error {
	direct, invert := geom.WithShapeType(shapeType)

	for _, raw := range contours {
		c, ok := clean(raw, preserveCollinear)
		if !ok {
			continue
		}

		n := len(c)
		for i := 0; i < n; i++ {
			p0 := c[i]
			p1 := c[(i+1)%n]

			kind, err := classify(p0, p1)
			if err != nil {
				return err
			}

			switch kind {
			case kindVertical:
				ingestVertical(columns, xl, p0, p1, direct, invert)
			case kindHorizontal:
				ingestHorizontal(columns, xl, p0, p1, direct, invert)
			case kindPosDiagonal:
				ingestDiagonal(columns, xl, p0, p1, direct, invert, true)
			case kindNegDiagonal:
				ingestDiagonal(columns, xl, p0, p1, direct, invert, false)
			}
		}
	}
	return nil
}

func ingestVertical(columns []*segment.Column, xl layout.XLayout, p0, p1 geom.Point, direct, invert geom.WindingCount) {
	count := invert
	yMin, yMax := p0.Y, p1.Y
	if p1.Y > p0.Y {
		count = direct
	} else {
		yMin, yMax = p1.Y, p0.Y
	}

	col := xl.Index(p0.X)
	columns[col].Vert = append(columns[col].Vert, segment.Vert{
		X:     p0.X,
		Y:     geom.NewLineRange(yMin, yMax),
		Count: count,
	})
}

func ingestHorizontal(columns []*segment.Column, xl layout.XLayout, p0, p1 geom.Point, direct, invert geom.WindingCount) {
	count := invert
	xMin, xMax := p0.X, p1.X
	if p1.X > p0.X {
		count = direct
	} else {
		xMin, xMax = p1.X, p0.X
	}

	i0, i1 := xl.IndicesByRange(geom.NewLineRange(xMin, xMax))
	for i := i0; i <= i1; i++ {
		lo, hi := xl.Borders(i)
		subMin, subMax := maxI32(xMin, lo), minI32(xMax, hi)
		if subMin > subMax {
			continue
		}
		columns[i].Horz = append(columns[i].Horz, segment.Horz{
			Y:     p0.Y,
			X:     geom.NewLineRange(subMin, subMax),
			Count: count,
		})
		if subMin == lo {
			columns[i].BorderYs = append(columns[i].BorderYs, p0.Y)
		}
	}
}

// ingestDiagonal slices a ±45° edge at column borders, recomputing
// each sub-piece's base y from the integer slope (spec.md §4.2 step
// 3). positive selects y(x) = baseY + (x - xMin) vs y(x) = baseY -
// (x - xMin).
func ingestDiagonal(columns []*segment.Column, xl layout.XLayout, p0, p1 geom.Point, direct, invert geom.WindingCount, positive bool) {
	count := invert
	var left, right geom.Point
	if p1.X > p0.X {
		count = direct
		left, right = p0, p1
	} else {
		left, right = p1, p0
	}
	xMin, xMax := left.X, right.X
	baseY := left.Y // y at xMin, by construction of classify (slope exactly ±1)

	i0, i1 := xl.IndicesByRange(geom.NewLineRange(xMin, xMax))
	for i := i0; i <= i1; i++ {
		lo, hi := xl.Borders(i)
		subMin, subMax := maxI32(xMin, lo), minI32(xMax, hi)
		if subMin > subMax {
			continue
		}

		var subBaseY int32
		if positive {
			subBaseY = baseY + (subMin - xMin)
		} else {
			subBaseY = baseY - (subMin - xMin)
		}

		d := segment.Diag{
			X:     geom.NewLineRange(subMin, subMax),
			MinY:  subBaseY,
			Count: count,
		}
		if positive {
			columns[i].PosD = append(columns[i].PosD, d)
		} else {
			columns[i].NegD = append(columns[i].NegD, d)
		}
	}
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
