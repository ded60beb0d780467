package ingest

import (
	"fmt"

	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/xerr"
)

// edgeKind is the classification of one edge's slope.
type edgeKind uint8

const (
	kindVertical edgeKind = iota
	kindHorizontal
	kindPosDiagonal
	kindNegDiagonal
)

// classify determines an edge's slope, failing with ErrNotValidPath
// when it is neither axis-aligned nor exactly ±45° (spec.md §4.2
// step 3).
func classify(p0, p1 geom.Point) (edgeKind, error) {
	dx := int64(p1.X) - int64(p0.X)
	dy := int64(p1.Y) - int64(p0.Y)

	switch {
	case dx == 0:
		return kindVertical, nil
	case dy == 0:
		return kindHorizontal, nil
	case dx == dy:
		return kindPosDiagonal, nil
	case dx == -dy:
		return kindNegDiagonal, nil
	default:
		return 0, fmt.Errorf("%w: edge (%d,%d)-(%d,%d) has slope %d/%d",
			xerr.ErrNotValidPath, p0.X, p0.Y, p1.X, p1.Y, dy, dx)
	}
}
