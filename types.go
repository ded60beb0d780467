package xoverlay

import (
	"github.com/gogpu/xoverlay/internal/fillsweep"
	"github.com/gogpu/xoverlay/internal/overlayfilter"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int32
}

// Contour is a closed polygon ring; edges between consecutive points
// (and between the last and first) must be vertical, horizontal, or
// exactly ±45°.
type Contour []Point

// Shape is one result polygon: an outer boundary plus zero or more
// holes.
type Shape struct {
	Outer Contour
	Holes []Contour
}

// IntShapes is the result of running an overlay.
type IntShapes []Shape

// FillRule decides how a cumulative winding count maps to an
// inside/outside bit.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

func (r FillRule) toInternal() fillsweep.Rule {
	switch r {
	case NonZero:
		return fillsweep.NonZero
	case Positive:
		return fillsweep.Positive
	case Negative:
		return fillsweep.Negative
	default:
		return fillsweep.EvenOdd
	}
}

// OverlayRule selects which Boolean set operation to perform.
type OverlayRule uint8

const (
	Subject OverlayRule = iota
	Clip
	Intersect
	Union
	Difference
	InverseDifference
	Xor
)

func (r OverlayRule) toInternal() overlayfilter.Rule {
	switch r {
	case Clip:
		return overlayfilter.Clip
	case Intersect:
		return overlayfilter.Intersect
	case Union:
		return overlayfilter.Union
	case Difference:
		return overlayfilter.Difference
	case InverseDifference:
		return overlayfilter.InverseDifference
	case Xor:
		return overlayfilter.Xor
	default:
		return overlayfilter.Subject
	}
}

// Direction selects the winding direction of each shape's outer
// contour.
type Direction uint8

const (
	CounterClockwise Direction = iota
	Clockwise
)
