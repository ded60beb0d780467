package segment

import "github.com/gogpu/xoverlay/internal/geom"

// Orientation identifies one of the four slopes a restricted edge may
// take: vertical, horizontal, +45° or -45°. Kept as a tagged enum
// rather than an interface per spec.md §9: the hot loops in
// internal/xsect and internal/cutmerge dispatch on a flat set of four
// pure functions at the call site, never through a vtable.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
	PosDiagonal
	NegDiagonal
)

// Vert is a vertical segment at a fixed x spanning a LineRange of y.
type Vert struct {
	X     int32
	Y     geom.LineRange
	Count geom.WindingCount
}

// Horz is a horizontal segment at a fixed y spanning a LineRange of x.
type Horz struct {
	Y     int32
	X     geom.LineRange
	Count geom.WindingCount
}

// Diag is a ±45° segment. For a positive diagonal, y(x) = MinY + (x -
// X.Min); for a negative diagonal, y(x) = MinY - (x - X.Min). MinY is
// always anchored at X.Min, matching spec.md §3's description of the
// two orientations ("a base y" at x_min for both).
type Diag struct {
	X     geom.LineRange
	MinY  int32
	Count geom.WindingCount
}

// YAtPosDiag returns the positive diagonal's y at the given x. Callers
// must ensure x lies within d.X; no bounds check is performed on the
// hot path.
func (d Diag) YAtPosDiag(x int32) int32 {
	return d.MinY + (x - d.X.Min)
}

// YAtNegDiag returns the negative diagonal's y at the given x.
func (d Diag) YAtNegDiag(x int32) int32 {
	return d.MinY - (x - d.X.Min)
}

// XAtPosDiag returns the positive diagonal's x at the given y.
func (d Diag) XAtPosDiag(y int32) int32 {
	return d.X.Min + (y - d.MinY)
}

// XAtNegDiag returns the negative diagonal's x at the given y.
func (d Diag) XAtNegDiag(y int32) int32 {
	return d.X.Min - (y - d.MinY)
}

// MaxYPos and MaxYNeg return the y of a positive or negative diagonal
// at its x-range endpoint opposite MinY, i.e. the y value at X.Max.
func (d Diag) MaxYPos() int32 { return d.YAtPosDiag(d.X.Max) }
func (d Diag) MaxYNeg() int32 { return d.YAtNegDiag(d.X.Max) }
