// Package geom holds the integer primitives shared by every pipeline
// stage: Point, LineRange and WindingCount. All coordinate math fits in
// int32 with int64 intermediates, per the no-floating-point design of
// the octilinear overlay engine.
package geom

// Point is a pair of 32-bit signed integer coordinates. Equality and
// lexicographic order (x primary, y secondary) are total, matching the
// ordering OverlayLink and End rely on throughout the pipeline.
type Point struct {
	X, Y int32
}

// Pt is a convenience constructor.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less reports whether p sorts strictly before q: x primary, y
// secondary.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Equal reports coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Cross returns the 2D cross product of p and q treated as vectors
// from the origin: p.X*q.Y - p.Y*q.X. Used by the collinear-vertex
// tests in internal/ingest and internal/extract; both operands are
// int32 vectors, so the product fits comfortably in int64.
func (p Point) Cross(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}
