package segment

import "github.com/gogpu/xoverlay/internal/geom"

// Column is a vertical strip [MinX, MaxX] of the overlay's bounding
// rectangle: the unit of parallelism for C3 (self-intersection)
// through C6 (overlay filtering). All segments ingested into this
// column lie entirely within [MinX, MaxX] (spec.md §3 invariant 2).
type Column struct {
	MinX, MaxX int32

	Vert []Vert
	Horz []Horz
	PosD []Diag // positive (+45°) diagonals
	NegD []Diag // negative (-45°) diagonals

	// FillVert/FillHorz/FillPosD/FillNegD are index-parallel to the
	// segment slices above: one Fill byte assigned during C5.
	FillVert []Fill
	FillHorz []Fill
	FillPosD []Fill
	FillNegD []Fill

	// BorderYs holds the y of every horizontal piece ingested into
	// this column whose x-range starts exactly on the column's left
	// border (spec.md §4.2 step 4). No later pipeline stage reads it.
	BorderYs []int32

	// LinksStart/LinksCount is this column's pre-reserved slice of
	// the global link array (spec.md §4.6), letting parallel workers
	// write their emitted links without contention.
	LinksStart int
	LinksCount int
}

// NewColumn creates an empty column spanning [minX, maxX].
func NewColumn(minX, maxX int32) *Column {
	return &Column{MinX: minX, MaxX: maxX}
}

// Width returns the column's inclusive pixel width.
func (c *Column) Width() int32 {
	return c.MaxX - c.MinX + 1
}

// Range returns the column's x-extent as a LineRange.
func (c *Column) Range() geom.LineRange {
	return geom.NewLineRange(c.MinX, c.MaxX)
}

// Reset clears all segment and fill state but keeps the column's
// bounds, allowing an Overlay value to be reused across calls (spec.md
// §9: scratch buffers are owned by the Overlay value with a reset
// method).
func (c *Column) Reset() {
	c.Vert = c.Vert[:0]
	c.Horz = c.Horz[:0]
	c.PosD = c.PosD[:0]
	c.NegD = c.NegD[:0]
	c.FillVert = c.FillVert[:0]
	c.FillHorz = c.FillHorz[:0]
	c.FillPosD = c.FillPosD[:0]
	c.FillNegD = c.FillNegD[:0]
	c.BorderYs = c.BorderYs[:0]
	c.LinksStart = 0
	c.LinksCount = 0
}
