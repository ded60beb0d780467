// Package xsect finds every point where two segments of a column
// cross in the open interior of at least one of them (spec.md §4.3).
// Because every slope is one of {∞, 0, +1, -1}, each of the six
// orientation-pair crossing tests reduces to integer arithmetic with
// no division (except the diagonal×diagonal parity check) and no
// general line-line solve.
//
// Candidate narrowing uses internal/layout.YLayout to bucket
// horizontals by y strip and restrict each vertical's hz scan to the
// strips its own y-range actually touches; the diagonal pairings scan
// every candidate directly, since a column is already narrow by
// construction (internal/layout.XLayout keeps element counts per
// column small) and a ±45° edge's reach spans enough strips that
// bucketing buys little.
//
// Grounded on original_source/xOverlay/src/geom/diagonal.rs for the
// diagonal parameterisation and xOverlay/src/gear/y_layout.rs for the
// strip-bucketed candidate narrowing; the crossing formulas themselves
// are transcribed directly from spec.md §4.3.
package xsect

// XMark records a mark at x on a segment addressed by orientation
// list index, for hz/dp/dn participants (spec.md §4.3).
type XMark struct {
	Index int
	X     int32
}

// YMark records a mark at y on a vr segment.
type YMark struct {
	Index int
	Y     int32
}

// Marks holds every mark found in one column, grouped by the
// orientation of the segment being marked (not the orientation of the
// segment that caused the mark).
type Marks struct {
	Vert []YMark
	Horz []XMark
	PosD []XMark
	NegD []XMark
}
