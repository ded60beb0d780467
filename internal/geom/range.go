package geom

// LineRange is an ordered pair {min, max} with min <= max, grounded on
// the source's LineRange (original_source/xOverlay/src/geom/range.rs),
// with the same two containment predicates, "contains" and "strictly
// contains"; internal/xsect uses them for its mark decisions.
type LineRange struct {
	Min, Max int32
}

// NewLineRange builds a LineRange from already-ordered bounds.
func NewLineRange(min, max int32) LineRange {
	return LineRange{Min: min, Max: max}
}

// Contains reports whether val lies within [min, max] inclusive.
func (r LineRange) Contains(val int32) bool {
	return r.Min <= val && val <= r.Max
}

// NotContains is the complement of Contains.
func (r LineRange) NotContains(val int32) bool {
	return val < r.Min || r.Max < val
}

// StrictContains reports whether val lies strictly inside (min, max).
func (r LineRange) StrictContains(val int32) bool {
	return r.Min < val && val < r.Max
}

// Length returns max - min.
func (r LineRange) Length() int32 {
	return r.Max - r.Min
}
