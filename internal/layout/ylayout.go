package layout

// YLayout sub-divides a single column's y-extent into strips so the
// self-intersection sweep's vr×hz pairing (internal/xsect) can narrow
// candidate horizontals to the few strips a vr's y-range actually
// touches, instead of testing every live edge. Grounded on
// original_source/xOverlay/src/gear/y_layout.rs.
type YLayout struct {
	MinY, MaxY int32
	LogHeight  uint
	PartsCount int
}

// NewYLayout builds a y sub-layout spanning [minY, maxY] with strips
// of height 1<<logHeight.
func NewYLayout(minY, maxY int32, logHeight uint) YLayout {
	partsCount := int((int64(maxY-minY) >> logHeight) + 1)
	return YLayout{
		MinY:       minY,
		MaxY:       maxY,
		LogHeight:  logHeight,
		PartsCount: partsCount,
	}
}

// Count returns the number of y strips.
func (l YLayout) Count() int {
	return l.PartsCount
}

// BottomIndex returns the strip index containing y.
func (l YLayout) BottomIndex(y int32) int {
	return int(uint32(y-l.MinY) >> l.LogHeight)
}
