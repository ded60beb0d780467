package geom

// ShapeType tags an input contour as belonging to the subject or clip
// collection, deciding which half of a WindingCount an ingested edge
// contributes to.
type ShapeType uint8

const (
	Subject ShapeType = iota
	Clip
)

// WindingCount is a pair (subj, clip) of signed 16-bit winding
// contributions, per spec: addition is componentwise, inversion
// negates both, and the canonical empty value is (0,0).
type WindingCount struct {
	Subj, Clip int16
}

// Empty is the canonical zero winding count.
var Empty = WindingCount{}

// NewWindingCount constructs a count directly.
func NewWindingCount(subj, clip int16) WindingCount {
	return WindingCount{Subj: subj, Clip: clip}
}

// WithShapeType returns the (direct, invert) pair of unit winding
// counts an ingested edge of the given shape type contributes: +1 for
// the direction the edge is traversed, -1 for its reverse. Horizontal
// and diagonal ingestion (internal/ingest) picks whichever of the pair
// matches the edge's y-order / x-order.
func WithShapeType(st ShapeType) (direct, invert WindingCount) {
	switch st {
	case Subject:
		return WindingCount{Subj: 1}, WindingCount{Subj: -1}
	case Clip:
		return WindingCount{Clip: 1}, WindingCount{Clip: -1}
	default:
		return Empty, Empty
	}
}

// Add returns the componentwise sum.
func (w WindingCount) Add(o WindingCount) WindingCount {
	return WindingCount{Subj: w.Subj + o.Subj, Clip: w.Clip + o.Clip}
}

// Invert negates both components.
func (w WindingCount) Invert() WindingCount {
	return WindingCount{Subj: -w.Subj, Clip: -w.Clip}
}

// IsEmpty reports whether both components are zero.
func (w WindingCount) IsEmpty() bool {
	return w.Subj == 0 && w.Clip == 0
}
