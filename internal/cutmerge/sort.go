package cutmerge

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/segment"
)

// SortVert orders verticals by (x, y.min), matching the canonical
// order spec.md §4.4 requires before merging.
func SortVert(verts []segment.Vert) {
	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i], verts[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y.Min < b.Y.Min
	})
}

// SortHorz orders horizontals by (x.min, y, x.max).
func SortHorz(horz []segment.Horz) {
	sort.Slice(horz, func(i, j int) bool {
		a, b := horz[i], horz[j]
		if a.X.Min != b.X.Min {
			return a.X.Min < b.X.Min
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X.Max < b.X.Max
	})
}

// SortDiag orders diagonals by (x.min, base y, x.max).
func SortDiag(diag []segment.Diag) {
	sort.Slice(diag, func(i, j int) bool {
		a, b := diag[i], diag[j]
		if a.X.Min != b.X.Min {
			return a.X.Min < b.X.Min
		}
		if a.MinY != b.MinY {
			return a.MinY < b.MinY
		}
		return a.X.Max < b.X.Max
	})
}
