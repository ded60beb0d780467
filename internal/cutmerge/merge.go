package cutmerge

import "github.com/gogpu/xoverlay/internal/segment"

// MergeVert folds adjacent verticals with identical (x, y-range) into
// one, summing their winding counts, and drops the result when it
// returns to the canonical empty count (spec.md §4.4). Input must
// already be sorted by SortVert.
func MergeVert(verts []segment.Vert) []segment.Vert {
	out := verts[:0]
	for _, v := range verts {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.X == v.X && last.Y == v.Y {
				last.Count = last.Count.Add(v.Count)
				continue
			}
		}
		out = append(out, v)
	}
	return dropEmptyVert(out)
}

// MergeHorz folds adjacent horizontals with identical (y, x-range).
func MergeHorz(horz []segment.Horz) []segment.Horz {
	out := horz[:0]
	for _, h := range horz {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Y == h.Y && last.X == h.X {
				last.Count = last.Count.Add(h.Count)
				continue
			}
		}
		out = append(out, h)
	}
	return dropEmptyHorz(out)
}

// MergeDiag folds adjacent diagonals with identical (x-range, base y).
func MergeDiag(diag []segment.Diag) []segment.Diag {
	out := diag[:0]
	for _, d := range diag {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.X == d.X && last.MinY == d.MinY {
				last.Count = last.Count.Add(d.Count)
				continue
			}
		}
		out = append(out, d)
	}
	return dropEmptyDiag(out)
}

func dropEmptyVert(in []segment.Vert) []segment.Vert {
	out := in[:0]
	for _, v := range in {
		if !v.Count.IsEmpty() {
			out = append(out, v)
		}
	}
	return out
}

func dropEmptyHorz(in []segment.Horz) []segment.Horz {
	out := in[:0]
	for _, h := range in {
		if !h.Count.IsEmpty() {
			out = append(out, h)
		}
	}
	return out
}

func dropEmptyDiag(in []segment.Diag) []segment.Diag {
	out := in[:0]
	for _, d := range in {
		if !d.Count.IsEmpty() {
			out = append(out, d)
		}
	}
	return out
}
