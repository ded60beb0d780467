// Package ingest turns raw input contours into per-column oriented
// segments (spec.md §4.2). It owns input normalisation (dropping
// degenerate and, by default, collinear vertices), edge
// classification into one of the four restricted slopes, and the
// column-border slicing that keeps every emitted segment within
// exactly one column (spec.md §3 invariant 2).
//
// The column-border slicing is grounded on internal/clip's
// Cohen-Sutherland EdgeClipper from the teacher repo: the same
// "walk the span, cut wherever it crosses a boundary" shape, adapted
// from a float rectangle clip to an integer 1-D slice at column
// borders (there is no y-clipping here — only x is partitioned).
package ingest

import "github.com/gogpu/xoverlay/internal/geom"

// Contour is a closed sequence of points; the implicit closing edge
// runs from the last point back to the first.
type Contour []geom.Point

// clean drops a degenerate closing edge (last point equal to first),
// then removes collinear middle vertices unless preserveCollinear is
// set, per spec.md §4.2 steps 1-2. preserveCollinear still drops
// reversal ("spike") vertices regardless, since those always produce
// a zero-length edge downstream. Returns the cleaned contour and
// whether it has at least 3 distinct points.
func clean(c Contour, preserveCollinear bool) (Contour, bool) {
	if len(c) == 0 {
		return nil, false
	}

	// Drop consecutive duplicate points, including wraparound.
	deduped := make(Contour, 0, len(c))
	for i, p := range c {
		if i == 0 {
			deduped = append(deduped, p)
			continue
		}
		if p.Equal(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) > 1 && deduped[0].Equal(deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return deduped, false
	}

	n := len(deduped)
	keep := make([]bool, n)
	for i := range n {
		prev := deduped[(i-1+n)%n]
		cur := deduped[i]
		next := deduped[(i+1)%n]
		d1 := cur.Sub(prev)
		d2 := next.Sub(cur)
		cross := d1.Cross(d2)

		if preserveCollinear {
			// Keep same-direction collinear vertices, but a reversal
			// ("spike", cross==0 and dot<0) still produces a
			// zero-length edge on the next ingest step regardless of
			// preserveCollinear, so it is dropped either way, per
			// original_source/xOverlay/src/gear/seg_iter.rs's
			// DropOppositeCollinear filter.
			keep[i] = cross != 0 || d1.Dot(d2) >= 0
			continue
		}

		// Drop collinear middle vertices: a vertex is redundant when
		// the incoming and outgoing direction vectors are parallel,
		// i.e. the cross product of (p1-p0) and (p2-p1) is zero. This
		// is a mandatory normalisation (not just an option-gated
		// cosmetic step): spec.md §4.2 step 2 requires it so the
		// merge step in internal/cutmerge never sees two collinear
		// segments that share an orientation vector and would
		// otherwise produce a spurious zero-length edge at the
		// shared vertex.
		keep[i] = cross != 0
	}

	out := make(Contour, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, deduped[i])
		}
	}
	if len(out) < 3 {
		return out, false
	}
	return out, true
}
