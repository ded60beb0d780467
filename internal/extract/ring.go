package extract

// Direction selects the winding direction emitted for each shape's
// outer contour; holes always carry the opposite winding.
type Direction uint8

const (
	CounterClockwise Direction = iota
	Clockwise
)

// closeRing drops a ring's duplicated closing point (walkAll always
// ends a ring back at its start point).
func closeRing(r Ring) Ring {
	if len(r) > 1 && r[0].Equal(r[len(r)-1]) {
		return r[:len(r)-1]
	}
	return r
}

// signedArea2 returns twice the ring's signed area (shoelace formula);
// positive for counterclockwise, negative for clockwise, under a
// standard y-up convention.
func signedArea2(r Ring) int64 {
	var sum int64
	n := len(r)
	for i := 0; i < n; i++ {
		p0 := r[i]
		p1 := r[(i+1)%n]
		sum += int64(p0.X)*int64(p1.Y) - int64(p1.X)*int64(p0.Y)
	}
	return sum
}

// dropCollinear removes every vertex whose neighbours make it
// collinear (spec.md §4.8), unless preserve is set.
func dropCollinear(r Ring, preserve bool) Ring {
	if preserve || len(r) < 3 {
		return r
	}
	out := make(Ring, 0, len(r))
	n := len(r)
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]
		d1 := cur.Sub(prev)
		d2 := next.Sub(cur)
		if d1.Cross(d2) == 0 {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return out
	}
	return out
}

func reverseRing(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// normalizeOrder reverses r if needed so its winding matches want.
func normalizeOrder(r Ring, want Direction) Ring {
	area := signedArea2(r)
	isCCW := area > 0
	wantCCW := want == CounterClockwise
	if isCCW != wantCCW {
		return reverseRing(r)
	}
	return r
}

// postProcess applies the spec.md §4.8 step-3 pipeline to a raw walked
// ring: drop if too small, drop collinear vertices. Winding direction
// is left as the walk produced it — classification of outer vs. hole
// (isOuterWinding) and the final reversal to match output_direction
// both happen afterward, once holes are attached to their outer.
func postProcess(r Ring, minArea int64, preserveCollinear bool) (Ring, bool) {
	r = closeRing(r)
	if len(r) < 3 {
		return nil, false
	}
	area := signedArea2(r)
	if abs64(area)/2 < minArea {
		return nil, false
	}
	r = dropCollinear(r, preserveCollinear)
	if len(r) < 3 {
		return nil, false
	}
	return r, true
}

// isOuterWinding reports whether a ring's natural winding, as the
// nearest-turn walk produced it, marks it as an outer boundary rather
// than a hole (spec.md §4.8: "holes are detected by signed-area
// sign"). Outer boundaries wind counterclockwise under this module's
// y-up convention.
func isOuterWinding(r Ring) bool {
	return signedArea2(r) > 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
