package xsect

import "github.com/gogpu/xoverlay/internal/segment"

// crossVertHorz tests a vertical against a horizontal, candidate point
// (vr.X, hz.Y). Appends a mark to whichever segment (or both) has a
// strict-interior hit (spec.md §4.3 T-junction rule: the segment whose
// endpoint merely touches the other is left uncut).
func crossVertHorz(vIdx int, v segment.Vert, hIdx int, h segment.Horz, m *Marks) {
	if !v.Y.Contains(h.Y) || !h.X.Contains(v.X) {
		return
	}
	if v.Y.StrictContains(h.Y) {
		m.Vert = append(m.Vert, YMark{Index: vIdx, Y: h.Y})
	}
	if h.X.StrictContains(v.X) {
		m.Horz = append(m.Horz, XMark{Index: hIdx, X: v.X})
	}
}

// crossVertDiag tests a vertical against a diagonal (positive or
// negative, selected by the yAt closure).
func crossVertDiag(vIdx int, v segment.Vert, dIdx int, d segment.Diag, yAt func(segment.Diag, int32) int32, positive bool, m *Marks) {
	if !d.X.Contains(v.X) {
		return
	}
	y := yAt(d, v.X)
	if !v.Y.Contains(y) {
		return
	}
	if v.Y.StrictContains(y) {
		m.Vert = append(m.Vert, YMark{Index: vIdx, Y: y})
	}
	if d.X.StrictContains(v.X) {
		appendDiagMark(m, positive, XMark{Index: dIdx, X: v.X})
	}
}

// crossHorzDiag tests a horizontal against a diagonal, solving for x
// at the horizontal's fixed y via the diagonal's inverse (xAt).
func crossHorzDiag(hIdx int, h segment.Horz, dIdx int, d segment.Diag, xAt func(segment.Diag, int32) int32, positive bool, m *Marks) {
	x := xAt(d, h.Y)
	if !d.X.Contains(x) || !h.X.Contains(x) {
		return
	}
	if h.X.StrictContains(x) {
		m.Horz = append(m.Horz, XMark{Index: hIdx, X: x})
	}
	if d.X.StrictContains(x) {
		appendDiagMark(m, positive, XMark{Index: dIdx, X: x})
	}
}

// crossDiagDiag tests a positive diagonal against a negative diagonal.
// Grounded on spec.md §4.3: the intersection's y is the average of two
// constants derived from each line's y-x (or y+x) invariant; integer y
// exists only when that sum is even, otherwise the pair shares no
// lattice point and is skipped outright — this is the "wrapping_add …
// >> 1" parity hint from the Rust source (§9 open question).
//
// pos.MinY is anchored at pos.X.Min (y = MinY + (x - X.Min), so
// y - x = MinY - X.Min is invariant along the line). neg.MinY is also
// anchored at neg.X.Min per this module's Diag convention (y = MinY -
// (x - X.Min), so y + x = MinY + X.Min is invariant).
func crossDiagDiag(pIdx int, pos segment.Diag, nIdx int, neg segment.Diag, m *Marks) {
	cp := int64(pos.MinY) - int64(pos.X.Min)
	cn := int64(neg.MinY) + int64(neg.X.Min)
	sum := cp + cn
	if sum%2 != 0 {
		return
	}
	y := sum / 2
	x := y - cp

	if x < int64(pos.X.Min) || x > int64(pos.X.Max) || x < int64(neg.X.Min) || x > int64(neg.X.Max) {
		return
	}
	xi := int32(x)

	if pos.X.StrictContains(xi) {
		m.PosD = append(m.PosD, XMark{Index: pIdx, X: xi})
	}
	if neg.X.StrictContains(xi) {
		m.NegD = append(m.NegD, XMark{Index: nIdx, X: xi})
	}
}

func appendDiagMark(m *Marks, positive bool, mark XMark) {
	if positive {
		m.PosD = append(m.PosD, mark)
	} else {
		m.NegD = append(m.NegD, mark)
	}
}

func yAtPos(d segment.Diag, x int32) int32 { return d.YAtPosDiag(x) }
func yAtNeg(d segment.Diag, x int32) int32 { return d.YAtNegDiag(x) }
func xAtPos(d segment.Diag, y int32) int32 { return d.XAtPosDiag(y) }
func xAtNeg(d segment.Diag, y int32) int32 { return d.XAtNegDiag(y) }
