package fillsweep

import (
	"sort"

	"github.com/gogpu/xoverlay/internal/geom"
)

// Anchor is a breakpoint of the piecewise-constant winding function
// W(x): the function equals Count for every x in [Pos, nextAnchor.Pos).
type Anchor struct {
	Pos   int32
	Count geom.WindingCount
}

// Buffer is the count-anchor buffer (spec.md §4.5): a sorted list of
// anchors, always terminated by a sentinel anchor at maxX+1 carrying
// the empty count.
type Buffer struct {
	anchors []Anchor
}

// NewBuffer builds an empty buffer for a column spanning up to maxX.
func NewBuffer(maxX int32) *Buffer {
	return &Buffer{anchors: []Anchor{{Pos: maxX + 1, Count: geom.Empty}}}
}

// at returns W(pos): the count of the anchor with the largest Pos <= pos,
// or the empty count if pos precedes every anchor.
func (b *Buffer) at(pos int32) geom.WindingCount {
	i := sort.Search(len(b.anchors), func(i int) bool { return b.anchors[i].Pos > pos })
	if i == 0 {
		return geom.Empty
	}
	return b.anchors[i-1].Count
}

// CountRightOf returns W(pos), the count effective at and to the right
// of pos.
func (b *Buffer) CountRightOf(pos int32) geom.WindingCount {
	return b.at(pos)
}

// CountStrictlyLeftOf returns W(pos-1), the count effective strictly
// to the left of pos — used when a vr segment at x=pos queries the
// buffer without modifying it (spec.md §4.5).
func (b *Buffer) CountStrictlyLeftOf(pos int32) geom.WindingCount {
	return b.at(pos - 1)
}

// UpdateSpan rewrites W(x) to newCount for every x in [lo, hi) and
// returns the count that was uniformly in effect across that span
// beforehand (the "cur_count_in_span" of spec.md §4.5). Callers must
// ensure the span was uniform before the call, which holds because
// within one row a column's hz segments are disjoint after C4's
// merge.
func (b *Buffer) UpdateSpan(lo, hi int32, newCount geom.WindingCount) (prev geom.WindingCount) {
	prev = b.at(lo)
	after := b.at(hi)
	b.setAt(lo, newCount)
	b.setAt(hi, after)
	return prev
}

func (b *Buffer) setAt(pos int32, val geom.WindingCount) {
	i := sort.Search(len(b.anchors), func(i int) bool { return b.anchors[i].Pos >= pos })
	if i < len(b.anchors) && b.anchors[i].Pos == pos {
		b.anchors[i].Count = val
		return
	}
	b.anchors = append(b.anchors, Anchor{})
	copy(b.anchors[i+1:], b.anchors[i:])
	b.anchors[i] = Anchor{Pos: pos, Count: val}
}

// Compact drops anchors whose count duplicates the value already in
// effect immediately to their left, restoring the buffer to its
// canonical minimal form. The empty sentinel is dropped too whenever
// the count before it is already empty, so a buffer that has returned
// to empty everywhere holds no anchors at all after Compact.
// IsFullyEmpty then reports whether any non-empty count remains — the
// debug invariant spec.md §4.5 expects once every segment in the
// column has been processed.
func (b *Buffer) Compact() {
	out := b.anchors[:0]
	prev := geom.Empty
	for _, a := range b.anchors {
		if a.Count == prev {
			continue
		}
		out = append(out, a)
		prev = a.Count
	}
	b.anchors = out
}

// IsFullyEmpty reports whether the buffer, once compacted, holds no
// anchor with a non-empty count.
func (b *Buffer) IsFullyEmpty() bool {
	for _, a := range b.anchors {
		if !a.Count.IsEmpty() {
			return false
		}
	}
	return true
}
