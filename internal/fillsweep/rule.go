// Package fillsweep assigns a SegmentFill to every segment in a column
// by sweeping its rows in increasing y and maintaining a piecewise-
// constant count-anchor buffer over x (spec.md §4.5).
//
// Grounded on original_source/xOverlay/src/gear/fill_buffer.rs for the
// row-bucketed edge grouping (hz/dp/dn keyed by their starting row) and
// on spec.md §4.5's prose for the anchor-buffer update rules, since the
// upstream fill_buffer.rs sweep body itself is unfinished in the
// snapshot available here.
package fillsweep

import (
	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/segment"
)

// Rule selects how a cumulative winding count maps to an inside/outside
// bit (spec.md §4.5).
type Rule uint8

const (
	EvenOdd Rule = iota
	NonZero
	Positive
	Negative
)

// Test reports whether v counts as "inside" under the rule.
func (r Rule) Test(v int16) bool {
	switch r {
	case EvenOdd:
		return v&1 != 0
	case NonZero:
		return v != 0
	case Positive:
		return v > 0
	case Negative:
		return v < 0
	default:
		return false
	}
}

// AddAndFill advances the cumulative count by this segment's
// contribution and packs the four-bit SegmentFill from the before
// ("bot") and after ("top") counts.
func AddAndFill(r Rule, this, bot geom.WindingCount) (top geom.WindingCount, fill segment.Fill) {
	top = bot.Add(this)

	var f segment.Fill
	if r.Test(top.Subj) {
		f |= segment.SubjTop
	}
	if r.Test(bot.Subj) {
		f |= segment.SubjBot
	}
	if r.Test(top.Clip) {
		f |= segment.ClipTop
	}
	if r.Test(bot.Clip) {
		f |= segment.ClipBot
	}
	return top, f
}
