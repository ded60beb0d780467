// Package overlayfilter selects which filled segments survive into
// the output graph under a chosen Boolean overlay rule (spec.md §4.6),
// and packages survivors into OverlayLink values with lexicographically
// ordered endpoints.
package overlayfilter

import "github.com/gogpu/xoverlay/internal/segment"

// Rule is one of the seven Boolean overlay operations.
type Rule uint8

const (
	Subject Rule = iota
	Clip
	Intersect
	Union
	Difference
	InverseDifference
	Xor
)

const (
	subjBoth  = segment.SubjTop | segment.SubjBot
	clipBoth  = segment.ClipTop | segment.ClipBot
	bothTop   = segment.SubjTop | segment.ClipTop
	bothBot   = segment.SubjBot | segment.ClipBot
	allFilled = subjBoth | clipBoth
)

// Include reports whether a segment with the given 4-bit fill survives
// under the rule.
func (r Rule) Include(fill segment.Fill) bool {
	top := fill & bothTop
	bot := fill & bothBot

	switch r {
	case Subject:
		s := fill & subjBoth
		return s == segment.SubjTop || s == segment.SubjBot
	case Clip:
		c := fill & clipBoth
		return c == segment.ClipTop || c == segment.ClipBot
	case Intersect:
		return (top == bothTop || bot == bothBot) && fill != allFilled
	case Union:
		return (top == 0 || bot == 0) && fill != 0
	case Difference:
		return (top == segment.SubjTop || bot == segment.SubjBot) && fill != subjBoth
	case InverseDifference:
		return (top == segment.ClipTop || bot == segment.ClipBot) && fill != clipBoth
	case Xor:
		anyTop := top == segment.SubjTop || top == segment.ClipTop
		anyBot := bot == segment.SubjBot || bot == segment.ClipBot
		return anyTop != anyBot
	default:
		return false
	}
}
