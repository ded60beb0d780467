// Package segment holds the four segment orientations (vertical,
// horizontal, positive-diagonal, negative-diagonal), the SegmentFill
// bitmask, and the Column they are sharded into. Grounded on
// original_source/xOverlay/src/core/fill.rs for the bit layout.
package segment

// Fill is a 4-bit value encoding which of the four half-planes
// (subject-top, subject-bottom, clip-top, clip-bottom) are "inside"
// their respective region. Bit layout matches the source exactly so
// the overlay-rule truth table in spec.md §4.6 transcribes directly.
type Fill = uint8

const (
	None Fill = 0

	SubjTop Fill = 0b0001
	SubjBot Fill = 0b0010
	ClipTop Fill = 0b0100
	ClipBot Fill = 0b1000

	SubjBoth  Fill = SubjTop | SubjBot
	ClipBoth  Fill = ClipTop | ClipBot
	BothTop   Fill = SubjTop | ClipTop
	BothBot   Fill = SubjBot | ClipBot
	AllFilled Fill = SubjBoth | ClipBoth
)
