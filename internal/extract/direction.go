package extract

import "github.com/gogpu/xoverlay/internal/geom"

// octant maps a direction vector, known to be one of the eight
// restricted slopes, to an index 0..7 going counterclockwise from due
// east. Every overlay edge reduces to exactly one of these, so no
// general atan2 is ever needed (spec.md §4.8).
func octant(d geom.Point) int {
	sx, sy := sign(d.X), sign(d.Y)
	switch {
	case sx == 1 && sy == 0:
		return 0 // E
	case sx == 1 && sy == 1:
		return 1 // NE
	case sx == 0 && sy == 1:
		return 2 // N
	case sx == -1 && sy == 1:
		return 3 // NW
	case sx == -1 && sy == 0:
		return 4 // W
	case sx == -1 && sy == -1:
		return 5 // SW
	case sx == 0 && sy == -1:
		return 6 // S
	default:
		return 7 // SE
	}
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ccwTurn returns how far (0..7 octant steps, counterclockwise) out
// lies from the direction reverse of in.
func ccwTurn(in, out geom.Point) int {
	reverse := (octant(in) + 4) % 8
	return (octant(out) - reverse + 8) % 8
}
