package extract

import "github.com/gogpu/xoverlay/internal/geom"

// Shape is one output polygon: an outer boundary plus zero or more
// holes, in the orientation configured for the extraction.
type Shape struct {
	Outer Ring
	Holes []Ring
}

// containsPoint is a classic even-odd ray cast, adequate for
// octilinear rings (spec.md §4.8).
func containsPoint(r Ring, p geom.Point) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := r[i], r[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// assembleShapes groups outer rings and attaches each hole to the
// smallest-area outer ring that contains one of its vertices — the
// innermost enclosing candidate, so nested outers pick up the right
// hole when shapes are themselves nested (spec.md §4.8 step 4).
func assembleShapes(outers, holes []Ring) []Shape {
	shapes := make([]Shape, len(outers))
	for i, o := range outers {
		shapes[i] = Shape{Outer: o}
	}

	for _, h := range holes {
		if len(h) == 0 {
			continue
		}
		best := -1
		var bestArea int64
		probe := h[0]
		for i, o := range outers {
			if !containsPoint(o, probe) {
				continue
			}
			a := abs64(signedArea2(o))
			if best == -1 || a < bestArea {
				best = i
				bestArea = a
			}
		}
		if best >= 0 {
			shapes[best].Holes = append(shapes[best].Holes, h)
		}
	}
	return shapes
}
