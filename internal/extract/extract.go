package extract

import (
	"github.com/gogpu/xoverlay/internal/graph"
	"github.com/gogpu/xoverlay/internal/xlog"
)

// Options configures the face-extraction post-processing step.
type Options struct {
	OutputDirection         Direction
	PreserveOutputCollinear bool
	MinOutputArea           int64
}

// Result is the outcome of one extraction pass.
type Result struct {
	Shapes []Shape
	Valid  bool // false if the walk hit a dead end (spec.md §4.8 failure semantics)
}

// Extract walks every link of g into closed rings, classifies each as
// an outer boundary or a hole, attaches holes to their enclosing
// outer, and normalises winding direction (spec.md §4.8).
func Extract(g *graph.Graph, opts Options) Result {
	wr := walkAll(g)
	if !wr.valid {
		xlog.Get().Warn("face extraction hit a dead end; continuing with partial rings",
			"rings", len(wr.rings), "nodes", len(g.Nodes), "links", len(g.Links))
	}

	var outers, holes []Ring
	for _, raw := range wr.rings {
		r, ok := postProcess(raw, opts.MinOutputArea, opts.PreserveOutputCollinear)
		if !ok {
			continue
		}
		if isOuterWinding(r) {
			outers = append(outers, r)
		} else {
			holes = append(holes, r)
		}
	}

	shapes := assembleShapes(outers, holes)
	for i := range shapes {
		shapes[i].Outer = normalizeOrder(shapes[i].Outer, opts.OutputDirection)
		holeDir := opposite(opts.OutputDirection)
		for j := range shapes[i].Holes {
			shapes[i].Holes[j] = normalizeOrder(shapes[i].Holes[j], holeDir)
		}
	}

	return Result{Shapes: shapes, Valid: wr.valid}
}

func opposite(d Direction) Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}
