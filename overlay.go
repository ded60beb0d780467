package xoverlay

import (
	"math"

	"github.com/gogpu/xoverlay/internal/cutmerge"
	"github.com/gogpu/xoverlay/internal/extract"
	"github.com/gogpu/xoverlay/internal/fillsweep"
	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/graph"
	"github.com/gogpu/xoverlay/internal/ingest"
	"github.com/gogpu/xoverlay/internal/layout"
	"github.com/gogpu/xoverlay/internal/overlayfilter"
	"github.com/gogpu/xoverlay/internal/segment"
	"github.com/gogpu/xoverlay/internal/solver"
	"github.com/gogpu/xoverlay/internal/xlog"
	"github.com/gogpu/xoverlay/internal/xsect"
)

// Solver controls how many goroutines process columns in parallel.
// The zero value is equivalent to AutoSolver.
type Solver struct {
	cpu solver.CPUCount
}

// AutoSolver uses the platform's available parallelism.
func AutoSolver() Solver { return Solver{cpu: solver.Auto()} }

// FixedSolver forces exactly n goroutines.
func FixedSolver(n int) Solver { return Solver{cpu: solver.Fixed(n)} }

// SingleSolver forces strictly sequential execution.
func SingleSolver() Solver { return Solver{cpu: solver.Single()} }

// Overlay holds two contour collections and the configuration needed
// to run Boolean operations on them. An Overlay is immutable once
// built and may be shared across concurrent Run calls.
type Overlay struct {
	subject, clip []ingest.Contour
	opts          options
	solver        Solver
}

// New builds an Overlay from subject and clip contour collections.
// Contours with a non-octilinear edge abort construction with
// ErrNotValidPath; contours that collapse to fewer than three points
// after cleanup are silently dropped. If both collections end up
// empty, New returns ErrEmptyPath.
func New(subject, clip []Contour, solv Solver, opts ...Option) (*Overlay, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if len(subject) == 0 && len(clip) == 0 {
		return nil, ErrEmptyPath
	}

	ov := &Overlay{
		subject: toInternalContours(subject),
		clip:    toInternalContours(clip),
		opts:    o,
		solver:  solv,
	}
	if _, _, err := ov.buildColumns(); err != nil {
		return nil, err
	}
	return ov, nil
}

func toInternalContours(cs []Contour) []ingest.Contour {
	out := make([]ingest.Contour, len(cs))
	for i, c := range cs {
		pts := make(ingest.Contour, len(c))
		for j, p := range c {
			pts[j] = geom.Pt(p.X, p.Y)
		}
		out[i] = pts
	}
	return out
}

// Run executes the full pipeline once and returns the resulting
// shapes.
func (ov *Overlay) Run(fillRule FillRule, overlayRule OverlayRule) (IntShapes, error) {
	columns, _, err := ov.buildColumns()
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, nil
	}
	xlog.Get().Debug("overlay run starting",
		"columns", len(columns), "cpu_count", ov.solver.cpu.Count(),
		"fill_rule", fillRule, "overlay_rule", overlayRule)

	linkRanges := make([][]overlayfilter.OverlayLink, len(columns))
	err = solver.Run(len(columns), ov.solver.cpu, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			col := columns[i]
			marks := xsect.FindMarks(col)
			cutmerge.Process(col, marks)
			fillsweep.Sweep(col, fillRule.toInternal())
			linkRanges[i] = overlayfilter.Emit(col, overlayRule.toInternal())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var total int
	for i, r := range linkRanges {
		columns[i].LinksStart = total
		columns[i].LinksCount = len(r)
		total += len(r)
	}
	links := make([]overlayfilter.OverlayLink, total)
	for i, r := range linkRanges {
		copy(links[columns[i].LinksStart:], r)
	}

	xlog.Get().Debug("columns processed, building planar graph", "links", len(links))

	g := graph.Build(links)
	res := extract.Extract(g, extract.Options{
		OutputDirection:         ov.opts.outputDirection,
		PreserveOutputCollinear: ov.opts.preserveOutputCollinear,
		MinOutputArea:           ov.opts.minOutputArea,
	})
	xlog.Get().Debug("extraction complete", "nodes", len(g.Nodes), "shapes", len(res.Shapes))

	shapes := make(IntShapes, len(res.Shapes))
	for i, s := range res.Shapes {
		shapes[i] = Shape{
			Outer: ringToContour(s.Outer),
			Holes: make([]Contour, len(s.Holes)),
		}
		for j, h := range s.Holes {
			shapes[i].Holes[j] = ringToContour(h)
		}
	}
	return shapes, nil
}

// RunInto resets dst and writes the result of Run into it, allowing
// a caller to reuse a backing slice across repeated calls.
func (ov *Overlay) RunInto(fillRule FillRule, overlayRule OverlayRule, dst *IntShapes) error {
	shapes, err := ov.Run(fillRule, overlayRule)
	if err != nil {
		return err
	}
	*dst = append((*dst)[:0], shapes...)
	return nil
}

func ringToContour(r extract.Ring) Contour {
	out := make(Contour, len(r))
	for i, p := range r {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

func (ov *Overlay) buildColumns() ([]*segment.Column, layout.XLayout, error) {
	minX, maxX, elements := boundsAndCount(ov.subject, ov.clip)
	if elements == 0 {
		return nil, layout.XLayout{}, nil
	}

	xl := layout.NewXLayoutForCPU(minX, maxX, ov.solver.cpu.Count())

	columns := make([]*segment.Column, xl.Count())
	for i := range columns {
		lo, hi := xl.Borders(i)
		columns[i] = segment.NewColumn(lo, hi)
	}

	if err := ingest.Ingest(columns, xl, ov.subject, geom.Subject, ov.opts.preserveInputCollinear); err != nil {
		return nil, xl, err
	}
	if err := ingest.Ingest(columns, xl, ov.clip, geom.Clip, ov.opts.preserveInputCollinear); err != nil {
		return nil, xl, err
	}

	return columns, xl, nil
}

func boundsAndCount(collections ...[]ingest.Contour) (minX, maxX int32, elements int) {
	minX, maxX = math.MaxInt32, math.MinInt32
	for _, cs := range collections {
		for _, c := range cs {
			elements += len(c)
			for _, p := range c {
				if p.X < minX {
					minX = p.X
				}
				if p.X > maxX {
					maxX = p.X
				}
			}
		}
	}
	if elements == 0 {
		return 0, 0, 0
	}
	return minX, maxX, elements
}
