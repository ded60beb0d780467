package ingest

import (
	"errors"
	"testing"

	"github.com/gogpu/xoverlay/internal/geom"
	"github.com/gogpu/xoverlay/internal/layout"
	"github.com/gogpu/xoverlay/internal/segment"
	"github.com/gogpu/xoverlay/internal/xerr"
)

func newColumns(xl layout.XLayout) []*segment.Column {
	cols := make([]*segment.Column, xl.Count())
	for i := range cols {
		lo, hi := xl.Borders(i)
		cols[i] = segment.NewColumn(lo, hi)
	}
	return cols
}

func TestCleanDropsDegenerateAndCollinear(t *testing.T) {
	c := Contour{
		geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(10, 0), // collinear middle at (5,0)
		geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(0, 10), // duplicate
	}
	got, ok := clean(c, false)
	if !ok {
		t.Fatal("clean() reported not-ok for a valid rectangle")
	}
	want := Contour{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	if len(got) != len(want) {
		t.Fatalf("clean() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("clean()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCleanPreservesCollinearWhenRequested(t *testing.T) {
	c := Contour{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	got, ok := clean(c, true)
	if !ok || len(got) != 5 {
		t.Fatalf("clean(preserve=true) = %v, ok=%v, want 5 points", got, ok)
	}
}

func TestCleanDropsSpikeEvenWhenCollinearPreserved(t *testing.T) {
	// (5,0) is a reversal, not a same-direction collinear point: the
	// walk goes (0,0)->(5,0) then immediately backtracks (5,0)->(0,0)
	// before continuing on to (10,0). preserveCollinear must still
	// drop it, since keeping it would hand the cut step a zero-length
	// edge once segments are ingested.
	c := Contour{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	got, ok := clean(c, true)
	if !ok {
		t.Fatal("clean(preserve=true) reported not-ok")
	}
	for _, p := range got {
		if p.Equal(geom.Pt(5, 0)) {
			t.Fatalf("clean(preserve=true) = %v, spike vertex (5,0) should have been dropped", got)
		}
	}
}

func TestCleanRejectsTooFewPoints(t *testing.T) {
	_, ok := clean(Contour{geom.Pt(0, 0), geom.Pt(1, 0)}, false)
	if ok {
		t.Error("expected a 2-point contour to be rejected")
	}
}

func TestClassifyRejectsBadSlope(t *testing.T) {
	_, err := classify(geom.Pt(0, 0), geom.Pt(3, 1))
	if !errors.Is(err, xerr.ErrNotValidPath) {
		t.Errorf("classify() error = %v, want ErrNotValidPath", err)
	}
}

func TestClassifyAllFourOrientations(t *testing.T) {
	cases := []struct {
		p0, p1 geom.Point
		want   edgeKind
	}{
		{geom.Pt(0, 0), geom.Pt(0, 5), kindVertical},
		{geom.Pt(0, 0), geom.Pt(5, 0), kindHorizontal},
		{geom.Pt(0, 0), geom.Pt(5, 5), kindPosDiagonal},
		{geom.Pt(0, 5), geom.Pt(5, 0), kindNegDiagonal},
	}
	for _, c := range cases {
		got, err := classify(c.p0, c.p1)
		if err != nil {
			t.Fatalf("classify(%v,%v) error: %v", c.p0, c.p1, err)
		}
		if got != c.want {
			t.Errorf("classify(%v,%v) = %v, want %v", c.p0, c.p1, got, c.want)
		}
	}
}

func TestIngestUnitSquareSingleColumn(t *testing.T) {
	xl := layout.NewXLayoutWithRect(0, 10, 4, 4, 1)
	cols := newColumns(xl)

	square := []Contour{{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}}
	if err := Ingest(cols, xl, square, geom.Subject, false); err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}

	var totalVert, totalHorz int
	for _, c := range cols {
		totalVert += len(c.Vert)
		totalHorz += len(c.Horz)
	}
	if totalVert != 2 || totalHorz != 2 {
		t.Errorf("got %d vert, %d horz segments, want 2 and 2", totalVert, totalHorz)
	}
}

func TestIngestSlicesHorizontalAtColumnBorders(t *testing.T) {
	xl := layout.XLayout{MinX: 0, MaxX: 15, LogWidth: 3, PartsCount: 2} // columns [0,7] [8,15]
	cols := newColumns(xl)

	horiz := []Contour{{geom.Pt(0, 0), geom.Pt(12, 0), geom.Pt(12, 4), geom.Pt(0, 4)}}
	if err := Ingest(cols, xl, horiz, geom.Subject, false); err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}

	if len(cols[0].Horz) != 2 || len(cols[1].Horz) != 2 {
		t.Fatalf("column horz counts = %d,%d; want 2,2 (each of the two horizontals sliced at x=8)",
			len(cols[0].Horz), len(cols[1].Horz))
	}
	if len(cols[1].BorderYs) != 2 {
		t.Errorf("column 1 BorderYs = %v, want 2 entries (y=0 and y=4)", cols[1].BorderYs)
	}
}

func TestIngestDiagonalBaseYRecomputedAtColumnBorder(t *testing.T) {
	xl := layout.XLayout{MinX: 0, MaxX: 15, LogWidth: 3, PartsCount: 2}
	cols := newColumns(xl)

	diamond := []Contour{{geom.Pt(0, 0), geom.Pt(12, 12), geom.Pt(12, 0)}}
	if err := Ingest(cols, xl, diamond, geom.Subject, false); err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}

	if len(cols[0].PosD) != 1 || len(cols[1].PosD) != 1 {
		t.Fatalf("expected the positive diagonal split across both columns, got %d/%d",
			len(cols[0].PosD), len(cols[1].PosD))
	}
	// The sub-piece in column 1 starts at x=8, so its base y must be 8
	// (y(x) = x on the line from (0,0) to (12,12)).
	if got := cols[1].PosD[0].MinY; got != 8 {
		t.Errorf("column 1 diagonal MinY = %d, want 8", got)
	}
}

func TestIngestSkipsDegenerateContourSilently(t *testing.T) {
	xl := layout.NewXLayoutWithRect(0, 10, 4, 4, 1)
	cols := newColumns(xl)

	bad := []Contour{{geom.Pt(0, 0), geom.Pt(1, 0)}}
	if err := Ingest(cols, xl, bad, geom.Subject, false); err != nil {
		t.Fatalf("Ingest() should silently skip a too-small contour, got error: %v", err)
	}
	for _, c := range cols {
		if len(c.Vert) != 0 || len(c.Horz) != 0 {
			t.Error("degenerate contour should not have produced any segments")
		}
	}
}

func TestIngestRejectsInvalidSlope(t *testing.T) {
	xl := layout.NewXLayoutWithRect(0, 10, 4, 4, 1)
	cols := newColumns(xl)

	bad := []Contour{{geom.Pt(0, 0), geom.Pt(3, 1), geom.Pt(5, 5)}}
	err := Ingest(cols, xl, bad, geom.Subject, false)
	if !errors.Is(err, xerr.ErrNotValidPath) {
		t.Errorf("Ingest() error = %v, want ErrNotValidPath", err)
	}
}
