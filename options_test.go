package xoverlay

import (
	"testing"

	"github.com/gogpu/xoverlay/internal/extract"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.preserveInputCollinear {
		t.Error("preserveInputCollinear default = true, want false")
	}
	if o.preserveOutputCollinear {
		t.Error("preserveOutputCollinear default = true, want false")
	}
	if o.outputDirection != extract.CounterClockwise {
		t.Errorf("outputDirection default = %v, want CounterClockwise", o.outputDirection)
	}
	if o.minOutputArea != 0 {
		t.Errorf("minOutputArea default = %d, want 0", o.minOutputArea)
	}
}

func TestWithPreserveInputCollinear(t *testing.T) {
	o := defaultOptions()
	WithPreserveInputCollinear(true)(&o)
	if !o.preserveInputCollinear {
		t.Error("preserveInputCollinear not set")
	}
}

func TestWithPreserveOutputCollinear(t *testing.T) {
	o := defaultOptions()
	WithPreserveOutputCollinear(true)(&o)
	if !o.preserveOutputCollinear {
		t.Error("preserveOutputCollinear not set")
	}
}

func TestWithOutputDirection(t *testing.T) {
	o := defaultOptions()
	WithOutputDirection(Clockwise)(&o)
	if o.outputDirection != extract.Clockwise {
		t.Errorf("outputDirection = %v, want Clockwise", o.outputDirection)
	}
}

func TestWithMinOutputArea(t *testing.T) {
	o := defaultOptions()
	WithMinOutputArea(42)(&o)
	if o.minOutputArea != 42 {
		t.Errorf("minOutputArea = %d, want 42", o.minOutputArea)
	}
}

func TestOptionsComposeInNew(t *testing.T) {
	ov, err := New([]Contour{square(0, 0, 10, 10)}, nil, AutoSolver(),
		WithOutputDirection(Clockwise),
		WithMinOutputArea(1),
		WithPreserveInputCollinear(true),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if ov.opts.outputDirection != extract.Clockwise {
		t.Errorf("outputDirection = %v, want Clockwise", ov.opts.outputDirection)
	}
	if ov.opts.minOutputArea != 1 {
		t.Errorf("minOutputArea = %d, want 1", ov.opts.minOutputArea)
	}
	if !ov.opts.preserveInputCollinear {
		t.Error("preserveInputCollinear not propagated through New")
	}
}
