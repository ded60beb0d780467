package xoverlay

import (
	"errors"
	"testing"
)

func square(x0, y0, x1, y1 int32) Contour {
	return Contour{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestNewRejectsEmptyInputs(t *testing.T) {
	_, err := New(nil, nil, AutoSolver())
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("New() error = %v, want ErrEmptyPath", err)
	}
}

func TestNewRejectsBadSlope(t *testing.T) {
	bad := Contour{{0, 0}, {3, 1}, {5, 5}}
	_, err := New([]Contour{bad}, nil, AutoSolver())
	if !errors.Is(err, ErrNotValidPath) {
		t.Fatalf("New() error = %v, want ErrNotValidPath", err)
	}
}

func TestUnitSquareUnion(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	ov, err := New(a, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Run() = %d shapes, want 1", len(shapes))
	}
	if len(shapes[0].Outer) != 4 {
		t.Errorf("outer ring has %d points, want 4", len(shapes[0].Outer))
	}
}

func TestTwoHalvesUnion(t *testing.T) {
	left := []Contour{square(0, 0, 10, 10)}
	right := []Contour{square(10, 0, 20, 10)}
	ov, err := New(left, right, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Run() = %d shapes, want 1 (merged rectangle)", len(shapes))
	}
}

func TestSquareWithHole(t *testing.T) {
	outer := square(0, 0, 20, 20)
	hole := Contour{{5, 5}, {5, 15}, {15, 15}, {15, 5}}
	ov, err := New([]Contour{outer, hole}, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(EvenOdd, Subject)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Run() = %d shapes, want 1", len(shapes))
	}
}

func TestOverlappingSquaresIntersect(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	b := []Contour{square(5, 0, 15, 10)}
	ov, err := New(a, b, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(NonZero, Intersect)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("Run() = %d shapes, want 1", len(shapes))
	}
}

func TestDiagonalDiamondUnion(t *testing.T) {
	diamond := Contour{{10, 0}, {20, 10}, {10, 20}, {0, 10}}
	sq := square(0, 0, 10, 10)
	ov, err := New([]Contour{sq}, []Contour{diamond}, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := ov.Run(NonZero, Union); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestDeterministicAcrossSolvers(t *testing.T) {
	a := []Contour{square(0, 0, 40, 40)}
	b := []Contour{square(20, 20, 60, 60)}

	single, err := New(a, b, SingleSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	r1, err := single.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	parallel, err := New(a, b, FixedSolver(4))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	r2, err := parallel.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(r1) != len(r2) {
		t.Fatalf("serial produced %d shapes, parallel produced %d", len(r1), len(r2))
	}
}

func TestUnionCommutative(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	b := []Contour{square(5, 5, 15, 15)}

	ov1, _ := New(a, b, AutoSolver())
	r1, err := ov1.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	ov2, _ := New(b, a, AutoSolver())
	r2, err := ov2.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(r1) != len(r2) {
		t.Fatalf("Union(A,B) = %d shapes, Union(B,A) = %d shapes", len(r1), len(r2))
	}
}

func TestRunIntoReusesDestination(t *testing.T) {
	ov, err := New([]Contour{square(0, 0, 10, 10)}, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var dst IntShapes
	if err := ov.RunInto(NonZero, Union, &dst); err != nil {
		t.Fatalf("RunInto() error: %v", err)
	}
	if len(dst) != 1 {
		t.Fatalf("RunInto() = %d shapes, want 1", len(dst))
	}
}

func TestMinOutputAreaDropsSliver(t *testing.T) {
	sliver := square(0, 0, 1, 1)
	ov, err := New([]Contour{sliver}, nil, AutoSolver(), WithMinOutputArea(1000))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(shapes) != 0 {
		t.Errorf("Run() = %d shapes, want 0 (below min area)", len(shapes))
	}
}
