package xoverlay

import "testing"

// shoelaceArea2 returns twice the signed area of a contour (shoelace
// formula), matching internal/extract's own area convention.
func shoelaceArea2(c Contour) int64 {
	var sum int64
	n := len(c)
	for i := 0; i < n; i++ {
		p0, p1 := c[i], c[(i+1)%n]
		sum += int64(p0.X)*int64(p1.Y) - int64(p1.X)*int64(p0.Y)
	}
	return sum
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// netArea sums each shape's outer area minus its holes' areas, giving
// the total unsigned area the shape collection covers.
func netArea(shapes IntShapes) int64 {
	var total int64
	for _, s := range shapes {
		total += abs64(shoelaceArea2(s.Outer)) / 2
		for _, h := range s.Holes {
			total -= abs64(shoelaceArea2(h)) / 2
		}
	}
	return total
}

// TestClosureOctilinear checks spec.md §8's closure property: every
// emitted ring's consecutive points (including the implicit closing
// edge) differ only in one of the 8 octilinear unit directions.
func TestClosureOctilinear(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	diamond := Contour{{5, -5}, {15, 5}, {5, 15}, {-5, 5}}
	ov, err := New(a, []Contour{diamond}, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	shapes, err := ov.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	checkRing := func(r Contour) {
		n := len(r)
		if n < 3 {
			t.Fatalf("ring has %d points, want >= 3", n)
		}
		for i := 0; i < n; i++ {
			p0, p1 := r[i], r[(i+1)%n]
			dx, dy := int64(p1.X)-int64(p0.X), int64(p1.Y)-int64(p0.Y)
			if dx == 0 && dy == 0 {
				t.Errorf("ring has a zero-length edge at index %d", i)
				continue
			}
			if !(dx == 0 || dy == 0 || dx == dy || dx == -dy) {
				t.Errorf("edge (%d,%d)-(%d,%d) is not octilinear", p0.X, p0.Y, p1.X, p1.Y)
			}
		}
	}

	for _, s := range shapes {
		checkRing(s.Outer)
		for _, h := range s.Holes {
			checkRing(h)
		}
	}
}

// TestIdempotence: running Subject/NonZero on a shape's own output
// (as subject, with an empty clip) returns a congruent shape — same
// total area and shape/hole counts (spec.md §8 "Idempotence").
func TestIdempotence(t *testing.T) {
	outer := square(0, 0, 20, 20)
	hole := Contour{{5, 5}, {5, 15}, {15, 15}, {15, 5}}
	ov, err := New([]Contour{outer, hole}, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	once, err := ov.Run(NonZero, Subject)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	asSubject := make([]Contour, 0, len(once)*2)
	for _, s := range once {
		asSubject = append(asSubject, s.Outer)
		asSubject = append(asSubject, s.Holes...)
	}

	ov2, err := New(asSubject, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() (round 2) error: %v", err)
	}
	twice, err := ov2.Run(NonZero, Subject)
	if err != nil {
		t.Fatalf("Run() (round 2) error: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("round 1 = %d shapes, round 2 = %d shapes", len(once), len(twice))
	}
	if netArea(once) != netArea(twice) {
		t.Fatalf("round 1 area = %d, round 2 area = %d", netArea(once), netArea(twice))
	}
}

// TestRoundTrip: feeding an overlay's output back as subject with an
// empty clip under Subject/NonZero reproduces the same total area
// (spec.md §8 "Round-trip").
func TestRoundTrip(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	b := []Contour{square(4, 4, 16, 16)}
	ov, err := New(a, b, AutoSolver())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	unioned, err := ov.Run(NonZero, Union)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	fedBack := make([]Contour, 0, len(unioned))
	for _, s := range unioned {
		fedBack = append(fedBack, s.Outer)
		fedBack = append(fedBack, s.Holes...)
	}
	ov2, err := New(fedBack, nil, AutoSolver())
	if err != nil {
		t.Fatalf("New() (round-trip) error: %v", err)
	}
	again, err := ov2.Run(NonZero, Subject)
	if err != nil {
		t.Fatalf("Run() (round-trip) error: %v", err)
	}

	if netArea(unioned) != netArea(again) {
		t.Fatalf("round-trip area = %d, want %d", netArea(again), netArea(unioned))
	}
}

// TestAreaParitySymmetry checks spec.md §8's "area(A ∪ B) + area(A ∩
// B) = area(A) + area(B)" for two overlapping, non-self-intersecting
// rectangles (no holes produced by either operation, so netArea is a
// plain unsigned sum).
func TestAreaParitySymmetry(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	b := []Contour{square(4, 4, 16, 16)}

	areaOf := func(subj, clip []Contour, rule OverlayRule) int64 {
		ov, err := New(subj, clip, AutoSolver())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		shapes, err := ov.Run(NonZero, rule)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		return netArea(shapes)
	}

	areaA := areaOf(a, nil, Subject)
	areaB := areaOf(b, nil, Subject)
	union := areaOf(a, b, Union)
	intersect := areaOf(a, b, Intersect)

	if union+intersect != areaA+areaB {
		t.Fatalf("area(union)=%d + area(intersect)=%d = %d, want area(A)=%d + area(B)=%d = %d",
			union, intersect, union+intersect, areaA, areaB, areaA+areaB)
	}
}

// TestXorCommutative extends TestUnionCommutative's rule to the other
// two rules spec.md §8 names as commutative.
func TestXorCommutative(t *testing.T) {
	a := []Contour{square(0, 0, 10, 10)}
	b := []Contour{square(5, 5, 15, 15)}

	for _, rule := range []OverlayRule{Union, Intersect, Xor} {
		ov1, err := New(a, b, AutoSolver())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		r1, err := ov1.Run(NonZero, rule)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}

		ov2, err := New(b, a, AutoSolver())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		r2, err := ov2.Run(NonZero, rule)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}

		if netArea(r1) != netArea(r2) {
			t.Errorf("rule %v: area(A,B)=%d != area(B,A)=%d", rule, netArea(r1), netArea(r2))
		}
	}
}
