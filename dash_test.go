package canvas

import "testing"

func TestDashPolylinesEmptyPatternReturnsUnchanged(t *testing.T) {
	polys := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}
	got := DashPolylines(polys, nil, 0, Identity())
	if len(got) != 1 || len(got[0].Points) != 2 {
		t.Fatalf("empty dash pattern should pass polylines through unchanged, got %+v", got)
	}
}

func TestDashPolylinesZeroSumPatternReturnsUnchanged(t *testing.T) {
	polys := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}
	got := DashPolylines(polys, []float64{0, 0}, 0, Identity())
	if len(got) != 1 || len(got[0].Points) != 2 {
		t.Fatalf("all-zero dash pattern should pass polylines through unchanged, got %+v", got)
	}
}

func TestDashOneStraightLineProducesDashGapDash(t *testing.T) {
	poly := Polyline{Points: []Point{{0, 0}, {10, 0}}}
	pieces := dashOne(poly, []float64{4, 2}, 0, 6, Identity())
	if len(pieces) != 2 {
		t.Fatalf("a 10-long line dashed [4,2] should produce 2 dash pieces, got %d: %+v", len(pieces), pieces)
	}
	first := pieces[0].Points
	if first[0] != (Point{0, 0}) || first[len(first)-1] != (Point{4, 0}) {
		t.Fatalf("first dash piece = %v, want to run from (0,0) to (4,0)", first)
	}
	last := pieces[1].Points
	if last[0] != (Point{6, 0}) || last[len(last)-1] != (Point{10, 0}) {
		t.Fatalf("second dash piece = %v, want to run from (6,0) to (10,0)", last)
	}
}

func TestDashOneShortPolylineProducesNothing(t *testing.T) {
	poly := Polyline{Points: []Point{{0, 0}}}
	if got := dashOne(poly, []float64{4, 2}, 0, 6, Identity()); got != nil {
		t.Fatalf("a single-point polyline should dash to nothing, got %+v", got)
	}
}

func TestDashOneOffsetStartsMidGap(t *testing.T) {
	// Offset of 5 lands in the gap [4,6) of pattern [4,2]: the line should
	// start un-emitted and the first emitted vertex should be the dash start.
	poly := Polyline{Points: []Point{{0, 0}, {10, 0}}}
	pieces := dashOne(poly, []float64{4, 2}, 5, 6, Identity())
	if len(pieces) == 0 {
		t.Fatal("expected at least one dash piece with a mid-gap offset")
	}
	if pieces[0].Points[0].X == 0 {
		t.Fatalf("starting mid-gap should not emit from the polyline's own start, got %v", pieces[0].Points[0])
	}
}

func TestModWrapsIntoRange(t *testing.T) {
	if got := mod(7, 6); got != 1 {
		t.Fatalf("mod(7,6) = %v, want 1", got)
	}
	if got := mod(-1, 6); got != 5 {
		t.Fatalf("mod(-1,6) = %v, want 5", got)
	}
	if got := mod(3, 6); got != 3 {
		t.Fatalf("mod(3,6) = %v, want 3", got)
	}
}

func TestModByZeroIsZero(t *testing.T) {
	if got := mod(5, 0); got != 0 {
		t.Fatalf("mod(5,0) = %v, want 0", got)
	}
}

func TestPreTransformLengthUnderIdentity(t *testing.T) {
	got := preTransformLength(Point{0, 0}, Point{3, 4}, Identity())
	if got != 5 {
		t.Fatalf("preTransformLength = %v, want 5", got)
	}
}

func TestMergeClosedDashSeamClosesUncutRing(t *testing.T) {
	ring := Polyline{Points: []Point{{0, 0}, {10, 0}, {5, 10}, {0, 0}}, Closed: true}
	pieces := []Polyline{{Points: ring.Points}}
	merged := mergeClosedDashSeam(ring, pieces)
	if !merged[0].Closed {
		t.Fatal("a ring dashed with no cuts should come back closed")
	}
}

func TestMergeClosedDashSeamLeavesMultiplePiecesAlone(t *testing.T) {
	ring := Polyline{Points: []Point{{0, 0}, {10, 0}, {5, 10}}, Closed: true}
	pieces := []Polyline{
		{Points: []Point{{0, 0}, {4, 0}}},
		{Points: []Point{{6, 0}, {5, 10}}},
	}
	merged := mergeClosedDashSeam(ring, pieces)
	if len(merged) != 2 {
		t.Fatalf("a ring cut into multiple dash pieces should keep them separate, got %d", len(merged))
	}
}

func TestMergeClosedDashSeamSplicesPiecesSpanningTheSeam(t *testing.T) {
	// The ring's first piece starts at the seam and its last piece ends
	// back at the seam: these are two stubs of the same dash, split only
	// because the walk had to stop somewhere.
	ring := Polyline{Points: []Point{{0, 0}, {13, 0}, {0, 0}}, Closed: true}
	pieces := []Polyline{
		{Points: []Point{{0, 0}, {8, 0}}},
		{Points: []Point{{10, 0}, {13, 0}, {8, 0}}},
		{Points: []Point{{6, 0}, {0, 0}}},
	}
	merged := mergeClosedDashSeam(ring, pieces)
	if len(merged) != 2 {
		t.Fatalf("expected the seam-spanning stubs to splice into one piece, got %d pieces: %+v", len(merged), merged)
	}
	spliced := merged[0].Points
	want := []Point{{6, 0}, {0, 0}, {8, 0}}
	if len(spliced) != len(want) {
		t.Fatalf("spliced piece = %v, want %v", spliced, want)
	}
	for i := range want {
		if spliced[i] != want[i] {
			t.Fatalf("spliced piece = %v, want %v", spliced, want)
		}
	}
	if merged[1].Points[0] != (Point{10, 0}) {
		t.Fatalf("the untouched middle piece should survive unchanged, got %+v", merged[1])
	}
}
