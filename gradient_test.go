package canvas

import "testing"

func TestColorAtOffsetNoStopsIsTransparent(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != Transparent {
		t.Fatalf("colorAtOffset(nil) = %+v, want Transparent", got)
	}
}

func TestColorAtOffsetSingleStopIsConstant(t *testing.T) {
	stops := []ColorStop{{Offset: 0.5, Color: White}}
	if got := colorAtOffset(stops, 0); got != White {
		t.Fatalf("single-stop gradient at 0 = %+v, want White", got)
	}
	if got := colorAtOffset(stops, 1); got != White {
		t.Fatalf("single-stop gradient at 1 = %+v, want White", got)
	}
}

func TestColorAtOffsetClampsBelowFirstAndAboveLast(t *testing.T) {
	stops := []ColorStop{{Offset: 0.2, Color: Black}, {Offset: 0.8, Color: White}}
	if got := colorAtOffset(stops, 0); got != Black {
		t.Fatalf("below first stop = %+v, want Black", got)
	}
	if got := colorAtOffset(stops, 1); got != White {
		t.Fatalf("above last stop = %+v, want White", got)
	}
}

func TestColorAtOffsetInterpolatesBetweenStops(t *testing.T) {
	stops := []ColorStop{{Offset: 0, Color: Black}, {Offset: 1, Color: White}}
	got := colorAtOffset(stops, 0.5)
	want := Black.Lerp(White, 0.5)
	if got != want {
		t.Fatalf("midpoint interpolation = %+v, want %+v", got, want)
	}
}

func TestGradientBrushAddColorStopRejectsOutOfRange(t *testing.T) {
	g := &GradientBrush{}
	g.AddColorStop(-0.1, Black)
	g.AddColorStop(1.1, Black)
	if len(g.Stops) != 0 {
		t.Fatalf("out-of-range offsets should be rejected, got %d stops", len(g.Stops))
	}
	g.AddColorStop(0.5, White)
	if len(g.Stops) != 1 {
		t.Fatalf("in-range offset should be accepted, got %d stops", len(g.Stops))
	}
}

func TestLinearGradientColorAtProjectsOntoLine(t *testing.T) {
	g := &LinearGradient{Start: Point{0, 0}, End: Point{10, 0}}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	got := g.ColorAt(Point{5, 0})
	want := Black.Lerp(White, 0.5)
	if got != want {
		t.Fatalf("midpoint color = %+v, want %+v", got, want)
	}
}

func TestLinearGradientZeroLengthLineIsTransparent(t *testing.T) {
	g := &LinearGradient{Start: Point{3, 3}, End: Point{3, 3}}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	if got := g.ColorAt(Point{3, 3}); got != Transparent {
		t.Fatalf("zero-length linear gradient = %+v, want Transparent", got)
	}
}

func TestRadialGradientColorAtConcentricCircles(t *testing.T) {
	g := &RadialGradient{Start: Point{0, 0}, End: Point{0, 0}, StartRadius: 0, EndRadius: 10}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	got := g.ColorAt(Point{5, 0})
	want := Black.Lerp(White, 0.5)
	if got != want {
		t.Fatalf("point at half radius = %+v, want %+v", got, want)
	}
}

func TestPickRadialRootLinearBranch(t *testing.T) {
	// span == dr*dr makes the quadratic's leading coefficient vanish.
	got, ok := pickRadialRoot(0, -100, 25, 0, 10)
	if !ok {
		t.Fatal("expected a valid root on the linear branch")
	}
	if got != 0.25 {
		t.Fatalf("linear branch root = %v, want 0.25", got)
	}
}

func TestPickRadialRootDegenerateToPointIsInvalid(t *testing.T) {
	_, ok := pickRadialRoot(0, 0, 25, 0, 0)
	if ok {
		t.Fatal("a degenerate point gradient with nonzero offset should have no valid root")
	}
}

func TestPickRadialRootPrefersLargerValidRoot(t *testing.T) {
	got, ok := pickRadialRoot(-100, 0, 25, 0, 10)
	if !ok {
		t.Fatal("expected a valid root")
	}
	if got != 0.5 {
		t.Fatalf("root = %v, want the larger valid root 0.5", got)
	}
}

func TestPickRadialRootNegativeDiscriminantIsInvalid(t *testing.T) {
	_, ok := pickRadialRoot(1, 0, 100, 0, 0)
	if ok {
		t.Fatal("a negative discriminant should yield no valid root")
	}
}
