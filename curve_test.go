package canvas

import "testing"

func TestFlattenPathStraightLineStaysTwoPoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 100, 0)
	polys := FlattenPath(p, false, 0)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polyline, got %d", len(polys))
	}
	poly := polys[0]
	if len(poly.Points) != 2 {
		t.Fatalf("a straight line_to (degenerate cubic) should flatten to its 2 endpoints, got %d", len(poly.Points))
	}
}

func TestFlattenPathClosedFlagPropagates(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 10, 0)
	p.LineTo(Identity(), 10, 10)
	p.ClosePath()
	polys := FlattenPath(p, false, 0)
	if !polys[0].Closed {
		t.Fatal("flattened polyline should carry the sub-path's closed flag")
	}
}

func TestFlattenPathCurveStaysWithinTolerance(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.BezierCurveTo(Identity(), 0, 100, 100, 100, 100, 0)
	polys := FlattenPath(p, false, 0)
	poly := polys[0]
	if len(poly.Points) < 4 {
		t.Fatalf("a curved segment should flatten to more than a couple of points, got %d", len(poly.Points))
	}
	// Every flattened vertex should lie on or near the convex hull implied
	// by the control polygon: within the bounding box padded by tolerance.
	for _, pt := range poly.Points {
		if pt.X < -1 || pt.X > 101 || pt.Y < -1 || pt.Y > 101 {
			t.Fatalf("flattened point %v strayed outside the control polygon's bounding box", pt)
		}
	}
}

func TestFlattenPathTwoSegmentsProducesTwoPieces(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 10, 0)
	p.LineTo(Identity(), 10, 10)
	polys := FlattenPath(p, false, 0)
	// Two straight segments flatten to exactly 3 vertices: start, corner, end.
	if len(polys[0].Points) != 3 {
		t.Fatalf("expected 3 vertices for two straight segments, got %d", len(polys[0].Points))
	}
}

func TestTessellateAcceptsAlreadyFlatCurve(t *testing.T) {
	var out []Point
	// Control points collinear with the endpoints: already flat.
	addBezier(Point{0, 0}, Point{33, 0}, Point{66, 0}, Point{100, 0}, false, 0, func(p Point) {
		out = append(out, p)
	})
	if len(out) != 1 {
		t.Fatalf("a collinear cubic should flatten to just its endpoint, got %d points: %v", len(out), out)
	}
}

func TestCurvatureExtremumOfASymmetricArch(t *testing.T) {
	t_, ok := curvatureExtremum(Point{0, 0}, Point{0, 100}, Point{100, 100}, Point{100, 0})
	if !ok {
		t.Fatal("expected an interior curvature extremum for a symmetric arch")
	}
	if t_ <= 0 || t_ >= 1 {
		t.Fatalf("curvature extremum t=%v out of (0,1)", t_)
	}
	if d := t_ - 0.5; d > 1e-9 || d < -1e-9 {
		t.Fatalf("curvature extremum of a symmetric arch t=%v, want 0.5", t_)
	}
}

func TestSplitCubicMatchesEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{10, 20}, Point{20, 20}, Point{30, 0}
	left, right := splitCubic(p0, p1, p2, p3, 0.5)
	if left[0] != p0 {
		t.Fatalf("left piece should start at p0, got %v", left[0])
	}
	if right[3] != p3 {
		t.Fatalf("right piece should end at p3, got %v", right[3])
	}
	if left[3] != right[0] {
		t.Fatalf("split pieces should share their junction point: %v vs %v", left[3], right[0])
	}
}

func TestDerivativeRootsOfMonotonicChannelIsEmpty(t *testing.T) {
	roots := derivativeRoots(0, 10, 20, 30)
	if len(roots) != 0 {
		t.Fatalf("a monotonically increasing channel should have no interior extrema, got %v", roots)
	}
}

func TestWithinToleranceDistanceMeasure(t *testing.T) {
	if !withinTolerance(Point{0, 0}, Point{10, 0}, Point{5, 0.01}) {
		t.Fatal("a point 0.01 off the chord should be within the 0.125 tolerance")
	}
	if withinTolerance(Point{0, 0}, Point{10, 0}, Point{5, 5}) {
		t.Fatal("a point 5 off the chord should not be within tolerance")
	}
}

func TestFlattenTessellationDepthIsBounded(t *testing.T) {
	// A cusp-like pathological curve should still terminate quickly via the
	// depth cap rather than recursing forever.
	var out []Point
	addBezier(Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{0, 0}, false, 0, func(p Point) {
		out = append(out, p)
	})
	if len(out) == 0 {
		t.Fatal("a degenerate zero-length curve should still emit its endpoint")
	}
}
