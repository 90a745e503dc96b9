package canvas

import "testing"

func TestMoveToThenLineToBuildsOneSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 10, 0)
	p.LineTo(Identity(), 10, 10)

	if len(p.Subpaths) != 1 {
		t.Fatalf("expected 1 sub-path, got %d", len(p.Subpaths))
	}
	sp := p.Subpaths[0]
	if sp.PointCount != 7 {
		t.Fatalf("expected 1+3*2=7 points for 2 line segments, got %d", sp.PointCount)
	}
	if sp.Closed {
		t.Fatal("sub-path should not be closed yet")
	}
}

func TestBareMoveToDoesNotEmitADegenerateSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 1, 1)
	p.MoveTo(Identity(), 2, 2)
	if len(p.Subpaths) != 1 {
		t.Fatalf("a second bare move_to should replace the first, got %d sub-paths", len(p.Subpaths))
	}
	if p.Points[0] != (Point{X: 2, Y: 2}) {
		t.Fatalf("replaced move_to anchor = %v, want (2,2)", p.Points[0])
	}
}

func TestLineToZeroLengthIsDiscarded(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 0, 0)
	if p.Subpaths[0].PointCount != 1 {
		t.Fatalf("zero-length line_to should leave a bare anchor, got PointCount=%d", p.Subpaths[0].PointCount)
	}
}

func TestClosePathAppendsClosingSegmentAndReopens(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 10, 0)
	p.LineTo(Identity(), 10, 10)
	p.ClosePath()

	if !p.Subpaths[0].Closed {
		t.Fatal("first sub-path should be closed")
	}
	if len(p.Subpaths) != 2 {
		t.Fatalf("close_path should reopen an empty sub-path, got %d sub-paths", len(p.Subpaths))
	}
	if p.Subpaths[1].PointCount != 1 {
		t.Fatalf("reopened sub-path should have exactly the anchor point, got %d", p.Subpaths[1].PointCount)
	}
}

func TestClosePathOnEmptyPathIsNoOp(t *testing.T) {
	p := NewPath()
	p.ClosePath()
	if !p.IsEmpty() {
		t.Fatal("close_path on an empty path should stay empty")
	}
}

func TestRectangleProducesFourSegmentsClosed(t *testing.T) {
	p := NewPath()
	p.Rectangle(Identity(), 0, 0, 10, 20)
	if len(p.Subpaths) != 2 {
		t.Fatalf("rectangle + reopened sub-path, got %d sub-paths", len(p.Subpaths))
	}
	if !p.Subpaths[0].Closed {
		t.Fatal("rectangle sub-path should be closed")
	}
}

func TestQuadraticCurveToElevatesToCubic(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.QuadraticCurveTo(Identity(), 5, 10, 10, 0)
	if p.Subpaths[0].PointCount != 4 {
		t.Fatalf("one quadratic segment should be 1 anchor + 1 cubic triple = 4 points, got %d", p.Subpaths[0].PointCount)
	}
}

func TestWalkVisitsEachSubpathOnce(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 1, 1)
	p.ClosePath()
	p.MoveTo(Identity(), 5, 5)
	p.LineTo(Identity(), 6, 6)

	count := 0
	p.Walk(func(sub Subpath, pts []Point) {
		count++
		if len(pts) != sub.PointCount {
			t.Errorf("Walk gave %d points for a sub-path with PointCount %d", len(pts), sub.PointCount)
		}
	})
	if count != 2 {
		t.Fatalf("Walk visited %d sub-paths, want 2", count)
	}
}

func TestClonedPathIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.LineTo(Identity(), 1, 1)
	clone := p.Clone()
	p.LineTo(Identity(), 2, 2)
	if len(clone.Points) == len(p.Points) {
		t.Fatal("clone should not see later mutations")
	}
}

func TestArcToCollinearPointsDegeneratesToLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(Identity(), 0, 0)
	p.ArcTo(Identity(), 5, 0, 10, 0, 2)
	// Collinear points: current (0,0), vertex (5,0), p2 (10,0).
	if p.Subpaths[0].PointCount != 4 {
		t.Fatalf("collinear ArcTo should degenerate to a single line_to, got PointCount=%d", p.Subpaths[0].PointCount)
	}
}
