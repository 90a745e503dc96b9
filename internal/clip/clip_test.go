package clip

import "testing"

func sumUpTo(runs []Run, x, y uint16) float64 {
	sum := 0.0
	for _, r := range runs {
		if r.Y != y || r.X > x {
			continue
		}
		sum += float64(r.Delta)
	}
	return sum
}

func TestFullMaskPassesEverything(t *testing.T) {
	mask := FullMask(4, 4)
	for y := uint16(0); y < 4; y++ {
		if got := sumUpTo(mask, 1, y); got != 1 {
			t.Errorf("row %d: full mask coverage = %v, want 1", y, got)
		}
	}
}

func TestIntersectWithFullMaskIsIdentity(t *testing.T) {
	mask := FullMask(4, 4)
	path := []Run{{X: 1, Y: 1, Delta: 1}, {X: 3, Y: 1, Delta: -1}}
	got := Intersect(mask, path)
	if sumUpTo(got, 1, 1) < 0.99 {
		t.Fatalf("coverage inside the path at (1,1) = %v, want ~1", sumUpTo(got, 1, 1))
	}
	if sumUpTo(got, 0, 1) > 0.01 {
		t.Fatalf("coverage outside the path at (0,1) = %v, want ~0", sumUpTo(got, 0, 1))
	}
}

func TestIntersectOfDisjointRegionsIsEmpty(t *testing.T) {
	mask := []Run{{X: 0, Y: 0, Delta: 1}, {X: 2, Y: 0, Delta: -1}}
	path := []Run{{X: 4, Y: 0, Delta: 1}, {X: 6, Y: 0, Delta: -1}}
	got := Intersect(mask, path)
	for x := uint16(0); x < 8; x++ {
		if sumUpTo(got, x, 0) > 0.01 {
			t.Fatalf("disjoint intersect nonzero at x=%d: %v", x, got)
		}
	}
}
