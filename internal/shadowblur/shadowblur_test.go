package shadowblur

import (
	"math"
	"testing"
)

func TestDeriveZeroBlurIsNearlyIdentity(t *testing.T) {
	p := Derive(0)
	if p.Radius != 0 {
		t.Fatalf("Derive(0).Radius = %d, want 0", p.Radius)
	}
}

func TestDeriveRadiusGrowsWithBlur(t *testing.T) {
	small := Derive(2)
	large := Derive(20)
	if large.Radius < small.Radius {
		t.Fatalf("Derive(20).Radius = %d should be >= Derive(2).Radius = %d", large.Radius, small.Radius)
	}
}

func TestBorderMatchesRadiusFormula(t *testing.T) {
	if got := Border(3); got != 12 {
		t.Fatalf("Border(3) = %d, want 12", got)
	}
}

func TestBlurPreservesTotalMass(t *testing.T) {
	width, height := 20, 20
	buf := make([]float64, width*height)
	buf[10*width+10] = 1
	p := Derive(4)
	Blur(buf, width, height, p)

	total := 0.0
	for _, v := range buf {
		total += v
	}
	if math.Abs(total-1) > 0.05 {
		t.Fatalf("total mass after blur = %v, want close to 1", total)
	}
}

func TestBlurSpreadsASinglePixel(t *testing.T) {
	width, height := 20, 20
	buf := make([]float64, width*height)
	buf[10*width+10] = 1
	p := Derive(4)
	Blur(buf, width, height, p)

	if buf[10*width+10] >= 1 {
		t.Fatalf("center pixel retained full mass after blur: %v", buf[10*width+10])
	}
	if buf[10*width+11] <= 0 {
		t.Fatalf("neighbor pixel got no mass after blur: %v", buf[10*width+11])
	}
}

func TestBlurNoOpOnEmptyBuffer(t *testing.T) {
	p := Derive(4)
	Blur(nil, 0, 0, p)
}
