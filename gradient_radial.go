package canvas

import "math"

// RadialGradient paints by interpolating a circle from (Start,
// StartRadius) to (End, EndRadius) and finding, for each sample point, the
// interpolation parameter t at which the circle passes through it.
type RadialGradient struct {
	GradientBrush
	Start, End               Point
	StartRadius, EndRadius   float64
}

// ColorAt evaluates the gradient at a point already in brush space.
func (g *RadialGradient) ColorAt(p Point) RGBA {
	line := g.End.Sub(g.Start)
	dr := g.EndRadius - g.StartRadius
	span := line.LengthSquared()

	rel := p.Sub(g.Start)
	a := span - dr*dr
	b := -2 * (rel.Dot(line) + g.StartRadius*dr)
	c := rel.LengthSquared() - g.StartRadius*g.StartRadius

	t, ok := pickRadialRoot(a, b, c, g.StartRadius, dr)
	if !ok {
		return Transparent
	}
	return colorAtOffset(g.sorted(), t)
}

func pickRadialRoot(a, b, c, startRadius, dr float64) (float64, bool) {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return 0, false
		}
		t := -c / b
		if startRadius+t*dr >= 0 {
			return t, true
		}
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	big, small := t1, t2
	if small > big {
		big, small = small, big
	}
	if startRadius+big*dr >= 0 {
		return big, true
	}
	if startRadius+small*dr >= 0 {
		return small, true
	}
	return 0, false
}
