package canvas

// LinearGradient paints by projecting the sample point onto the line from
// Start to End.
type LinearGradient struct {
	GradientBrush
	Start, End Point
}

// ColorAt evaluates the gradient at a point already in brush space.
func (g *LinearGradient) ColorAt(p Point) RGBA {
	line := g.End.Sub(g.Start)
	lenSq := line.LengthSquared()
	if lenSq == 0 {
		return Transparent
	}
	offset := p.Sub(g.Start).Dot(line) / lenSq
	return colorAtOffset(g.sorted(), offset)
}
