package canvas

import "math"

const collinearEpsilon = 1e-4

// BeginPath discards all sub-paths.
func (p *Path) BeginPath() {
	p.Reset()
}

// MoveTo starts a new sub-path at (x,y) under m.
func (p *Path) MoveTo(m Matrix, x, y float64) {
	p.beginSubpath(m.TransformPoint(Point{X: x, Y: y}))
}

// ClosePath closes the current sub-path, per Path.closeCurrentSubpath.
func (p *Path) ClosePath() {
	if p.IsEmpty() {
		return
	}
	p.closeCurrentSubpath()
}

// LineTo appends a straight segment (as a degenerate cubic) to (x,y) under
// m. On an empty path this behaves like MoveTo. Zero-length segments
// (post-transform) are discarded.
func (p *Path) LineTo(m Matrix, x, y float64) {
	pt := m.TransformPoint(Point{X: x, Y: y})
	if p.lastSubpath() == nil {
		p.beginSubpath(pt)
		return
	}
	if pt == p.current {
		return
	}
	c1 := p.current.Lerp(pt, 1.0/3.0)
	c2 := p.current.Lerp(pt, 2.0/3.0)
	p.appendCubic(c1, c2, pt)
}

// QuadraticCurveTo elevates a quadratic Bezier to cubic via the standard
// 2/3-lerp rule. If the path is empty, the control point seeds an implicit
// MoveTo.
func (p *Path) QuadraticCurveTo(m Matrix, cx, cy, x, y float64) {
	cp := m.TransformPoint(Point{X: cx, Y: cy})
	end := m.TransformPoint(Point{X: x, Y: y})
	if p.lastSubpath() == nil {
		p.beginSubpath(cp)
	}
	c1 := p.current.Lerp(cp, 2.0/3.0)
	c2 := end.Lerp(cp, 2.0/3.0)
	p.appendCubic(c1, c2, end)
}

// BezierCurveTo appends a cubic Bezier segment under m.
func (p *Path) BezierCurveTo(m Matrix, c1x, c1y, c2x, c2y, x, y float64) {
	c1 := m.TransformPoint(Point{X: c1x, Y: c1y})
	c2 := m.TransformPoint(Point{X: c2x, Y: c2y})
	end := m.TransformPoint(Point{X: x, Y: y})
	if p.lastSubpath() == nil {
		p.beginSubpath(p.current)
	}
	p.appendCubic(c1, c2, end)
}

// Rectangle emits move_to, line_to x3, close_path for an axis-aligned
// rectangle under m.
func (p *Path) Rectangle(m Matrix, x, y, w, h float64) {
	p.MoveTo(m, x, y)
	p.LineTo(m, x+w, y)
	p.LineTo(m, x+w, y+h)
	p.LineTo(m, x, y+h)
	p.ClosePath()
}

// Arc appends a circular arc centered at (cx,cy) with radius r, from angle
// a1 to a2 (radians), in the direction given by ccw. The span is normalized
// to [-2*pi, 2*pi] in the requested direction; a line is drawn to the arc's
// start point first, then the sweep is subdivided into cubic Bezier
// segments using the standard alpha = 4/3*tan(segment/4) rule.
func (p *Path) Arc(m Matrix, cx, cy, r, a1, a2 float64, ccw bool) {
	if r < 0 {
		return
	}
	span := a2 - a1
	if ccw {
		for span > 0 {
			span -= 2 * math.Pi
		}
		if span < -2*math.Pi {
			span = -2 * math.Pi
		}
	} else {
		for span < 0 {
			span += 2 * math.Pi
		}
		if span > 2*math.Pi {
			span = 2 * math.Pi
		}
	}

	start := Point{X: cx + r*math.Cos(a1), Y: cy + r*math.Sin(a1)}
	p.LineTo(m, start.X, start.Y)

	const tau = 2 * math.Pi
	segments := int(math.Max(1, math.Round(16/tau*math.Abs(span))))
	step := span / float64(segments)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	ang := a1
	for s := 0; s < segments; s++ {
		next := ang + step
		p0 := Point{X: cx + r*math.Cos(ang), Y: cy + r*math.Sin(ang)}
		p3 := Point{X: cx + r*math.Cos(next), Y: cy + r*math.Sin(next)}
		t0 := Point{X: -math.Sin(ang), Y: math.Cos(ang)}
		t1 := Point{X: -math.Sin(next), Y: math.Cos(next)}
		c1 := p0.Add(t0.Mul(r * alpha))
		c2 := p3.Sub(t1.Mul(r * alpha))
		p.BezierCurveTo(m, c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
		ang = next
	}
}

// ArcTo appends a circular-arc-joined corner: a straight segment from the
// current point to where a circle of radius r touches the edge toward
// vertex, then the arc of that circle to where it touches the edge from
// vertex toward p2. Nothing further is drawn toward p2. Requires r >= 0; no-op if m is singular. If
// the three points are near-collinear, degenerates to a LineTo(vertex).
func (p *Path) ArcTo(m Matrix, vx, vy, p2x, p2y, r float64) {
	if r < 0 || !m.Invertible() {
		return
	}
	vertex := Point{X: vx, Y: vy}
	p2 := Point{X: p2x, Y: p2y}
	// Work in the already-transformed (device) space since the current
	// point is stored post-transform; vertex/p2 must be transformed first.
	vertex = m.TransformPoint(vertex)
	p2 = m.TransformPoint(p2)
	p0 := p.current

	d0 := p0.Sub(vertex)
	d1 := p2.Sub(vertex)
	l0 := d0.Length()
	l1 := d1.Length()
	if l0 == 0 || l1 == 0 {
		p.LineTo2(vertex)
		return
	}
	u0 := d0.Div(l0)
	u1 := d1.Div(l1)
	sinTheta := u0.Cross(u1)
	if math.Abs(sinTheta) < collinearEpsilon {
		p.LineTo2(vertex)
		return
	}

	cosTheta := u0.Dot(u1)
	theta := math.Acos(clampUnit(cosTheta))
	dist := r / math.Tan(theta/2)

	t0 := vertex.Add(u0.Mul(dist))
	t1 := vertex.Add(u1.Mul(dist))

	bis := u0.Add(u1).Normalize()
	centerDist := r / math.Sin(theta/2)
	center := vertex.Add(bis.Mul(centerDist))

	a1 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a2 := math.Atan2(t1.Y-center.Y, t1.X-center.X)

	sweepSign := math.Floor((a2-a1)/math.Pi)
	ccw := int(sweepSign)&1 == 1

	p.LineTo2(t0)
	p.arcDevice(center, r, a1, a2, ccw)
}

// LineTo2 appends a device-space line (used internally where the point is
// already transformed).
func (p *Path) LineTo2(pt Point) {
	if p.lastSubpath() == nil {
		p.beginSubpath(pt)
		return
	}
	if pt == p.current {
		return
	}
	c1 := p.current.Lerp(pt, 1.0/3.0)
	c2 := p.current.Lerp(pt, 2.0/3.0)
	p.appendCubic(c1, c2, pt)
}

// arcDevice is Arc's body operating directly in device space (points
// already transformed), used by ArcTo.
func (p *Path) arcDevice(center Point, r, a1, a2 float64, ccw bool) {
	span := a2 - a1
	if ccw {
		for span > 0 {
			span -= 2 * math.Pi
		}
	} else {
		for span < 0 {
			span += 2 * math.Pi
		}
	}
	const tau = 2 * math.Pi
	segments := int(math.Max(1, math.Round(16/tau*math.Abs(span))))
	step := span / float64(segments)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	ang := a1
	for s := 0; s < segments; s++ {
		next := ang + step
		p0 := Point{X: center.X + r*math.Cos(ang), Y: center.Y + r*math.Sin(ang)}
		p3 := Point{X: center.X + r*math.Cos(next), Y: center.Y + r*math.Sin(next)}
		t0 := Point{X: -math.Sin(ang), Y: math.Cos(ang)}
		t1 := Point{X: -math.Sin(next), Y: math.Cos(next)}
		c1 := p0.Add(t0.Mul(r * alpha))
		c2 := p3.Sub(t1.Mul(r * alpha))
		p.LineTo2(p0) // ensure continuity; no-op if already current
		c1p, c2p, p3p := c1, c2, p3
		p.appendCubicDevice(c1p, c2p, p3p)
		ang = next
	}
}

func (p *Path) appendCubicDevice(c1, c2, p2 Point) {
	if p.lastSubpath() == nil {
		p.beginSubpath(p.current)
	}
	p.appendCubic(c1, c2, p2)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
