package canvas

// BeginPath discards the current path.
func (c *Canvas) BeginPath() { c.path.BeginPath() }

// ClosePath closes the current sub-path.
func (c *Canvas) ClosePath() { c.path.ClosePath() }

// MoveTo starts a new sub-path at (x,y) in canvas space.
func (c *Canvas) MoveTo(x, y float64) {
	if !c.st.matrix.Invertible() || !allValid(x, y) {
		return
	}
	c.path.MoveTo(c.st.matrix, x, y)
}

// LineTo appends a line segment to (x,y).
func (c *Canvas) LineTo(x, y float64) {
	if !c.st.matrix.Invertible() || !allValid(x, y) {
		return
	}
	c.path.LineTo(c.st.matrix, x, y)
}

// QuadraticCurveTo appends a quadratic Bezier segment.
func (c *Canvas) QuadraticCurveTo(cx, cy, x, y float64) {
	if !c.st.matrix.Invertible() || !allValid(cx, cy, x, y) {
		return
	}
	c.path.QuadraticCurveTo(c.st.matrix, cx, cy, x, y)
}

// BezierCurveTo appends a cubic Bezier segment.
func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.st.matrix.Invertible() || !allValid(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	c.path.BezierCurveTo(c.st.matrix, c1x, c1y, c2x, c2y, x, y)
}

// ArcTo appends a circular-arc-joined corner.
func (c *Canvas) ArcTo(vx, vy, p2x, p2y, r float64) {
	if !allValid(vx, vy, p2x, p2y, r) {
		return
	}
	c.path.ArcTo(c.st.matrix, vx, vy, p2x, p2y, r)
}

// Arc appends a circular arc.
func (c *Canvas) Arc(cx, cy, r, a1, a2 float64, ccw bool) {
	if !c.st.matrix.Invertible() || !allValid(cx, cy, r, a1, a2) {
		return
	}
	c.path.Arc(c.st.matrix, cx, cy, r, a1, a2, ccw)
}

// Rectangle appends a closed rectangular sub-path.
func (c *Canvas) Rectangle(x, y, w, h float64) {
	if !c.st.matrix.Invertible() || !allValid(x, y, w, h) {
		return
	}
	c.path.Rectangle(c.st.matrix, x, y, w, h)
}
