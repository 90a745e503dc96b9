package canvas

import (
	"github.com/vectorcanvas/canvas/internal/blend"
	"github.com/vectorcanvas/canvas/internal/scan"
)

// alphaEpsilon is the coverage/visibility threshold below which a pixel is
// skipped, matching the 8-bit quantization boundary.
const alphaEpsilon = 1.0 / 8160.0

func toScanPoints(pts []Point) []scan.Point {
	out := make([]scan.Point, len(pts))
	for i, p := range pts {
		out[i] = p.ToScan()
	}
	return out
}

// pathToRuns flattens, viewport-clips, and scan-converts every sub-path of
// p (implicitly closed for the purposes of fill/clip coverage) into a
// canonical pixel-run list.
func (c *Canvas) pathToRuns(p *Path, padding float64) []scan.Run {
	polys := FlattenPath(p, false, 0)
	var runs []scan.Run
	for _, poly := range polys {
		clipped := scan.ClipToViewport(toScanPoints(poly.Points), float64(c.width), float64(c.height), padding)
		if len(clipped) < 2 {
			continue
		}
		n := len(clipped)
		for i := 0; i < n; i++ {
			a := clipped[i]
			b := clipped[(i+1)%n]
			runs = scan.AddRuns(runs, a, b)
		}
	}
	return scan.Merge(runs)
}

// strokeToRuns flattens for stroking, dashes if a pattern is set, expands
// the stroke to a fill outline, and scan-converts it.
func (c *Canvas) strokeToRuns(p *Path, padding float64) []scan.Run {
	polys := FlattenPath(p, true, c.st.lineWidth)
	if len(c.st.dashArray) > 0 && c.st.matrix.Invertible() {
		polys = DashPolylines(polys, c.st.dashArray, c.st.dashOffset, inverseOf(c.st.matrix))
	}
	outline := ExpandStroke(polys, StrokeStyle{
		Width:      c.st.lineWidth,
		MiterLimit: c.st.miterLimit,
		Cap:        c.st.lineCap,
		Join:       c.st.lineJoin,
	})
	var runs []scan.Run
	for _, poly := range outline {
		clipped := scan.ClipToViewport(toScanPoints(poly.Points), float64(c.width), float64(c.height), padding)
		if len(clipped) < 2 {
			continue
		}
		n := len(clipped)
		for i := 0; i < n; i++ {
			a := clipped[i]
			b := clipped[(i+1)%n]
			runs = scan.AddRuns(runs, a, b)
		}
	}
	return scan.Merge(runs)
}

func inverseOf(m Matrix) Matrix {
	return NewMatrix(m.invA, m.invB, m.invC, m.invD, m.invE, m.invF)
}

// Fill paints the current path's interior with the fill brush.
func (c *Canvas) Fill() {
	if !c.st.matrix.Invertible() || c.path.IsEmpty() {
		return
	}
	runs := c.pathToRuns(c.path, 0)
	c.composite(runs, &c.st.fillBrush)
	c.renderShadowIfNeeded(runs, &c.st.fillBrush)
}

// Stroke paints the current path's stroked outline with the stroke brush.
func (c *Canvas) Stroke() {
	if !c.st.matrix.Invertible() || c.path.IsEmpty() {
		return
	}
	runs := c.strokeToRuns(c.path, 0)
	c.composite(runs, &c.st.strokeBrush)
	c.renderShadowIfNeeded(runs, &c.st.strokeBrush)
}

// Clip intersects the current clip mask with the current path's coverage.
func (c *Canvas) Clip() {
	if !c.st.matrix.Invertible() || c.path.IsEmpty() {
		return
	}
	runs := c.pathToRuns(c.path, 0)
	newMask := c.st.clip.Clone()
	newMask.Intersect(runs)
	c.st.clip = newMask
}

// IsPointInPath reports whether (x,y) in canvas space would receive
// nonzero coverage from the current path under a one-off scan conversion.
func (c *Canvas) IsPointInPath(x, y float64) bool {
	if !c.st.matrix.Invertible() || c.path.IsEmpty() {
		return false
	}
	runs := c.pathToRuns(c.path, 0)
	px, py := int(x), int(y)
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return false
	}
	sum := 0.0
	for _, r := range runs {
		if int(r.Y) != py {
			continue
		}
		if int(r.X) > px {
			break
		}
		sum += float64(r.Delta)
	}
	cov := sum
	if cov < 0 {
		cov = -cov
	}
	return cov >= alphaEpsilon
}

// ClearRectangle clears a rectangle to transparent black, ignoring the
// clip mask and compositing operation.
func (c *Canvas) ClearRectangle(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	x0, y0 := int(x), int(y)
	x1, y1 := int(x+w), int(y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for py := max(y0, 0); py < min(y1, c.height); py++ {
		for px := max(x0, 0); px < min(x1, c.width); px++ {
			c.pixmap.Set(px, py, Transparent)
		}
	}
}

// FillRectangle fills a rectangle without mutating the current path.
func (c *Canvas) FillRectangle(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	scratch := NewPath()
	scratch.Rectangle(c.st.matrix, x, y, w, h)
	runs := c.pathToRuns(scratch, 0)
	c.composite(runs, &c.st.fillBrush)
	c.renderShadowIfNeeded(runs, &c.st.fillBrush)
}

// StrokeRectangle strokes a rectangle without mutating the current path.
// Both extents zero is a no-op; exactly one zero strokes the diagonal.
func (c *Canvas) StrokeRectangle(x, y, w, h float64) {
	if w == 0 && h == 0 {
		return
	}
	scratch := NewPath()
	if w == 0 || h == 0 {
		scratch.MoveTo(c.st.matrix, x, y)
		scratch.LineTo(c.st.matrix, x+w, y+h)
	} else {
		scratch.Rectangle(c.st.matrix, x, y, w, h)
	}
	runs := c.strokeToRuns(scratch, 0)
	c.composite(runs, &c.st.strokeBrush)
	c.renderShadowIfNeeded(runs, &c.st.strokeBrush)
}

// composite runs the main compositor: a merged walk over the path's runs
// and the clip mask's runs, evaluating paint and blending under the
// current composite operation.
func (c *Canvas) composite(pathRuns []scan.Run, brush *Brush) {
	clipRuns := c.st.clip.Runs
	op := c.st.compositeOp
	alpha := c.st.globalAlpha

	i, j := 0, 0
	var pathSum, clipSum float64
	haveRow := false
	var curY uint16

	for i < len(pathRuns) || j < len(clipRuns) {
		var y uint16
		switch {
		case i >= len(pathRuns):
			y = clipRuns[j].Y
		case j >= len(clipRuns):
			y = pathRuns[i].Y
		case pathRuns[i].Y <= clipRuns[j].Y:
			y = pathRuns[i].Y
		default:
			y = clipRuns[j].Y
		}
		if !haveRow || y != curY {
			pathSum, clipSum = 0, 0
			curY = y
			haveRow = true
		}

		var x uint16
		takePath := i < len(pathRuns) && pathRuns[i].Y == y
		takeClip := j < len(clipRuns) && clipRuns[j].Y == y
		switch {
		case takePath && takeClip:
			if pathRuns[i].X <= clipRuns[j].X {
				x = pathRuns[i].X
			} else {
				x = clipRuns[j].X
			}
		case takePath:
			x = pathRuns[i].X
		case takeClip:
			x = clipRuns[j].X
		default:
			continue
		}

		for i < len(pathRuns) && pathRuns[i].Y == y && pathRuns[i].X == x {
			pathSum += float64(pathRuns[i].Delta)
			i++
		}
		for j < len(clipRuns) && clipRuns[j].Y == y && clipRuns[j].X == x {
			clipSum += float64(clipRuns[j].Delta)
			j++
		}

		nextX := nextBreakpoint(pathRuns, clipRuns, i, j, y)
		visibility := blend.Clamp01(absf(clipSum))
		if visibility < alphaEpsilon {
			continue
		}
		coverage := blend.Clamp01(absf(pathSum))
		for px := int(x); px < int(nextX); px++ {
			if px < 0 || px >= c.width {
				continue
			}
			py := int(y)
			if py < 0 || py >= c.height {
				continue
			}
			fore := blend.RGBA{}
			if coverage >= alphaEpsilon {
				paint := brush.Eval(Point{X: float64(px) + 0.5, Y: float64(py) + 0.5})
				scaled := paint.Scale(coverage * alpha)
				fore = blend.RGBA{R: scaled.R, G: scaled.G, B: scaled.B, A: scaled.A}
			}
			back := c.pixmap.At(px, py)
			result := op.Composite(fore, blend.RGBA{R: back.R, G: back.G, B: back.B, A: back.A}, visibility)
			c.pixmap.Set(px, py, RGBA{R: result.R, G: result.G, B: result.B, A: result.A})
		}
	}
}

func nextBreakpoint(pathRuns, clipRuns []scan.Run, i, j int, y uint16) uint16 {
	next := uint16(0xFFFF)
	if i < len(pathRuns) && pathRuns[i].Y == y && pathRuns[i].X < next {
		next = pathRuns[i].X
	}
	if j < len(clipRuns) && clipRuns[j].Y == y && clipRuns[j].X < next {
		next = clipRuns[j].X
	}
	if next == 0xFFFF {
		return 0xFFFF
	}
	return next
}

