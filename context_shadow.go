package canvas

import (
	"math"

	"github.com/vectorcanvas/canvas/internal/blend"
	"github.com/vectorcanvas/canvas/internal/scan"
	"github.com/vectorcanvas/canvas/internal/shadowblur"
)

// renderShadowIfNeeded runs the shadow pipeline for the just-drawn runs if
// a shadow is configured: a shadow renders only when its color has
// nonzero alpha and either the blur level or an offset is nonzero.
func (c *Canvas) renderShadowIfNeeded(runs []scan.Run, brush *Brush) {
	if c.st.shadowColor.A <= 0 {
		return
	}
	if c.st.shadowBlur == 0 && c.st.shadowOffsetX == 0 && c.st.shadowOffsetY == 0 {
		return
	}
	params := shadowblur.Derive(c.st.shadowBlur)
	border := shadowblur.Border(params.Radius)

	offsetRuns := translateRuns(runs, c.st.shadowOffsetX, c.st.shadowOffsetY)

	left, top, right, bottom := runsBounds(offsetRuns)
	left -= border
	top -= border
	right += border
	bottom += border
	left = clampInt(left, -border, c.width+border)
	right = clampInt(right, -border, c.width+border)
	top = clampInt(top, -border, c.height+border)
	bottom = clampInt(bottom, -border, c.height+border)
	if right <= left || bottom <= top {
		return
	}

	width := right - left
	height := bottom - top
	buf := make([]float64, width*height)
	rasterizeAlpha(buf, width, height, left, top, offsetRuns, brush, c.st.shadowOffsetX, c.st.shadowOffsetY)

	shadowblur.Blur(buf, width, height, params)

	c.compositeShadow(buf, width, height, left, top)
}

func translateRuns(runs []scan.Run, dx, dy float64) []scan.Run {
	idx := int(math.Round(dx))
	idy := int(math.Round(dy))
	out := make([]scan.Run, len(runs))
	for i, r := range runs {
		out[i] = scan.Run{X: shiftU16(r.X, idx), Y: shiftU16(r.Y, idy), Delta: r.Delta}
	}
	scan.Sort(out)
	return out
}

func shiftU16(v uint16, d int) uint16 {
	nv := int(v) + d
	if nv < 0 {
		nv = 0
	}
	if nv > 65535 {
		nv = 65535
	}
	return uint16(nv)
}

func runsBounds(runs []scan.Run) (left, top, right, bottom int) {
	if len(runs) == 0 {
		return 0, 0, 0, 0
	}
	left, right = int(runs[0].X), int(runs[0].X)
	top, bottom = int(runs[0].Y), int(runs[0].Y)
	for _, r := range runs {
		x, y := int(r.X), int(r.Y)
		if x < left {
			left = x
		}
		if x > right {
			right = x
		}
		if y < top {
			top = y
		}
		if y > bottom {
			bottom = y
		}
	}
	return left, top, right + 1, bottom + 1
}

// rasterizeAlpha walks the offset runs row by row, writing coverage times
// the brush's alpha at each covered pixel center into buf. The brush is
// evaluated at the pre-offset canvas position, since the shadow shares the
// source shape's paint.
func rasterizeAlpha(buf []float64, width, height, left, top int, runs []scan.Run, brush *Brush, dx, dy float64) {
	i := 0
	for i < len(runs) {
		y := runs[i].Y
		sum := 0.0
		x := -1
		for i < len(runs) && runs[i].Y == y {
			next := int(runs[i].X)
			coverage := blend.Clamp01(absf(sum))
			if coverage >= alphaEpsilon {
				for px := x; px < next; px++ {
					by := int(y) - top
					bx := px - left
					if bx < 0 || bx >= width || by < 0 || by >= height {
						continue
					}
					paint := brush.Eval(Point{X: float64(px) + 0.5 - dx, Y: float64(y) + 0.5 - dy})
					buf[by*width+bx] = coverage * paint.A
				}
			}
			sum += float64(runs[i].Delta)
			x = next
			i++
		}
	}
}

// compositeShadow blends the blurred shadow-alpha buffer, modulated by the
// shadow color, onto the canvas under the current clip mask and composite
// operation.
func (c *Canvas) compositeShadow(buf []float64, width, height, left, top int) {
	clipRuns := c.st.clip.Runs
	op := c.st.compositeOp
	shadowColor := c.st.shadowColor

	j := 0
	for y := 0; y < height; y++ {
		py := top + y
		if py < 0 || py >= c.height {
			continue
		}
		for j < len(clipRuns) && clipRuns[j].Y < uint16(py) {
			j++
		}
		clipSum := 0.0
		k := j
		for x := 0; x < width; x++ {
			px := left + x
			if px < 0 || px >= c.width {
				continue
			}
			for k < len(clipRuns) && clipRuns[k].Y == uint16(py) && int(clipRuns[k].X) <= px {
				clipSum += float64(clipRuns[k].Delta)
				k++
			}
			visibility := blend.Clamp01(absf(clipSum))
			if visibility < alphaEpsilon {
				continue
			}
			a := buf[y*width+x]
			if a <= 0 {
				continue
			}
			fore := blend.RGBA{R: shadowColor.R * a, G: shadowColor.G * a, B: shadowColor.B * a, A: shadowColor.A * a}
			back := c.pixmap.At(px, py)
			result := op.Composite(fore, blend.RGBA{R: back.R, G: back.G, B: back.B, A: back.A}, visibility)
			c.pixmap.Set(px, py, RGBA{R: result.R, G: result.G, B: result.B, A: result.A})
		}
	}
}
