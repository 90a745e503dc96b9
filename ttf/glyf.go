package ttf

import "encoding/binary"

// OutlineOp identifies one glyph-outline path command.
type OutlineOp int

const (
	OutlineMoveTo OutlineOp = iota
	OutlineLineTo
	OutlineCubicTo
	OutlineClose
)

// OutlineSegment is one command of a glyph's outline, in font units. For
// OutlineCubicTo, C1/C2/To are all populated; for OutlineLineTo and
// OutlineMoveTo only To is; OutlineClose carries no points.
type OutlineSegment struct {
	Op         OutlineOp
	C1, C2, To [2]float64
}

const maxCompositeDepth = 10

// Outline extracts a glyph's contours as a flat list of outline commands
// in font units, elevating quadratic on/off-curve contours to cubic
// Beziers via the same 2/3-lerp rule used for quadratic_curve_to.
// Composite glyphs are supported only when child offsets are literal
// coordinates; anchor-point (match-point) composites are skipped.
func (f *Face) Outline(glyph uint16) []OutlineSegment {
	return f.outline(glyph, 0, identity6())
}

type affine6 struct{ a, b, c, d, e, g float64 }

func identity6() affine6 { return affine6{a: 1, d: 1} }

func (m affine6) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.g
}

func (m affine6) then(child affine6) affine6 {
	return affine6{
		a: m.a*child.a + m.c*child.b,
		b: m.b*child.a + m.d*child.b,
		c: m.a*child.c + m.c*child.d,
		d: m.b*child.c + m.d*child.d,
		e: m.a*child.e + m.c*child.g + m.e,
		g: m.b*child.e + m.d*child.g + m.g,
	}
}

func (f *Face) outline(glyph uint16, depth int, xf affine6) []OutlineSegment {
	if depth > maxCompositeDepth || int(glyph)+1 >= len(f.loca) {
		return nil
	}
	start, end := f.loca[glyph], f.loca[glyph+1]
	if end <= start {
		return nil
	}
	g := f.tables["glyf"]
	if int(end) > len(g) {
		return nil
	}
	data := g[start:end]
	if len(data) < 10 {
		return nil
	}
	numContours := int16(binary.BigEndian.Uint16(data[0:2]))
	if numContours >= 0 {
		return f.simpleGlyph(data, int(numContours), xf)
	}
	return f.compositeGlyph(data, depth, xf)
}

func (f *Face) simpleGlyph(data []byte, numContours int, xf affine6) []OutlineSegment {
	off := 10
	if off+numContours*2 > len(data) {
		return nil
	}
	endPts := make([]int, numContours)
	for i := 0; i < numContours; i++ {
		endPts[i] = int(binary.BigEndian.Uint16(data[off+i*2:]))
	}
	off += numContours * 2

	if off+2 > len(data) {
		return nil
	}
	instrLen := int(binary.BigEndian.Uint16(data[off:]))
	off += 2 + instrLen

	numPoints := 0
	if numContours > 0 {
		numPoints = endPts[numContours-1] + 1
	}

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		if off >= len(data) {
			return nil
		}
		flag := data[off]
		off++
		flags[i] = flag
		i++
		if flag&0x08 != 0 {
			if off >= len(data) {
				return nil
			}
			repeat := int(data[off])
			off++
			for r := 0; r < repeat && i < numPoints; r++ {
				flags[i] = flag
				i++
			}
		}
	}

	xs := make([]int, numPoints)
	x := 0
	for i := 0; i < numPoints; i++ {
		flag := flags[i]
		if flag&0x02 != 0 {
			if off >= len(data) {
				return nil
			}
			d := int(data[off])
			off++
			if flag&0x10 == 0 {
				d = -d
			}
			x += d
		} else if flag&0x10 == 0 {
			if off+2 > len(data) {
				return nil
			}
			x += int(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		xs[i] = x
	}

	ys := make([]int, numPoints)
	y := 0
	for i := 0; i < numPoints; i++ {
		flag := flags[i]
		if flag&0x04 != 0 {
			if off >= len(data) {
				return nil
			}
			d := int(data[off])
			off++
			if flag&0x20 == 0 {
				d = -d
			}
			y += d
		} else if flag&0x20 == 0 {
			if off+2 > len(data) {
				return nil
			}
			y += int(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		ys[i] = y
	}

	var out []OutlineSegment
	start := 0
	for _, endIdx := range endPts {
		out = append(out, contourToSegments(xs[start:endIdx+1], ys[start:endIdx+1], flags[start:endIdx+1], xf)...)
		start = endIdx + 1
	}
	return out
}

// contourToSegments converts one quadratic on/off-curve contour to cubic
// outline commands. Off-curve points imply on-curve midpoints between
// consecutive off-curve points.
func contourToSegments(xs, ys []int, flags []byte, xf affine6) []OutlineSegment {
	n := len(xs)
	if n == 0 {
		return nil
	}
	type pt struct {
		x, y    float64
		onCurve bool
	}
	pts := make([]pt, n)
	for i := 0; i < n; i++ {
		px, py := xf.apply(float64(xs[i]), float64(ys[i]))
		pts[i] = pt{px, py, flags[i]&0x01 != 0}
	}

	startIdx := 0
	for startIdx < n && !pts[startIdx].onCurve {
		startIdx++
	}
	var startPt pt
	if startIdx == n {
		// All off-curve: synthesize a start point at the midpoint of the
		// first and last points.
		startPt = pt{(pts[0].x + pts[n-1].x) / 2, (pts[0].y + pts[n-1].y) / 2, true}
		startIdx = 0
	} else {
		startPt = pts[startIdx]
	}

	var out []OutlineSegment
	out = append(out, OutlineSegment{Op: OutlineMoveTo, To: [2]float64{startPt.x, startPt.y}})

	cur := startPt
	var pendingOff *pt
	emitQuad := func(ctrl, to pt) {
		c1x, c1y := cur.x+2.0/3.0*(ctrl.x-cur.x), cur.y+2.0/3.0*(ctrl.y-cur.y)
		c2x, c2y := to.x+2.0/3.0*(ctrl.x-to.x), to.y+2.0/3.0*(ctrl.y-to.y)
		out = append(out, OutlineSegment{Op: OutlineCubicTo, C1: [2]float64{c1x, c1y}, C2: [2]float64{c2x, c2y}, To: [2]float64{to.x, to.y}})
		cur = to
	}
	emitLine := func(to pt) {
		out = append(out, OutlineSegment{Op: OutlineLineTo, To: [2]float64{to.x, to.y}})
		cur = to
	}

	total := n
	for k := 1; k <= total; k++ {
		p := pts[(startIdx+k)%n]
		if k == total {
			p = startPt
		}
		if p.onCurve {
			if pendingOff != nil {
				emitQuad(*pendingOff, p)
				pendingOff = nil
			} else {
				emitLine(p)
			}
		} else {
			if pendingOff != nil {
				mid := pt{(pendingOff.x + p.x) / 2, (pendingOff.y + p.y) / 2, true}
				emitQuad(*pendingOff, mid)
			}
			off := p
			pendingOff = &off
		}
	}
	out = append(out, OutlineSegment{Op: OutlineClose})
	return out
}

func (f *Face) compositeGlyph(data []byte, depth int, xf affine6) []OutlineSegment {
	off := 10
	var out []OutlineSegment
	for {
		if off+4 > len(data) {
			break
		}
		flags := binary.BigEndian.Uint16(data[off:])
		glyphIndex := binary.BigEndian.Uint16(data[off+2:])
		off += 4

		argsAreXY := flags&0x0002 != 0
		var dx, dy float64
		if flags&0x0001 != 0 {
			if off+4 > len(data) {
				break
			}
			if argsAreXY {
				dx = float64(int16(binary.BigEndian.Uint16(data[off:])))
				dy = float64(int16(binary.BigEndian.Uint16(data[off+2:])))
			}
			off += 4
		} else {
			if off+2 > len(data) {
				break
			}
			if argsAreXY {
				dx = float64(int8(data[off]))
				dy = float64(int8(data[off+1]))
			}
			off += 2
		}
		if !argsAreXY {
			// Anchor-point (match-point) composites are not supported;
			// skip the whole glyph.
			return nil
		}

		child := affine6{a: 1, d: 1, e: dx, g: dy}
		const (
			weHaveAScale      = 0x0008
			weHaveXYScale     = 0x0040
			weHaveA2x2        = 0x0080
		)
		switch {
		case flags&weHaveA2x2 != 0:
			if off+8 > len(data) {
				break
			}
			child.a = f2dot14(data[off:])
			child.b = f2dot14(data[off+2:])
			child.c = f2dot14(data[off+4:])
			child.d = f2dot14(data[off+6:])
			off += 8
		case flags&weHaveXYScale != 0:
			if off+4 > len(data) {
				break
			}
			child.a = f2dot14(data[off:])
			child.d = f2dot14(data[off+2:])
			off += 4
		case flags&weHaveAScale != 0:
			if off+2 > len(data) {
				break
			}
			s := f2dot14(data[off:])
			child.a, child.d = s, s
			off += 2
		}

		if argsAreXY {
			combined := xf.then(child)
			out = append(out, f.outline(glyphIndex, depth+1, combined)...)
		}

		if flags&0x0020 == 0 { // MORE_COMPONENTS
			break
		}
	}
	return out
}

func f2dot14(b []byte) float64 {
	v := int16(binary.BigEndian.Uint16(b))
	return float64(v) / 16384.0
}
