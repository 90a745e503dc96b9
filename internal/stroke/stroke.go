// Package stroke expands polylines into filled outlines with caps, joins,
// and the inner-join "extra winding" technique for tight turns.
package stroke

import "math"

// Point is a local 2D point, duplicated to avoid an import cycle with the
// root package.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point  { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point  { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64     { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

func (p Point) normalize() Point {
	l := p.length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// perp rotates a unit vector 90 degrees counter-clockwise, giving the left
// side offset direction for a direction of travel.
func perp(d Point) Point { return Point{-d.Y, d.X} }

// LineCap selects the terminal cap shape for open sub-paths.
type LineCap int

const (
	CapButt LineCap = iota
	CapSquare
	CapCircle
)

// LineJoin selects the outer join shape at interior vertices.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinBevel
	JoinRound
)

// Style holds the stroking parameters.
type Style struct {
	Width      float64
	MiterLimit float64
	Cap        LineCap
	Join       LineJoin
}

// Polyline is one flattened sub-path.
type Polyline struct {
	Points []Point
	Closed bool
}

const circleCapAlpha = 0.55228475 // 4/3 * tan(pi/8)

// Expand turns a polyline sub-path into one or two closed contours
// describing the filled stroke outline. Closed sub-paths yield two nested
// loops with opposite winding; open sub-paths yield one loop including
// both caps. Sub-paths with fewer than two vertices produce no output.
func Expand(poly Polyline, style Style) [][]Point {
	if len(poly.Points) < 2 || style.Width <= 0 {
		return nil
	}
	half := style.Width / 2

	if poly.Closed {
		outer := traceOffset(poly.Points, half, style, true)
		inner := traceOffset(reversed(poly.Points), half, style, true)
		var out [][]Point
		if len(outer) > 0 {
			out = append(out, outer)
		}
		if len(inner) > 0 {
			out = append(out, inner)
		}
		return out
	}

	forward := traceOffset(poly.Points, half, style, false)
	backward := traceOffset(reversed(poly.Points), half, style, false)
	if len(forward) == 0 || len(backward) == 0 {
		return nil
	}

	loop := make([]Point, 0, len(forward)+len(backward)+8)
	loop = append(loop, forward...)
	loop = appendCap(loop, poly.Points[len(poly.Points)-1], tangentAt(poly.Points, len(poly.Points)-1, true), half, style.Cap)
	loop = append(loop, backward...)
	loop = appendCap(loop, poly.Points[0], tangentAt(poly.Points, 0, false), half, style.Cap)
	return [][]Point{loop}
}

// tangentAt returns the unit tangent at an endpoint of an open polyline,
// pointing outward past the terminus (the direction caps extend along).
func tangentAt(pts []Point, i int, atEnd bool) Point {
	if atEnd {
		return pts[i].sub(pts[i-1]).normalize()
	}
	return pts[i].sub(pts[i+1]).normalize()
}

// traceOffset walks pts in order, emitting the left-side offset polyline
// with join geometry at each interior vertex (and, if closed, at the
// wraparound vertex too).
func traceOffset(pts []Point, half float64, style Style, closed bool) []Point {
	n := len(pts)
	if n < 2 {
		return nil
	}
	out := make([]Point, 0, n*2)

	start := 1
	end := n - 1
	if closed {
		start = 0
		end = n
	} else {
		// leading edge offset point.
		dir := pts[1].sub(pts[0]).normalize()
		out = append(out, pts[0].add(perp(dir).mul(half)))
	}

	for k := start; k < end; k++ {
		i := k % n
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		if !closed && i == 0 {
			continue
		}

		inDir := pts[i].sub(prev).normalize()
		outDir := next.sub(pts[i]).normalize()
		sideIn := pts[i].add(perp(inDir).mul(half))
		sideOut := pts[i].add(perp(outDir).mul(half))

		turn := perp(inDir).dot(outDir)
		out = emitJoin(out, prev, pts[i], next, sideIn, sideOut, inDir, outDir, turn, half, style)
	}

	if !closed {
		dir := pts[n-1].sub(pts[n-2]).normalize()
		out = append(out, pts[n-1].add(perp(dir).mul(half)))
	} else if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// emitJoin appends the join geometry at one interior vertex, handling the
// inner-join "tight turn" case by swapping sides and re-emitting a wedge,
// per the Nehab extra-winding technique.
func emitJoin(out []Point, prev, vertex, next, sideIn, sideOut, inDir, outDir Point, turn, half float64, style Style) []Point {
	if math.Abs(turn) < 1e-9 {
		out = append(out, sideIn)
		return out
	}

	offset := outDir.sub(inDir).mul(half / turn)
	apex := vertex.add(offset)

	tight := turn > 0 && isTightTurn(prev, vertex, next, apex, inDir, outDir)
	if tight {
		// Inner join: swap which side is being traced and emit a
		// three-point wedge tracing the other edge of the join, then
		// continue with the swapped in/out directions.
		sideIn, sideOut = sideOut, sideIn
		out = append(out, sideOut, vertex, sideIn)
		return out
	}

	switch style.Join {
	case JoinMiter:
		if offset.length()*offset.length() <= style.MiterLimit*style.MiterLimit*half*half {
			out = append(out, sideIn, apex, sideOut)
			return out
		}
		fallthrough
	case JoinBevel:
		out = append(out, sideIn, sideOut)
	case JoinRound:
		out = append(out, sideIn)
		out = appendArc(out, vertex, sideIn, sideOut, half)
		out = append(out, sideOut)
	}
	return out
}

// isTightTurn reports whether the miter apex has crossed both behind the
// previous point and ahead of the next point along the offset edges,
// signaling that the outer offset has folded over itself. Both conditions
// must hold; a turn that only satisfies one is an ordinary turn, not tight.
func isTightTurn(prev, vertex, next, apex, inDir, outDir Point) bool {
	behindPrev := apex.sub(prev).dot(inDir) < 0
	aheadNext := apex.sub(vertex).dot(outDir) > next.sub(vertex).dot(outDir)
	return behindPrev && aheadNext
}

// appendArc approximates a circular arc between two offset points around a
// center with cubic Bezier segments (alpha = 4/3*tan(a/4) control-point
// rule, one segment per pi/8 of sweep or less). Each segment's two control
// points and end point are appended directly as outline vertices; the
// segments are not flattened.
func appendArc(out []Point, center, from, to Point, radius float64) []Point {
	v0 := from.sub(center)
	v1 := to.sub(center)
	a0 := math.Atan2(v0.Y, v0.X)
	a1 := math.Atan2(v1.Y, v1.X)
	da := a1 - a0
	for da > math.Pi {
		da -= 2 * math.Pi
	}
	for da < -math.Pi {
		da += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(da) / (math.Pi / 8)))
	if segments < 1 {
		segments = 1
	}
	step := da / float64(segments)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	cur := from
	ang := a0
	for s := 0; s < segments; s++ {
		next := ang + step
		p0 := cur
		p3 := center.add(Point{radius * math.Cos(next), radius * math.Sin(next)})
		t0 := perp(Point{math.Cos(ang), math.Sin(ang)}).mul(-1)
		t1 := perp(Point{math.Cos(next), math.Sin(next)}).mul(-1)
		c1 := p0.add(t0.mul(-radius * alpha))
		c2 := p3.add(t1.mul(radius * alpha))
		out = append(out, c1, c2, p3)
		cur = p3
		ang = next
	}
	return out
}

// appendCap appends the terminal cap geometry at an open polyline's end,
// given the outward tangent direction past the terminus.
func appendCap(out []Point, point, outward Point, half float64, cap LineCap) []Point {
	side := perp(outward).mul(half)
	switch cap {
	case CapButt:
		// The forward/backward traces already meet at the two side
		// points; nothing further to add.
	case CapSquare:
		ahead := outward.mul(half)
		p1 := point.add(ahead).add(side)
		p2 := point.add(ahead).sub(side)
		out = append(out, p1, p2)
	case CapCircle:
		p0 := point.add(side)
		p1 := point.sub(side)
		mid := point.add(outward.mul(half))
		ahead := Point{outward.X * half * circleCapAlpha, outward.Y * half * circleCapAlpha}
		c1 := p0.add(ahead)
		c2 := mid.add(side.mul(circleCapAlpha))
		out = append(out, c1, c2, mid)
		c3 := mid.sub(side.mul(circleCapAlpha))
		c4 := p1.add(ahead)
		out = append(out, c3, c4, p1)
	}
	return out
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
