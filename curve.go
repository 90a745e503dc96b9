package canvas

import (
	"math"
	"sort"
)

// flattenTolerance is the perpendicular chord-distance tolerance, in
// pixels, used by the low-level flattener's flatness test.
const flattenTolerance = 0.125

const maxFlattenDepth = 20

// flattenSink receives the points of a flattened cubic, in order,
// excluding the starting point (which the caller already has).
type flattenSink = func(p Point)

// addBezier pre-splits a cubic at up to seven t-values (the derivative
// roots in x and y, and the curvature extremum) so each piece handed to
// addTessellation has no internal extrema or cusps. forStroke selects
// whether the angular flatness test (and control-point emission) is
// active; lineWidth feeds the angular-threshold derivation.
func addBezier(p0, p1, p2, p3 Point, forStroke bool, lineWidth float64, emit flattenSink) {
	ts := []float64{0, 1}
	ts = insertRoots(ts, derivativeRoots(p0.X, p1.X, p2.X, p3.X))
	ts = insertRoots(ts, derivativeRoots(p0.Y, p1.Y, p2.Y, p3.Y))
	if t, ok := curvatureExtremum(p0, p1, p2, p3); ok {
		ts = insertRoots(ts, []float64{t})
	}
	sort.Float64s(ts)
	ts = dedupeSorted(ts)

	angular := -1.0
	if forStroke {
		half := lineWidth / 2
		denom := math.Max(half, flattenTolerance)
		ratio := flattenTolerance / denom
		angular = (ratio-2)*ratio*2 + 1
	}

	cur0, cur1, cur2, cur3 := p0, p1, p2, p3
	lastT := 0.0
	for i := 1; i < len(ts); i++ {
		t := ts[i]
		if t <= lastT {
			continue
		}
		// Split off the piece [lastT, t] using De Casteljau on the
		// remaining curve [lastT, 1], re-expressed as a sub-parameter.
		localT := (t - lastT) / (1 - lastT)
		a, b := splitCubic(cur0, cur1, cur2, cur3, localT)
		tessellate(a[0], a[1], a[2], a[3], angular, 0, emit)
		cur0, cur1, cur2, cur3 = b[0], b[1], b[2], b[3]
		lastT = t
	}
}

// splitCubic performs De Casteljau subdivision at t, returning the two
// resulting cubic control-point quadruples.
func splitCubic(p0, p1, p2, p3 Point, t float64) (left, right [4]Point) {
	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)
	return [4]Point{p0, p01, p012, p0123}, [4]Point{p0123, p123, p23, p3}
}

// tessellate is the low-level recursive midpoint subdivider. angular <= -1
// disables the angular test (filling); otherwise a sub-curve is only
// accepted once successive edges also satisfy the cosine threshold.
func tessellate(p0, p1, p2, p3 Point, angular float64, depth int, emit flattenSink) {
	if depth >= maxFlattenDepth || accept(p0, p1, p2, p3, angular) {
		if angular > -1 {
			if p1 != p0 && p1 != p3 {
				emit(p1)
			}
			if p2 != p0 && p2 != p3 {
				emit(p2)
			}
		}
		emit(p3)
		return
	}
	a, b := splitCubic(p0, p1, p2, p3, 0.5)
	tessellate(a[0], a[1], a[2], a[3], angular, depth+1, emit)
	tessellate(b[0], b[1], b[2], b[3], angular, depth+1, emit)
}

// accept reports whether a sub-curve is flat enough (and, for stroking,
// straight enough) to stop subdividing.
func accept(p0, p1, p2, p3 Point, angular float64) bool {
	if !withinTolerance(p0, p3, p1) || !withinTolerance(p0, p3, p2) {
		return false
	}
	if angular <= -1 {
		return true
	}
	e1 := p1.Sub(p0)
	if e1.LengthSquared() < 1e-12 {
		e1 = p2.Sub(p0)
	}
	e2 := p3.Sub(p2)
	if e2.LengthSquared() < 1e-12 {
		e2 = p3.Sub(p1)
	}
	if e1.LengthSquared() < 1e-12 || e2.LengthSquared() < 1e-12 {
		return true
	}
	cos := e1.Normalize().Dot(e2.Normalize())
	return cos >= angular
}

// withinTolerance measures the perpendicular distance from pt to the chord
// a-b, from the clamped foot of the perpendicular, and compares its square
// against flattenTolerance^2.
func withinTolerance(a, b, pt Point) bool {
	chord := b.Sub(a)
	chordLenSq := chord.LengthSquared()
	if chordLenSq < 1e-12 {
		return pt.Distance(a) <= flattenTolerance
	}
	t := pt.Sub(a).Dot(chord) / chordLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	foot := a.Add(chord.Mul(t))
	return pt.Sub(foot).LengthSquared() <= flattenTolerance*flattenTolerance
}

// derivativeRoots returns the interior roots (0,1) of the derivative of a
// single cubic Bezier coordinate channel.
func derivativeRoots(c0, c1, c2, c3 float64) []float64 {
	a := 3 * (-c0 + 3*c1 - 3*c2 + c3)
	b := 6 * (c0 - 2*c1 + c2)
	c := 3 * (c1 - c0)
	return quadraticRoots(a, b, c)
}

func quadraticRoots(a, b, c float64) []float64 {
	var out []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return out
		}
		t := -c / b
		if t > 0 && t < 1 {
			out = append(out, t)
		}
		return out
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return out
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	if t1 > 0 && t1 < 1 {
		out = append(out, t1)
	}
	if t2 > 0 && t2 < 1 {
		out = append(out, t2)
	}
	return out
}

// curvatureExtremum computes the single t at which curvature is extremal,
// t = -(0.5*B)/A, from the standard curvature form on the control-edge
// determinants.
func curvatureExtremum(p0, p1, p2, p3 Point) (float64, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p1)
	e3 := p3.Sub(p2)

	a := e1.Cross(e2)
	b := e1.Cross(e3)
	c := e2.Cross(e3)

	A := a - b + c
	B := -2*a + b
	if math.Abs(A) < 1e-12 {
		return 0, false
	}
	t := -(0.5 * B) / A
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

func insertRoots(ts []float64, roots []float64) []float64 {
	return append(ts, roots...)
}

func dedupeSorted(ts []float64) []float64 {
	out := ts[:0]
	var last float64
	first := true
	for _, t := range ts {
		if first || t-last > 1e-9 {
			out = append(out, t)
			last = t
			first = false
		}
	}
	return out
}

// FlattenPath converts every cubic sub-path in p into a polyline sub-path
// list, using the adaptive two-layer tessellator. forStroke controls the
// angular test and control-point emission, needed so the stroke expander
// can read correct tangents at segment joins.
func FlattenPath(p *Path, forStroke bool, lineWidth float64) []Polyline {
	var out []Polyline
	offset := 0
	for _, sp := range p.Subpaths {
		pts := p.Points[offset : offset+sp.PointCount]
		offset += sp.PointCount
		if len(pts) == 0 {
			continue
		}
		poly := Polyline{Closed: sp.Closed}
		poly.Points = append(poly.Points, pts[0])
		cur := pts[0]
		for i := 1; i+2 <= len(pts)-1; i += 3 {
			c1, c2, p3 := pts[i], pts[i+1], pts[i+2]
			addBezier(cur, c1, c2, p3, forStroke, lineWidth, func(pt Point) {
				poly.Points = append(poly.Points, pt)
			})
			cur = p3
		}
		out = append(out, poly)
	}
	return out
}

// Polyline is a flattened sub-path: a sequence of vertices (and, when
// produced for stroking, the retained Bezier control points between them)
// with a closed flag.
type Polyline struct {
	Points []Point
	Closed bool
}
