// Package scan converts flattened polylines into sparse signed-coverage
// pixel runs, after clipping them to a padded viewport.
package scan

import (
	"math"
	"sort"
)

// Point is a local 2D point, duplicated here rather than imported from the
// root package to avoid an import cycle.
type Point struct {
	X, Y float64
}

// Run is a signed coverage delta at one pixel. Runs denote the change to
// the running horizontal coverage sum at column x on row y.
type Run struct {
	X, Y  uint16
	Delta float32
}

// degenerateRowEpsilon bounds how close a segment's two endpoints' y values
// can be before a row is considered degenerate and skipped.
const degenerateRowEpsilon = 2e-5

// ClipToViewport clips a closed polygon (in order) against the rectangle
// [-padding, width+padding] x [-padding, height+padding] using successive
// Sutherland-Hodgman passes, one per edge.
func ClipToViewport(poly []Point, width, height, padding float64) []Point {
	minX, minY := -padding, -padding
	maxX, maxY := width+padding, height+padding

	poly = clipEdge(poly, func(p Point) bool { return p.X >= minX }, func(a, b Point) Point {
		return lerpAtX(a, b, minX)
	})
	poly = clipEdge(poly, func(p Point) bool { return p.Y >= minY }, func(a, b Point) Point {
		return lerpAtY(a, b, minY)
	})
	poly = clipEdge(poly, func(p Point) bool { return p.X <= maxX }, func(a, b Point) Point {
		return lerpAtX(a, b, maxX)
	})
	poly = clipEdge(poly, func(p Point) bool { return p.Y <= maxY }, func(a, b Point) Point {
		return lerpAtY(a, b, maxY)
	})
	return poly
}

func clipEdge(poly []Point, inside func(Point) bool, intersect func(a, b Point) Point) []Point {
	if len(poly) == 0 {
		return poly
	}
	out := make([]Point, 0, len(poly)+2)
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn != prevIn {
			out = append(out, intersect(prev, cur))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

func lerpAtX(a, b Point, x float64) Point {
	if b.X == a.X {
		return Point{X: x, Y: a.Y}
	}
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func lerpAtY(a, b Point, y float64) Point {
	if b.Y == a.Y {
		return Point{X: a.X, Y: y}
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}

// AddRuns scan-converts one segment from "from" to "to", appending signed
// trapezoidal coverage runs to dst and returning the extended slice. The
// segment is assumed y-monotone, which holds after high-level flattening
// and viewport clipping.
func AddRuns(dst []Run, from, to Point) []Run {
	if math.Abs(to.Y-from.Y) < degenerateRowEpsilon {
		return dst
	}

	sign := float32(1)
	if to.Y < from.Y {
		sign = -1
		from, to = to, from
	}

	y0 := int(math.Floor(from.Y))
	y1 := int(math.Ceil(to.Y))
	invDY := 1.0 / (to.Y - from.Y)
	dxdy := (to.X - from.X) * invDY

	xAtY := func(y float64) float64 {
		return from.X + (y-from.Y)*dxdy
	}

	for py := y0; py < y1; py++ {
		rowTop := math.Max(from.Y, float64(py))
		rowBot := math.Min(to.Y, float64(py+1))
		if rowBot <= rowTop {
			continue
		}
		xTop := xAtY(rowTop)
		xBot := xAtY(rowBot)
		dst = rasterizeRow(dst, py, xTop, xBot, rowBot-rowTop, sign)
	}
	return dst
}

// rasterizeRow scans the segment's intersection with row py, from x-value
// xTop to xBot (monotone in x within the row since the segment is a single
// line) over a vertical extent of dy, accumulating signed trapezoidal
// coverage area column by column. Since x is linear in y along the segment,
// a column's share of dy is proportional to its share of the row's total
// x-span; area is the midpoint-weighted trapezoid to the left of the
// column's edge crossing, and carry threads the previous column's area into
// the next column's delta so each column only reports what it newly covers.
func rasterizeRow(dst []Run, py int, xTop, xBot, dy float64, sign float32) []Run {
	xLo, xHi := xTop, xBot
	if xHi < xLo {
		xLo, xHi = xHi, xLo
	}

	px0 := int(math.Floor(xLo))
	px1 := int(math.Floor(xHi))
	if px1 < px0 {
		px1 = px0
	}
	width := xHi - xLo

	carry := float32(0)
	for px := px0; px <= px1; px++ {
		colLo := math.Max(xLo, float64(px))
		colHi := math.Min(xHi, float64(px+1))
		if colHi < colLo {
			continue
		}
		var frac float64
		if width <= 1e-12 {
			frac = 1
		} else {
			frac = (colHi - colLo) / width
		}
		strip := float32(dy * frac)
		mid := (colLo + colHi) / 2
		area := float32(mid-float64(px)) * strip
		dst = append(dst, Run{X: clampU16(px), Y: clampU16(py), Delta: (carry + strip - area) * sign})
		carry = area
	}
	dst = append(dst, Run{X: clampU16(px1 + 1), Y: clampU16(py), Delta: carry * sign})
	return dst
}

func clampU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// Sort orders runs canonically by (y, x, |delta|).
func Sort(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return math.Abs(float64(a.Delta)) < math.Abs(float64(b.Delta))
	})
}

// Merge sorts runs and coalesces adjacent same-(x,y) entries by summation,
// dropping zero-delta runs except the first one on a row (which anchors
// the running sum for later consumers that rely on a row having at least
// one entry).
func Merge(runs []Run) []Run {
	Sort(runs)
	out := make([]Run, 0, len(runs))
	for i := 0; i < len(runs); {
		j := i + 1
		sum := runs[i].Delta
		for j < len(runs) && runs[j].X == runs[i].X && runs[j].Y == runs[i].Y {
			sum += runs[j].Delta
			j++
		}
		if sum != 0 || len(out) == 0 || out[len(out)-1].Y != runs[i].Y {
			out = append(out, Run{X: runs[i].X, Y: runs[i].Y, Delta: sum})
		}
		i = j
	}
	return out
}
