package canvas

// DashPolylines cuts each polyline sub-path by the dash pattern. dashes
// must already be validated (non-negative, even length) by the caller.
// Distance is measured in the pre-transform coordinate frame: callers pass
// inv, the inverse of the transform used to build the polylines, so
// dashing stays invariant under non-uniform scale applied at draw time.
func DashPolylines(polys []Polyline, dashes []float64, offset float64, inv Matrix) []Polyline {
	if len(dashes) == 0 {
		return polys
	}
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if total <= 0 {
		return polys
	}

	var out []Polyline
	for _, poly := range polys {
		out = append(out, dashOne(poly, dashes, offset, total, inv)...)
	}
	return out
}

func dashOne(poly Polyline, dashes []float64, offset, total float64, inv Matrix) []Polyline {
	if len(poly.Points) < 2 {
		return nil
	}

	off := mod(offset, total)
	if off < 0 {
		off += total
	}

	startIdx := 0
	remaining := off
	for remaining >= dashes[startIdx] {
		remaining -= dashes[startIdx]
		startIdx = (startIdx + 1) % len(dashes)
	}
	emit := startIdx%2 == 0
	dashLeft := dashes[startIdx] - remaining

	var subpaths []Polyline
	var cur []Point
	if emit {
		cur = append(cur, poly.Points[0])
	}

	n := len(poly.Points)
	segCount := n - 1
	if poly.Closed {
		segCount = n
	}

	idx := startIdx
	left := dashLeft
	for s := 0; s < segCount; s++ {
		a := poly.Points[s]
		b := poly.Points[(s+1)%n]
		segLen := preTransformLength(a, b, inv)
		walked := 0.0
		for walked < segLen {
			step := segLen - walked
			if step > left {
				step = left
			}
			walked += step
			left -= step
			t := 0.0
			if segLen > 0 {
				t = walked / segLen
			}
			pt := a.Lerp(b, t)
			if emit {
				cur = append(cur, pt)
			}
			if left <= 1e-9 {
				if emit && len(cur) >= 2 {
					subpaths = append(subpaths, Polyline{Points: cur})
				}
				cur = nil
				emit = !emit
				idx = (idx + 1) % len(dashes)
				left = dashes[idx]
				if emit {
					cur = append(cur, pt)
				}
			}
		}
	}
	if emit && len(cur) >= 2 {
		subpaths = append(subpaths, Polyline{Points: cur})
	}

	if poly.Closed {
		subpaths = mergeClosedDashSeam(poly, subpaths)
	}
	return subpaths
}

// mergeClosedDashSeam handles the two special cases for closed sub-paths
// that dashOne's single pass around the ring, starting and ending at
// original.Points[0], cannot resolve on its own:
//
// if the whole ring falls inside one dash (no transitions at all, so
// dashOne produced a single piece whose ends meet), close it into one
// closed sub-path rather than an open one;
//
// if the ring both starts and ends mid-dash, the piece that dashOne began
// at the seam and the piece it was still emitting when it ran out of ring
// are actually the same dash, split only because the walk has to stop
// somewhere. Splice them into one piece so the seam doesn't show up as two
// separate stub dashes meeting end to end.
func mergeClosedDashSeam(original Polyline, pieces []Polyline) []Polyline {
	if len(pieces) == 0 {
		return pieces
	}
	if len(pieces) == 1 {
		p := pieces[0]
		if p.Points[0] == p.Points[len(p.Points)-1] {
			p.Closed = true
			pieces[0] = p
		}
		return pieces
	}

	seam := original.Points[0]
	first := pieces[0]
	last := pieces[len(pieces)-1]
	if first.Points[0] != seam || last.Points[len(last.Points)-1] != seam {
		return pieces
	}

	merged := make([]Point, 0, len(last.Points)+len(first.Points)-1)
	merged = append(merged, last.Points[:len(last.Points)-1]...)
	merged = append(merged, first.Points...)

	out := make([]Polyline, 0, len(pieces)-1)
	out = append(out, Polyline{Points: merged})
	out = append(out, pieces[1:len(pieces)-1]...)
	return out
}

func preTransformLength(a, b Point, inv Matrix) float64 {
	pa := inv.TransformPoint(a)
	pb := inv.TransformPoint(b)
	return pa.Distance(pb)
}

func mod(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a
	for r >= b {
		r -= b
	}
	for r < 0 {
		r += b
	}
	return r
}
