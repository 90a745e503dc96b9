// Package clip intersects the current clip mask with a newly scan-converted
// path to produce a new, narrower mask, preserving canonical run form.
package clip

import "github.com/vectorcanvas/canvas/internal/scan"

// Run is an alias kept local to avoid the root package importing this one
// just to read the type back; it is structurally identical to scan.Run.
type Run = scan.Run

// FullMask returns the canonical clip mask that lets everything through: a
// single on-run at column 0 and an off-run at column width, per row.
func FullMask(width, height int) []Run {
	out := make([]Run, 0, height*2)
	for y := 0; y < height; y++ {
		out = append(out, Run{X: 0, Y: uint16(y), Delta: 1})
		out = append(out, Run{X: uint16(width), Y: uint16(y), Delta: -1})
	}
	return out
}

// Intersect merges the sorted, canonical mask run list with a sorted,
// canonical path run list, producing a new canonical mask whose visibility
// at any pixel is min(|path_sum|,1) * min(|mask_sum|,1). The new mask
// records deltas to that product, so it stays in run form for subsequent
// intersections and for compositing.
func Intersect(mask, path []Run) []Run {
	out := make([]Run, 0, len(mask)+len(path))

	i, j := 0, 0
	var maskSum, pathSum float64
	var prevProduct float64
	var curY uint16
	haveY := false

	flushRow := func() {
		maskSum, pathSum, prevProduct = 0, 0, 0
	}

	for i < len(mask) || j < len(path) {
		var y uint16
		switch {
		case i >= len(mask):
			y = path[j].Y
		case j >= len(path):
			y = mask[i].Y
		case mask[i].Y <= path[j].Y:
			y = mask[i].Y
		default:
			y = path[j].Y
		}
		if !haveY || y != curY {
			flushRow()
			curY = y
			haveY = true
		}

		var x uint16
		takeMask := i < len(mask) && mask[i].Y == y
		takePath := j < len(path) && path[j].Y == y
		switch {
		case takeMask && takePath:
			if mask[i].X <= path[j].X {
				x = mask[i].X
			} else {
				x = path[j].X
			}
		case takeMask:
			x = mask[i].X
		case takePath:
			x = path[j].X
		default:
			continue
		}

		for i < len(mask) && mask[i].Y == y && mask[i].X == x {
			maskSum += float64(mask[i].Delta)
			i++
		}
		for j < len(path) && path[j].Y == y && path[j].X == x {
			pathSum += float64(path[j].Delta)
			j++
		}

		product := clamp01(absf(maskSum)) * clamp01(absf(pathSum))
		delta := product - prevProduct
		if delta != 0 {
			out = append(out, Run{X: x, Y: y, Delta: float32(delta)})
		}
		prevProduct = product
	}

	return scan.Merge(out)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
