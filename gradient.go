package canvas

import "sort"

// ColorStop is one (offset, color) pair of a gradient brush, offset in
// [0,1] ascending, color premultiplied-linear.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// sortedStops returns stops sorted by ascending offset; ties keep their
// relative order (stable sort), which lets AddColorStop simply append.
func sortedStops(stops []ColorStop) []ColorStop {
	out := append([]ColorStop(nil), stops...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// colorAtOffset finds the surrounding stop pair via binary search,
// linearly interpolates the unpremultiplied linear colors and premultiplies
// the result. Below
// the first stop returns the first color; above the last returns the last.
func colorAtOffset(stops []ColorStop, offset float64) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	if offset <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if offset >= last.Offset {
		return last.Color
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > offset })
	a := stops[i-1]
	b := stops[i]
	if b.Offset == a.Offset {
		return b.Color
	}
	t := (offset - a.Offset) / (b.Offset - a.Offset)
	ar, ag, ab, aa := a.Color.Unpremultiply()
	br, bg, bb, ba := b.Color.Unpremultiply()
	return RGBA4(ar+(br-ar)*t, ag+(bg-ag)*t, ab+(bb-ab)*t, aa+(ba-aa)*t)
}

// GradientBrush holds the stops shared by linear and radial gradients.
type GradientBrush struct {
	Stops []ColorStop
}

// AddColorStop appends a stop; offsets must be pre-validated to [0,1] by
// the caller (out-of-range additions are a no-op per the tolerant API).
func (g *GradientBrush) AddColorStop(offset float64, c RGBA) {
	if offset < 0 || offset > 1 {
		return
	}
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
}

func (g *GradientBrush) sorted() []ColorStop {
	return sortedStops(g.Stops)
}
