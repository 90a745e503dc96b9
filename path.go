package canvas

// Subpath describes one contiguous run of points in a Path's flat point
// list: PointCount total points (1 + 3k for a Bezier path: an anchor
// followed by k (c1, c2, p2) triples), and whether it is closed.
type Subpath struct {
	PointCount int
	Closed     bool
}

// Path stores one or more sub-paths of cubic Bezier segments as a flat
// point list plus parallel sub-path descriptors. Straight lines are
// degenerate cubics with collinear control points. Points are stored
// post-transform; LineTo et al. bake in the current transform at
// insertion time. Invariant: sum of Subpaths[i].PointCount == len(Points).
type Path struct {
	Points   []Point
	Subpaths []Subpath

	start   Point // first point of the current sub-path
	current Point // most recently inserted anchor point
	hasSub  bool  // whether Subpaths is non-empty and its last entry is open
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Reset clears the path back to empty, reusing the backing arrays.
func (p *Path) Reset() {
	p.Points = p.Points[:0]
	p.Subpaths = p.Subpaths[:0]
	p.hasSub = false
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	c := &Path{
		Points:   append([]Point(nil), p.Points...),
		Subpaths: append([]Subpath(nil), p.Subpaths...),
		start:    p.start,
		current:  p.current,
		hasSub:   p.hasSub,
	}
	return c
}

// IsEmpty reports whether the path has no points at all.
func (p *Path) IsEmpty() bool { return len(p.Points) == 0 }

// lastSubpath returns a pointer to the last, still-open sub-path
// descriptor, or nil if there is none.
func (p *Path) lastSubpath() *Subpath {
	if !p.hasSub || len(p.Subpaths) == 0 {
		return nil
	}
	return &p.Subpaths[len(p.Subpaths)-1]
}

// beginSubpath starts a fresh sub-path anchored at pt, replacing the
// previous sub-path in place if it consisted of exactly one point and no
// segments (a bare move_to with nothing drawn), per the path-builder
// contract that avoids emitting degenerate single-point sub-paths.
func (p *Path) beginSubpath(pt Point) {
	if sp := p.lastSubpath(); sp != nil && sp.PointCount == 1 && !sp.Closed {
		p.Points[len(p.Points)-1] = pt
		p.start = pt
		p.current = pt
		return
	}
	p.Points = append(p.Points, pt)
	p.Subpaths = append(p.Subpaths, Subpath{PointCount: 1})
	p.hasSub = true
	p.start = pt
	p.current = pt
}

// appendCubic appends one (c1, c2, p2) triple to the current sub-path,
// starting a new sub-path anchored at the path's last point if none is
// open yet.
func (p *Path) appendCubic(c1, c2, p2 Point) {
	sp := p.lastSubpath()
	if sp == nil {
		p.beginSubpath(p.current)
		sp = p.lastSubpath()
	}
	p.Points = append(p.Points, c1, c2, p2)
	sp.PointCount += 3
	p.current = p2
}

// closeCurrentSubpath appends a straight line back to the sub-path's first
// point (as a degenerate cubic), marks it closed, and opens a new empty
// sub-path at that same point. No-op on an empty path or an already-closed
// or not-yet-started sub-path.
func (p *Path) closeCurrentSubpath() {
	sp := p.lastSubpath()
	if sp == nil || sp.Closed {
		return
	}
	if sp.PointCount > 1 || p.current != p.start {
		c1 := p.current.Lerp(p.start, 1.0/3.0)
		c2 := p.current.Lerp(p.start, 2.0/3.0)
		p.Points = append(p.Points, c1, c2, p.start)
		sp.PointCount += 3
	}
	sp.Closed = true
	p.current = p.start
	p.beginSubpath(p.start)
}

// Walk calls visit once per sub-path with its anchor-relative cubic
// segments: for a sub-path with PointCount = 1+3k, visit is called with
// the anchor and then k times with (c1, c2, p2).
func (p *Path) Walk(visit func(sub Subpath, points []Point)) {
	offset := 0
	for _, sp := range p.Subpaths {
		visit(sp, p.Points[offset:offset+sp.PointCount])
		offset += sp.PointCount
	}
}
