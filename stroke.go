package canvas

import intstroke "github.com/vectorcanvas/canvas/internal/stroke"

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

func (c LineCap) toInternal() intstroke.LineCap {
	switch c {
	case CapSquare:
		return intstroke.CapSquare
	case CapCircle:
		return intstroke.CapCircle
	default:
		return intstroke.CapButt
	}
}

func (j LineJoin) toInternal() intstroke.LineJoin {
	switch j {
	case JoinBevel:
		return intstroke.JoinBevel
	case JoinRound:
		return intstroke.JoinRound
	default:
		return intstroke.JoinMiter
	}
}

// StrokeStyle holds the line-stroking parameters.
type StrokeStyle struct {
	Width      float64
	MiterLimit float64
	Cap        LineCap
	Join       LineJoin
	DashArray  []float64
	DashOffset float64
}

// ExpandStroke converts flattened (and already dashed, if applicable)
// polylines into filled outline contours ready for scan conversion.
func ExpandStroke(polys []Polyline, style StrokeStyle) []Polyline {
	istyle := intstroke.Style{
		Width:      style.Width,
		MiterLimit: style.MiterLimit,
		Cap:        style.Cap.toInternal(),
		Join:       style.Join.toInternal(),
	}
	var out []Polyline
	for _, poly := range polys {
		pts := make([]intstroke.Point, len(poly.Points))
		for i, p := range poly.Points {
			pts[i] = intstroke.Point{X: p.X, Y: p.Y}
		}
		contours := intstroke.Expand(intstroke.Polyline{Points: pts, Closed: poly.Closed}, istyle)
		for _, c := range contours {
			pl := Polyline{Closed: true, Points: make([]Point, len(c))}
			for i, p := range c {
				pl.Points[i] = Point{X: p.X, Y: p.Y}
			}
			out = append(out, pl)
		}
	}
	return out
}
