package canvas

import "math"

// Matrix is a 2D affine transform: the upper two rows of a 3x3 matrix,
// [a c e; b d f; 0 0 1]. Forward and inverse are stored together so that
// callers never invert on demand; Invertible is false once the forward
// matrix becomes singular, at which point draw operations short-circuit.
type Matrix struct {
	A, B, C, D, E, F float64

	invA, invB, invC, invD, invE, invF float64
	invertible                         bool
}

// Identity returns the identity transform.
func Identity() Matrix {
	m := Matrix{A: 1, D: 1}
	m.invA, m.invD = 1, 1
	m.invertible = true
	return m
}

// deriveInverse recomputes the cached inverse from the forward components.
func (m *Matrix) deriveInverse() {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		m.invertible = false
		return
	}
	invDet := 1 / det
	m.invA = m.D * invDet
	m.invB = -m.B * invDet
	m.invC = -m.C * invDet
	m.invD = m.A * invDet
	m.invE = -(m.E*m.invA + m.F*m.invC)
	m.invF = -(m.E*m.invB + m.F*m.invD)
	m.invertible = true
}

// Invertible reports whether the forward matrix has a nonzero determinant.
func (m Matrix) Invertible() bool { return m.invertible }

// NewMatrix builds a matrix from its six components and derives its
// inverse immediately.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	m := Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
	m.deriveInverse()
	return m
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix { return NewMatrix(1, 0, 0, 1, tx, ty) }

// Scale returns a scaling matrix.
func Scale(sx, sy float64) Matrix { return NewMatrix(sx, 0, 0, sy, 0, 0) }

// Rotate returns a clockwise rotation matrix (radians), matching the
// Canvas-API convention in device space where y grows downward.
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return NewMatrix(c, s, -s, c, 0, 0)
}

// Multiply returns m applied after n (n then m), i.e. m.Multiply(n) is the
// matrix that transforms a point by n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return NewMatrix(
		m.A*n.A+m.C*n.B,
		m.B*n.A+m.D*n.B,
		m.A*n.C+m.C*n.D,
		m.B*n.C+m.D*n.D,
		m.A*n.E+m.C*n.F+m.E,
		m.B*n.E+m.D*n.F+m.F,
	)
}

// TransformPoint applies the forward matrix to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.C*p.Y + m.E, Y: m.B*p.X + m.D*p.Y + m.F}
}

// TransformVector applies only the linear part of the forward matrix.
func (m Matrix) TransformVector(p Point) Point {
	return Point{X: m.A*p.X + m.C*p.Y, Y: m.B*p.X + m.D*p.Y}
}

// InverseTransformPoint applies the cached inverse matrix to a point. The
// result is undefined (but finite) if the matrix is singular; callers
// should check Invertible first.
func (m Matrix) InverseTransformPoint(p Point) Point {
	return Point{X: m.invA*p.X + m.invC*p.Y + m.invE, Y: m.invB*p.X + m.invD*p.Y + m.invF}
}

// InverseTransformVector applies only the linear part of the inverse.
func (m Matrix) InverseTransformVector(p Point) Point {
	return Point{X: m.invA*p.X + m.invC*p.Y, Y: m.invB*p.X + m.invD*p.Y}
}
