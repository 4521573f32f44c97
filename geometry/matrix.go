package geometry

// Matrix is a 3x3 transformation matrix in row-major order.
type Matrix [9]float64

func (m Matrix) Mult(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[3] + m[2]*o[6],
		m[0]*o[1] + m[1]*o[4] + m[2]*o[7],
		m[0]*o[2] + m[1]*o[5] + m[2]*o[8],
		m[3]*o[0] + m[4]*o[3] + m[5]*o[6],
		m[3]*o[1] + m[4]*o[4] + m[5]*o[7],
		m[3]*o[2] + m[4]*o[5] + m[5]*o[8],
		m[6]*o[0] + m[7]*o[3] + m[8]*o[6],
		m[6]*o[1] + m[7]*o[4] + m[8]*o[7],
		m[6]*o[2] + m[7]*o[5] + m[8]*o[8],
	}
}

func (m Matrix) VectorMult(p P3) P3 {
	return P3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// TransformPoints applies the matrix to the points as an affine transform,
// treating each point as (x, y, 1).
func (m Matrix) TransformPoints(points []P) []P {
	transformed := make([]P, len(points))
	for i, p := range points {
		transformed[i] = P{
			X: m[0]*p.X + m[1]*p.Y + m[2],
			Y: m[3]*p.X + m[4]*p.Y + m[5],
		}
	}
	return transformed
}

func (m Matrix) Determinant() float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, k := m[6], m[7], m[8]
	return a*(e*k-f*h) + b*(f*g-k*d) + c*(d*h-e*g)
}

func (m Matrix) HasInverse() bool {
	return m.Determinant() != 0
}

// Inverse gives the inverse matrix, or false when the matrix is singular.
// Cofactor expansion; see matrix inversion on wikipedia for details.
func (m Matrix) Inverse() (Matrix, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, k := m[6], m[7], m[8]

	det := a*(e*k-f*h) + b*(f*g-k*d) + c*(d*h-e*g)
	if det == 0 {
		return Matrix{}, false
	}

	a1 := e*k - f*h
	b1 := f*g - d*k
	c1 := d*h - e*g
	d1 := c*h - b*k
	e1 := a*k - c*g
	f1 := g*b - a*h
	g1 := b*f - c*e
	h1 := c*d - a*f
	k1 := a*e - b*d

	return Matrix{
		a1 / det, d1 / det, g1 / det,
		b1 / det, e1 / det, h1 / det,
		c1 / det, f1 / det, k1 / det,
	}, true
}
