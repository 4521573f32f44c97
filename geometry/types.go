package geometry

import "math"

// P is a point or vector in the plane. Points are plain values; exact float
// equality is deliberate throughout, since the algorithms depend on shared
// vertices comparing equal rather than on tolerances.
type P struct {
	X, Y float64
}

func (p P) Plus(q P) P {
	return P{p.X + q.X, p.Y + q.Y}
}

func (p P) Minus(q P) P {
	return P{p.X - q.X, p.Y - q.Y}
}

func (p P) Scale(k float64) P {
	return P{p.X * k, p.Y * k}
}

func (p P) Neg() P {
	return P{-p.X, -p.Y}
}

// Cross is the z component of the cross product, treating both points as
// vectors in the z = 0 plane.
func (p P) Cross(q P) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p P) Dot(q P) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p P) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// NormalizeUnsafe scales to unit length. The caller must ensure p is not the
// zero vector.
func (p P) NormalizeUnsafe() P {
	return p.Scale(1 / p.Norm())
}

// IP is a point on the integer pixel grid.
type IP struct {
	X, Y int
}

// Less orders pixels lexicographically, x first.
func (p IP) Less(q IP) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// P3 is a point in homogeneous coordinates, for transformation by a Matrix.
type P3 struct {
	X, Y, Z float64
}

// BoundingBox is an axis-aligned box. Both bounds are inclusive.
type BoundingBox struct {
	Min, Max P
}

func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// BoundingBoxOf gives the smallest box containing all of the points. The
// caller must pass at least one point.
func BoundingBoxOf(points []P) BoundingBox {
	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}

// CircularIndex treats an array of length n as a circular buffer. Unlike the
// raw modulo operator, it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
