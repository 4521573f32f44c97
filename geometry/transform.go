package geometry

import "math"

// TransformMatrix builds the placement transform
//
//	translate(position) * rotate(angle) * scale(scaleX, scaleY) * translate(-origin)
//
// collapsed into a single matrix. Translation-only placements take a fast
// path without any trigonometry.
func TransformMatrix(position P, angle, scaleX, scaleY float64, origin P) Matrix {
	if angle == 0 && scaleX == 1 && scaleY == 1 {
		return Matrix{
			1, 0, position.X - origin.X,
			0, 1, position.Y - origin.Y,
			0, 0, 1,
		}
	}

	ang90 := angle + math.Pi/2
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	cosA90 := math.Cos(ang90)
	sinA90 := math.Sin(ang90)

	return Matrix{
		cosA * scaleX, scaleY * sinA, -cosA*origin.X*scaleX - origin.Y*scaleY*sinA + position.X,
		cosA90 * scaleX, scaleY * sinA90, -cosA90*origin.X*scaleX - origin.Y*scaleY*sinA90 + position.Y,
		0, 0, 1,
	}
}

// ApproximateBoundingBox bounds the image of an axis-aligned box under the
// transform. The result contains the transformed box but is generally larger
// than the tightest bound of the underlying shape.
func ApproximateBoundingBox(transform Matrix, box BoundingBox) BoundingBox {
	corners := transform.TransformPoints([]P{
		box.Min,
		box.Max,
		{box.Min.X, box.Max.Y},
		{box.Max.X, box.Min.Y},
	})
	return BoundingBoxOf(corners)
}
