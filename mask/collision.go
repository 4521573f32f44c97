package mask

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/pixelcoll/geometry"
	"github.com/osuushi/pixelcoll/internal"
	"github.com/osuushi/pixelcoll/raster"
)

// CollisionInfo places a mask in the world. The transform applies in the
// order origin, scale, rotation, position. Angle is radians, position is in
// pixels, and the scale factors are fractions with 1.0 meaning unscaled.
type CollisionInfo struct {
	Mask     *Mask
	Position geometry.P
	Angle    float64
	ScaleX   float64
	ScaleY   float64
	ID       int
}

// TransformMatrix collapses the info's placement into a single matrix.
func (info *CollisionInfo) TransformMatrix() geometry.Matrix {
	return geometry.TransformMatrix(info.Position, info.Angle, info.ScaleX, info.ScaleY, info.Mask.Origin())
}

// CollisionPair is an unordered pair of colliding object ids, stored with
// the smaller id first.
type CollisionPair struct {
	ID1, ID2 int
}

// NewCollisionPair normalizes the id order. An object cannot collide with
// itself, so equal ids are rejected.
func NewCollisionPair(id1, id2 int) (CollisionPair, error) {
	if id1 == id2 {
		return CollisionPair{}, errors.Errorf("collision pair ids must differ, got %d twice", id1)
	}
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return CollisionPair{ID1: id1, ID2: id2}, nil
}

// TestForCollision reports whether the two placed masks overlap in at least
// one pixel.
//
// The transformed hulls are intersected first, culled by approximate
// bounding boxes. Two full masks are done at that point. Otherwise every
// pixel of the intersection region is mapped back through the inverse
// transforms and checked against both masks' images, stopping at the first
// pixel that is on in both. A singular transform flattens its mask to zero
// area, which collides with nothing.
func TestForCollision(info1, info2 *CollisionInfo) bool {
	mask1 := info1.Mask
	mask2 := info2.Mask

	transform1 := info1.TransformMatrix()
	transform2 := info2.TransformMatrix()

	inv1, ok1 := transform1.Inverse()
	inv2, ok2 := transform2.Inverse()
	if !ok1 || !ok2 {
		return false
	}

	hull1 := reorientCCW(transform1.TransformPoints(mask1.ConvexHull().Points()))
	hull2 := reorientCCW(transform2.TransformPoints(mask2.ConvexHull().Points()))
	approx1 := geometry.ApproximateBoundingBox(transform1, mask1.BoundingBox())
	approx2 := geometry.ApproximateBoundingBox(transform2, mask2.BoundingBox())

	result := geometry.Intersection(hull1, hull2, mask1.IsFull(), mask2.IsFull(), &approx1, &approx2)
	if result.Known {
		return result.Collides
	}

	region, nonempty := result.Region.(geometry.Nonempty)
	if !nonempty {
		return false
	}

	test := func(p geometry.IP) bool {
		v := geometry.P3{X: float64(p.X), Y: float64(p.Y), Z: 1}
		return checkImage(mask1, inv1.VectorMult(v)) && checkImage(mask2, inv2.VectorMult(v))
	}
	return raster.CollisionTest(region, test)
}

// checkImage reports whether the point, given in the mask's own coordinate
// system, lands on an on pixel. Full masks are on everywhere.
func checkImage(m *Mask, v geometry.P3) bool {
	image := m.BinaryImage()
	if image == nil {
		return true
	}

	x := int(math.Round(v.X))
	y := int(math.Round(v.Y))
	return x >= 0 && x < image.Width() &&
		y >= 0 && y < image.Height() &&
		image.HasPoint(x, y)
}

// reorientCCW rebuilds a variant from transformed hull points. A transform
// with negative determinant flips a CCW polygon to CW, so the winding is
// checked on the first three vertices and reversed when needed.
func reorientCCW(points []geometry.P) geometry.ConvexCCWPolygon {
	switch len(points) {
	case 0:
		return geometry.TheEmpty
	case 1:
		return geometry.NewPoint(points[0])
	case 2:
		return geometry.NewLine(points[0], points[1])
	}

	v1 := points[1].Minus(points[0])
	v2 := points[2].Minus(points[0])
	cross := v1.Cross(v2)
	if cross == 0 {
		internal.Fatalf("convex hull has 3 collinear vertices after transform")
	}
	if cross > 0 {
		return geometry.NewPolygonUnchecked(points)
	}

	reversed := make([]geometry.P, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return geometry.NewPolygonUnchecked(reversed)
}
