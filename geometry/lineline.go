package geometry

import (
	"math"
	"sort"
)

// Intersection of line segments, in undirected and directed flavors. The
// directed flavor is what the calipers walk uses: the tail of a directed edge
// does not count as part of it, so edges that merely share a tail vertex do
// not collide.

// SegmentIntersection gives the intersection of two undirected segments as a
// variant: Empty, a Point, or a Line when they overlap collinearly. Each
// segment must have distinct endpoints.
func SegmentIntersection(p11, p12, p21, p22 P) ConvexCCWPolygon {
	l1 := p12.Minus(p11)
	l2 := p22.Minus(p21)

	denominator := l2.Cross(l1)

	if denominator == 0 {
		// Parallel. Overlap requires the segments to lie on the same line.
		perpenL2 := P{-l2.Y, l2.X}.Scale(1 / l2.Norm())
		if math.Abs(perpenL2.Dot(p21.Minus(p11))) != 0 {
			return TheEmpty
		}

		// Collinear. Place each endpoint on the other segment's parameter
		// range and keep the ones that land inside it.
		u11 := positionOn(l1, p11, p21)
		u12 := positionOn(l1, p11, p22)
		u21 := positionOn(l2, p21, p11)
		u22 := positionOn(l2, p21, p12)

		candidates := []struct {
			u     float64
			point P
		}{
			{u11, p21}, {u12, p22}, {u21, p11}, {u22, p12},
		}
		var overlapping []P
		for _, c := range candidates {
			if c.u >= 0 && c.u <= 1 {
				overlapping = append(overlapping, c.point)
			}
		}

		switch len(overlapping) {
		case 0:
			return TheEmpty
		case 1:
			return Point{Point: overlapping[0]}
		default:
			sort.Slice(overlapping, func(i, j int) bool {
				if overlapping[i].X != overlapping[j].X {
					return overlapping[i].X > overlapping[j].X
				}
				return overlapping[i].Y > overlapping[j].Y
			})
			// Shared endpoints show up twice; NewLine collapses that case.
			return NewLine(overlapping[0], overlapping[len(overlapping)-1])
		}
	}

	u1 := (-p21.X*l2.Y + p11.X*l2.Y + (p21.Y-p11.Y)*l2.X) / denominator
	u2 := (-p21.X*l1.Y + p11.X*l1.Y + (p21.Y-p11.Y)*l1.X) / denominator

	if u1 >= 0 && u1 <= 1 && u2 >= 0 && u2 <= 1 {
		return Point{Point: p11.Plus(l1.Scale(u1))}
	}
	return TheEmpty
}

// positionOn gives the parameter of p along the segment with tail origin and
// direction l. Measured on x, unless the segment is vertical.
func positionOn(l P, origin, p P) float64 {
	if l.X != 0 {
		return (p.X - origin.X) / l.X
	}
	return (p.Y - origin.Y) / l.Y
}

// directedEdgeCollision finds the collision between the directed edges
// starting at index i1 of poly1 and index i2 of poly2, if any. The tail
// vertex of each edge is excluded, so a parameter of 0 is a miss while 1 is a
// hit. When collinear edges overlap in more than a point, the collision point
// is an overlapping head.
func directedEdgeCollision(i1, i2 int, poly1, poly2 []P) []CollisionSegment {
	size1 := len(poly1)
	size2 := len(poly2)

	p11 := poly1[i1]
	p12 := poly1[(i1+1)%size1]
	p21 := poly2[i2]
	p22 := poly2[(i2+1)%size2]

	l1 := p12.Minus(p11)
	l2 := p22.Minus(p21)

	denominator := l2.Cross(l1)

	if denominator == 0 {
		perpenL2 := P{-l2.Y, l2.X}.Scale(1 / l2.Norm())
		if math.Abs(perpenL2.Dot(p21.Minus(p11))) != 0 {
			return nil
		}

		// Position of head 2 on edge 1, and of head 1 on edge 2.
		u1 := positionOn(l1, p11, p22)
		u2 := positionOn(l2, p21, p12)

		if (u1 > 0 && u1 <= 1) || (u2 > 0 && u2 <= 1) {
			var crossHeadPoint P
			if u1 > 0 && u1 <= 1 {
				crossHeadPoint = p11.Plus(l1.Scale(u1))
			} else {
				crossHeadPoint = p21.Plus(l2.Scale(u2))
			}
			return []CollisionSegment{{Index1: i1, Index2: i2, Point: crossHeadPoint}}
		}
		return nil
	}

	u1 := (-p21.X*l2.Y + p11.X*l2.Y + (p21.Y-p11.Y)*l2.X) / denominator
	u2 := (-p21.X*l1.Y + p11.X*l1.Y + (p21.Y-p11.Y)*l1.X) / denominator

	if u1 > 0 && u1 <= 1 && u2 > 0 && u2 <= 1 {
		return []CollisionSegment{{Index1: i1, Index2: i2, Point: p11.Plus(l1.Scale(u1))}}
	}
	return nil
}

// pointOnSegment reports whether the point lies on the segment from p1 to p2.
// The endpoints must be distinct.
func pointOnSegment(point, p1, p2 P) bool {
	v1 := p2.Minus(p1)
	v2 := point.Minus(p1)

	if v1.Cross(v2) != 0 {
		return false
	}

	var u float64
	if v1.X != 0 {
		u = (point.X - p1.X) / v1.X
	} else {
		u = (point.Y - p1.Y) / v1.Y
	}
	return u >= 0 && u <= 1
}

// pointInPolygon reports whether the point is inside or on the border of the
// CCW polygon given by its vertices.
func pointInPolygon(points []P, point P) bool {
	size := len(points)
	for i, p := range points {
		edge := points[(i+1)%size].Minus(p)
		if edge.Cross(point.Minus(p)) < 0 {
			return false
		}
	}
	return true
}
