package geometry

import "sort"

// The intersection driver. Dispatches over every pair of polygon variants,
// culls by bounding box first, and for the proper polygon-polygon case runs
// the calipers walk followed by the weave.

// IntersectionResult is either a verdict or a region. When Known is true,
// Collides answers whether the shapes overlap and Region is nil; otherwise
// Region holds the concrete intersection variant.
type IntersectionResult struct {
	Known    bool
	Collides bool
	Region   ConvexCCWPolygon
}

func knownResult(collides bool) IntersectionResult {
	return IntersectionResult{Known: true, Collides: collides}
}

func regionResult(region ConvexCCWPolygon) IntersectionResult {
	return IntersectionResult{Region: region}
}

// Intersection computes the intersection of two polygon variants.
//
// full1 and full2 say whether each polygon stands for a completely filled
// shape. When both are full there is no reason to materialize the
// intersection region, and the result is a plain verdict.
//
// approx1 and approx2 are optional precomputed bounding boxes that may
// over-approximate the polygons. They let repeated queries skip the exact
// bounds most of the time: culling checks the approximate boxes first and
// the precise ones after.
func Intersection(poly1, poly2 ConvexCCWPolygon, full1, full2 bool, approx1, approx2 *BoundingBox) IntersectionResult {
	if !boundingBoxesIntersect(poly1, poly2, approx1, approx2) {
		return knownResult(false)
	}

	region := intersectRegion(poly1, poly2)
	if full1 && full2 {
		_, empty := region.(Empty)
		return knownResult(!empty)
	}
	return regionResult(region)
}

func boundingBoxesIntersect(poly1, poly2 ConvexCCWPolygon, approx1, approx2 *BoundingBox) bool {
	points1 := poly1.Points()
	points2 := poly2.Points()
	if len(points1) == 0 || len(points2) == 0 {
		return false
	}

	switch {
	case approx1 == nil && approx2 == nil:
		return BoundingBoxOf(points1).Intersects(BoundingBoxOf(points2))
	case approx1 != nil && approx2 == nil:
		box2 := BoundingBoxOf(points2)
		return approx1.Intersects(box2) && BoundingBoxOf(points1).Intersects(box2)
	case approx1 == nil && approx2 != nil:
		box1 := BoundingBoxOf(points1)
		return box1.Intersects(*approx2) && box1.Intersects(BoundingBoxOf(points2))
	default:
		return approx1.Intersects(*approx2) &&
			BoundingBoxOf(points1).Intersects(BoundingBoxOf(points2))
	}
}

func intersectRegion(poly1, poly2 ConvexCCWPolygon) ConvexCCWPolygon {
	switch a := poly1.(type) {
	case Polygon:
		switch b := poly2.(type) {
		case Polygon:
			return polygonPolygon(a, b)
		case Line:
			return linePolygon(b, a)
		case Point:
			return pointPolygon(b.Point, a)
		}
	case Line:
		switch b := poly2.(type) {
		case Polygon:
			return linePolygon(a, b)
		case Line:
			return SegmentIntersection(a.P1, a.P2, b.P1, b.P2)
		case Point:
			return pointLine(b.Point, a)
		}
	case Point:
		switch b := poly2.(type) {
		case Polygon:
			return pointPolygon(a.Point, b)
		case Line:
			return pointLine(a.Point, b)
		case Point:
			if a.Point == b.Point {
				return a
			}
			return TheEmpty
		}
	}
	// At least one argument is Empty; culling normally catches this first.
	return TheEmpty
}

func polygonPolygon(poly1, poly2 Polygon) ConvexCCWPolygon {
	points1 := poly1.Points()
	points2 := poly2.Points()

	origin1 := leftmostUpperIndex(points1)
	origin2 := leftmostUpperIndex(points2)

	segments, ok := findCollisionSegments(points1, points2, origin1, origin2)
	if !ok {
		// No cross at all means no border contact and no containment.
		return TheEmpty
	}
	return intersectionFromSegments(segments, points1, points2)
}

// leftmostUpperIndex picks the caliper starting vertex: smallest x, and of
// those the largest y.
func leftmostUpperIndex(points []P) int {
	best := 0
	for i, p := range points {
		chosen := points[best]
		if p.X > chosen.X || (p.X == chosen.X && p.Y < chosen.Y) {
			continue
		}
		best = i
	}
	return best
}

func pointPolygon(point P, poly Polygon) ConvexCCWPolygon {
	if pointInPolygon(poly.Points(), point) {
		return Point{Point: point}
	}
	return TheEmpty
}

func pointLine(point P, line Line) ConvexCCWPolygon {
	if pointOnSegment(point, line.P1, line.P2) {
		return Point{Point: point}
	}
	return TheEmpty
}

// linePolygon intersects a line with a polygon by colliding the line against
// every polygon edge and gluing the results together with the line endpoints
// that lie inside the polygon.
func linePolygon(line Line, poly Polygon) ConvexCCWPolygon {
	points := poly.Points()
	size := len(points)

	var collisionPoints []P
	for i, p21 := range points {
		p22 := points[(i+1)%size]
		switch r := SegmentIntersection(line.P1, line.P2, p21, p22).(type) {
		case Line:
			// The line runs along this edge; the overlap is the whole
			// intersection.
			return r
		case Point:
			collisionPoints = append(collisionPoints, r.Point)
		}
	}

	if pointInPolygon(points, line.P1) {
		collisionPoints = append(collisionPoints, line.P1)
	}
	if pointInPolygon(points, line.P2) {
		collisionPoints = append(collisionPoints, line.P2)
	}

	unique := collisionPoints[:0:0]
	seen := make(map[P]struct{}, len(collisionPoints))
	for _, p := range collisionPoints {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}

	switch len(unique) {
	case 0:
		return TheEmpty
	case 1:
		return Point{Point: unique[0]}
	default:
		sort.Slice(unique, func(i, j int) bool {
			if unique[i].X != unique[j].X {
				return unique[i].X < unique[j].X
			}
			return unique[i].Y < unique[j].Y
		})
		return NewLine(unique[0], unique[1])
	}
}
