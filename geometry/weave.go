package geometry

import "github.com/osuushi/pixelcoll/internal"

// Weaving the intersection polygon out of collision segments. Given the
// segments found by the calipers walk, in CCW order, the intersection border
// is followed by alternating between the two polygon borders: at each
// collision the walk decides which polygon's border runs inside the other
// polygon, follows it to the next collision, and switches when the borders
// cross back. Degenerate contacts (shared vertices, collinear overlaps,
// touching edges) all land in explicit branches instead of being perturbed
// away.

type weaver struct {
	poly1, poly2 []P
	size1, size2 int
}

// intersectionFromSegments builds the intersection variant of two convex CCW
// polygons from their collision segments. An empty segment list means the
// borders never touch, leaving containment or separation.
func intersectionFromSegments(segments []CollisionSegment, poly1, poly2 []P) ConvexCCWPolygon {
	w := &weaver{
		poly1: poly1,
		poly2: poly2,
		size1: len(poly1),
		size2: len(poly2),
	}

	var intersection []P
	if len(segments) == 0 {
		switch {
		case pointInPolygon(poly1, poly2[0]):
			intersection = poly2
		case pointInPolygon(poly2, poly1[0]):
			intersection = poly1
		}
	} else {
		intersection = w.construct(segments, nil, &segments[0])
	}

	return VariantFromPoints(intersection)
}

// If the same direction, or if one or both is a zero-vector. Zero-vectors
// should never occur here.
func sameDir(v1, v2 P) bool {
	return v1.Cross(v2) == 0 && v1.Dot(v2) >= 0
}

// If opposite direction. Zero-vectors are defined as not opposite.
func oppositeDir(v1, v2 P) bool {
	return v1.Cross(v2) == 0 && v1.Dot(v2) < 0
}

// cwOrder reports whether the vectors are in strictly clockwise order,
// starting from the first vector. This is the oracle the construction
// branches use to decide whether a border turn keeps the walk inside the
// intersection.
func cwOrder(vs []P) bool {
	if len(vs) == 0 {
		return true
	}
	for _, v := range vs {
		if v.Norm() == 0 {
			return false
		}
	}

	x := vs[0].NormalizeUnsafe()
	type placement struct {
		cross, dot float64
	}
	placed := make([]placement, 0, len(vs)-1)
	for _, v := range vs[1:] {
		n := v.NormalizeUnsafe()
		placed = append(placed, placement{x.Cross(n), x.Dot(n)})
	}

	// No vector may share the direction of the first one.
	for _, y := range placed {
		if y.cross == 0 && y.dot >= 0 {
			return false
		}
	}

	// Clockwise from x means passing through the cross < 0 half plane with
	// falling dot, then the cross > 0 half plane with rising dot. Consecutive
	// vectors must keep making progress through that sweep.
	for i := 0; i+1 < len(placed); i++ {
		y1 := placed[i]
		y2 := placed[i+1]
		switch {
		case y1.cross == 0:
			if y2.cross > 0 {
				continue
			}
			return false
		case y1.cross > 0:
			if y2.cross > 0 && y1.dot < y2.dot {
				continue
			}
			return false
		default:
			if y2.cross >= 0 {
				continue
			}
			if y1.dot > y2.dot {
				continue
			}
			return false
		}
	}
	return true
}

// ahead reports whether polygon 1's head has passed polygon 2's head. Only
// meaningful for overlapping same-direction edges whose heads differ.
func (w *weaver) ahead(i1, i2 int) bool {
	p11 := w.poly1[i1]
	p12 := w.poly1[(i1+1)%w.size1]
	p22 := w.poly2[(i2+1)%w.size2]

	v1 := p12.Minus(p11)
	v2 := p22.Minus(p12)
	return v1.Dot(v2) < 0
}

// appendDedup extends the border under construction, skipping the point if
// it repeats the current tail.
func appendDedup(res []P, p P) []P {
	if len(res) >= 1 && res[len(res)-1] == p {
		return res
	}
	return append(res, p)
}

// followPoly1 walks along polygon 1's border, collecting its vertices, until
// reaching the edge of the next collision segment. With no segments left it
// walks on to the first segment's edge, closing the border loop.
func (w *weaver) followPoly1(segments []CollisionSegment, res []P, i1, i2 int, last *CollisionSegment) []P {
	if len(segments) >= 1 {
		if segments[0].Index1 == i1 {
			return w.construct(segments, res, last)
		}
		nextI1 := (i1 + 1) % w.size1
		return w.followPoly1(segments, appendDedup(res, w.poly1[nextI1]), nextI1, i2, last)
	}

	if last == nil || last.Index1 == i1 {
		return res
	}
	nextI1 := (i1 + 1) % w.size1
	return w.followPoly1(segments, appendDedup(res, w.poly1[nextI1]), nextI1, i2, last)
}

// followPoly2 is followPoly1 with the polygon roles traded.
func (w *weaver) followPoly2(segments []CollisionSegment, res []P, i1, i2 int, last *CollisionSegment) []P {
	if len(segments) >= 1 {
		if segments[0].Index2 == i2 {
			return w.construct(segments, res, last)
		}
		nextI2 := (i2 + 1) % w.size2
		return w.followPoly2(segments, appendDedup(res, w.poly2[nextI2]), i1, nextI2, last)
	}

	if last == nil || last.Index2 == i2 {
		return res
	}
	nextI2 := (i2 + 1) % w.size2
	return w.followPoly2(segments, appendDedup(res, w.poly2[nextI2]), i1, nextI2, last)
}

// construct dispatches on the shape of the collision at the head segment and
// either terminates with a degenerate intersection or picks the border to
// follow next.
func (w *weaver) construct(segments []CollisionSegment, res []P, last *CollisionSegment) []P {
	if len(segments) == 0 {
		return res
	}

	x := segments[0]
	xs := segments[1:]

	i1 := x.Index1
	i2 := x.Index2

	p11 := w.poly1[i1]
	p12 := w.poly1[(i1+1)%w.size1]
	p13 := w.poly1[(i1+2)%w.size1]
	p21 := w.poly2[i2]
	p22 := w.poly2[(i2+1)%w.size2]
	p23 := w.poly2[(i2+2)%w.size2]

	v11 := p12.Minus(p11)
	v12 := p13.Minus(p12)
	v21 := p22.Minus(p21)
	v22 := p23.Minus(p22)

	if p12 == p22 {
		// The heads meet in a shared vertex.
		if !sameDir(v11, v21) {
			switch {
			case cwOrder([]P{v11.Neg(), v12, v21.Neg()}) && cwOrder([]P{v21.Neg(), v22, v11.Neg()}):
				// The polygons only touch in this vertex.
				return []P{p12}
			case cwOrder([]P{v11.Neg(), v21.Neg(), v22, v12}) || cwOrder([]P{v11.Neg(), v22, v12, v21.Neg()}):
				return w.followPoly2(xs, append(res, p12), i1, i2, last)
			case oppositeDir(v11, v22):
				// Polygon 1's incoming edge runs back along polygon 2's
				// outgoing edge. The polygons lie on opposite sides of it, so
				// the intersection is the shared stretch.
				if p11.Minus(p12).Norm() < p23.Minus(p12).Norm() {
					return []P{p12, p11}
				}
				return []P{p12, p23}
			case oppositeDir(v12, v21):
				// Polygon 1's outgoing edge runs back along polygon 2's
				// incoming edge; same as above with the roles traded.
				if p13.Minus(p12).Norm() < p21.Minus(p12).Norm() {
					return []P{p12, p13}
				}
				return []P{p12, p21}
			default:
				return w.followPoly1(xs, append(res, p12), i1, i2, last)
			}
		}
		if cwOrder([]P{v11.Neg(), v22, v12}) {
			return w.followPoly2(xs, append(res, p12), i1, i2, last)
		}
		return w.followPoly1(xs, append(res, p12), i1, i2, last)
	}

	if oppositeDir(v11, v21) {
		// Opposite collinear overlap. The intersection is the overlapping
		// stretch itself, bounded by the nearer endpoint on each side.
		first := p22
		if p12.Minus(p11).Norm() < p12.Minus(p22).Norm() {
			first = p11
		}
		second := p12
		if p22.Minus(p21).Norm() < p22.Minus(p12).Norm() {
			second = p21
		}
		return []P{first, second}
	}

	if sameDir(v11, v21) {
		// Same-direction collinear overlap. Follow whichever border ends
		// first, since its head is the one inside the overlap.
		if w.ahead(i1, i2) {
			return w.followPoly2(xs, append(res, p22), i1, i2, last)
		}
		return w.followPoly1(xs, append(res, p12), i1, i2, last)
	}

	// Transversal cross.
	collisions := directedEdgeCollision(i1, i2, w.poly1, w.poly2)
	if len(collisions) == 0 {
		internal.Fatalf("edges at %d, %d claim a cross but do not collide", i1, i2)
	}
	collisionPoint := collisions[0].Point

	if collisionPoint != p12 && collisionPoint != p22 {
		if v11.Cross(v21) > 0 {
			return w.followPoly2(xs, appendDedup(res, collisionPoint), i1, i2, last)
		}
		return w.followPoly1(xs, appendDedup(res, collisionPoint), i1, i2, last)
	}

	if collisionPoint == p12 {
		// Polygon 1's head lies on polygon 2's edge.
		switch {
		case cwOrder([]P{v21, v11.Neg(), v12, v21.Neg()}):
			return []P{collisionPoint}
		case cwOrder([]P{v11.Neg(), v21, v12}):
			return w.followPoly2(xs, appendDedup(res, collisionPoint), i1, i2, last)
		default:
			return w.followPoly1(xs, appendDedup(res, collisionPoint), i1, i2, last)
		}
	}

	// Polygon 2's head lies on polygon 1's edge.
	switch {
	case cwOrder([]P{v11, v21.Neg(), v22, v11.Neg()}):
		return []P{collisionPoint}
	case cwOrder([]P{v21.Neg(), v11, v22}):
		return w.followPoly1(xs, appendDedup(res, collisionPoint), i1, i2, last)
	default:
		return w.followPoly2(xs, appendDedup(res, collisionPoint), i1, i2, last)
	}
}
