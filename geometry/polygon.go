package geometry

// The convex polygon variants. A ConvexCCWPolygon is one of Empty, Point,
// Line or Polygon. Polygons must be convex, wound counterclockwise, and free
// of duplicate or collinear vertices; the degenerate cases are represented by
// the smaller variants rather than by degenerate Polygons. Constructors
// collapse downwards (a Line with equal endpoints becomes a Point), so
// algorithms can type switch on the variant and trust its shape.

// Variants are polymorphic, and the intersection driver dispatches on every
// pair of them. We use this interface to provide a union between the variant
// types.
type ConvexCCWPolygon interface {
	// The vertices of the variant in CCW order. Empty has none, Point one,
	// Line two.
	Points() []P

	// The same variant moved by the given offset.
	Translate(offset P) ConvexCCWPolygon

	// This is a dummy method that ensures that arbitrary types don't satisfy
	// ConvexCCWPolygon by accident. The method is unused, but is a hint to the
	// type system that keeps the variant set closed.
	convexVariantTypeHint()
}

// Nonempty is the subset of variants that contain at least one point.
type Nonempty interface {
	ConvexCCWPolygon

	// The average of the variant's points.
	MiddlePoint() P
}

// Variant set enumerated here with type hint
func (Empty) convexVariantTypeHint()   {}
func (Point) convexVariantTypeHint()   {}
func (Line) convexVariantTypeHint()    {}
func (Polygon) convexVariantTypeHint() {}

type Empty struct{}

// TheEmpty is the shared empty variant. It carries no state, so concurrent
// use is fine.
var TheEmpty = Empty{}

func (Empty) Points() []P {
	return nil
}

func (e Empty) Translate(offset P) ConvexCCWPolygon {
	return e
}

type Point struct {
	Point P
}

func NewPoint(p P) Point {
	return Point{Point: p}
}

func (p Point) Points() []P {
	return []P{p.Point}
}

func (p Point) Translate(offset P) ConvexCCWPolygon {
	return Point{Point: p.Point.Plus(offset)}
}

func (p Point) MiddlePoint() P {
	return p.Point
}

// Line is a segment with distinct endpoints. NewLine maintains the
// distinctness invariant, so construct lines through it.
type Line struct {
	P1, P2 P
}

// NewLine gives the variant for a segment between two points: a Point if they
// are equal, else a Line.
func NewLine(p1, p2 P) Nonempty {
	if p1 == p2 {
		return Point{Point: p1}
	}
	return Line{P1: p1, P2: p2}
}

func (l Line) Points() []P {
	return []P{l.P1, l.P2}
}

func (l Line) Translate(offset P) ConvexCCWPolygon {
	return Line{P1: l.P1.Plus(offset), P2: l.P2.Plus(offset)}
}

func (l Line) MiddlePoint() P {
	return P{(l.P1.X + l.P2.X) / 2, (l.P1.Y + l.P2.Y) / 2}
}

// Polygon is a proper convex polygon: at least 3 vertices, CCW winding, no
// collinear triples. NewPolygonUnchecked trusts the caller on all three.
type Polygon struct {
	points []P
	middle P
}

func NewPolygonUnchecked(points []P) Polygon {
	var sum P
	for _, p := range points {
		sum = sum.Plus(p)
	}
	return Polygon{
		points: points,
		middle: sum.Scale(1 / float64(len(points))),
	}
}

func (poly Polygon) Points() []P {
	return poly.points
}

func (poly Polygon) Translate(offset P) ConvexCCWPolygon {
	translated := make([]P, len(poly.points))
	for i, p := range poly.points {
		translated[i] = p.Plus(offset)
	}
	return Polygon{points: translated, middle: poly.middle.Plus(offset)}
}

func (poly Polygon) MiddlePoint() P {
	return poly.middle
}

// VariantFromPoints gives the variant matching a CCW vertex list: Empty for
// none, Point for one, Line for two, Polygon otherwise. The list must already
// satisfy the Polygon invariants when it has 3 or more points.
func VariantFromPoints(points []P) ConvexCCWPolygon {
	switch len(points) {
	case 0:
		return TheEmpty
	case 1:
		return Point{Point: points[0]}
	case 2:
		return NewLine(points[0], points[1])
	default:
		return NewPolygonUnchecked(points)
	}
}
