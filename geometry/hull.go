package geometry

import "sort"

// ConvexHull gives the convex hull of the points as a polygon variant: Empty
// for no input, Point or Line for degenerate hulls, and otherwise a CCW
// Polygon with no collinear vertices. Duplicate input points are fine.
func ConvexHull(points []P) ConvexCCWPolygon {
	if len(points) == 0 {
		return TheEmpty
	}

	sorted := make([]P, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Drop duplicates so the chain never sees a zero-length edge.
	unique := sorted[:1]
	for _, p := range sorted[1:] {
		if p != unique[len(unique)-1] {
			unique = append(unique, p)
		}
	}

	if len(unique) == 1 {
		return Point{Point: unique[0]}
	}
	if len(unique) == 2 {
		return NewLine(unique[0], unique[1])
	}

	// Monotone chain. Collinear points are pruned along with reflex ones, so
	// the hull polygon invariant holds by construction.
	buildChain := func(input []P) []P {
		var chain []P
		for _, p := range input {
			for len(chain) >= 2 {
				a := chain[len(chain)-2]
				b := chain[len(chain)-1]
				if b.Minus(a).Cross(p.Minus(a)) > 0 {
					break
				}
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}

	lower := buildChain(unique)
	reversed := make([]P, len(unique))
	for i, p := range unique {
		reversed[len(unique)-1-i] = p
	}
	upper := buildChain(reversed)

	// Each chain ends where the other begins.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return VariantFromPoints(hull)
}
