package geometry

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// Rotating calipers collision segment finder. This is a robust variation of
// the algorithm described at
// http://www-cgrl.cs.mcgill.ca/~godfried/teaching/cg-projects/97/Plante/CompGeomProject-EPlante/algorithm.html
// It finds all intersections between two convex CCW polygons, including
// those that lie in pockets, and emits them in CCW order so the weaving step
// can follow the intersection boundary.
//
// A collision segment is defined against directed edges: for an index i of a
// polygon, take the edge from point i to point i+1, excluding point i. Two
// indices collide iff their directed edges overlap.

// Dir is the direction of the second polygon's caliper relative to the
// first polygon's.
type Dir int

const (
	LeftDir Dir = iota
	RightDir
	SameDir
)

// Colored for legibility when dumping caliper walks.
func (d Dir) String() string {
	switch d {
	case LeftDir:
		return aurora.Green("left").String()
	case RightDir:
		return aurora.Red("right").String()
	case SameDir:
		return aurora.Yellow("same").String()
	}
	return "invalid"
}

// CollisionSegment marks a collision between the directed edge at Index1 of
// the first polygon and the directed edge at Index2 of the second.
type CollisionSegment struct {
	Index1, Index2 int
	Point          P
}

func (s CollisionSegment) String() string {
	return fmt.Sprintf("colli(%d, %d, (%v, %v))", s.Index1, s.Index2, s.Point.X, s.Point.Y)
}

type segmentsFinder struct {
	poly1, poly2     []P
	origin1, origin2 int
	size1, size2     int
}

// findCollisionSegments walks the calipers of both polygons starting at the
// given origin indices and collects every collision segment, in CCW order.
// The second result is false when the caliper directions change without any
// edge collision, which means the polygon borders do not touch at all.
//
// The origin indices must be caliper-compatible; starting both polygons at
// their leftmost uppermost points satisfies that.
func findCollisionSegments(poly1, poly2 []P, origin1, origin2 int) ([]CollisionSegment, bool) {
	f := &segmentsFinder{
		poly1:   poly1,
		poly2:   poly2,
		origin1: origin1,
		origin2: origin2,
		size1:   len(poly1),
		size2:   len(poly2),
	}
	return f.findAll()
}

func prevIndex(a, size int) int {
	if a-1 < 0 {
		return size - 1
	}
	return a - 1
}

func (f *segmentsFinder) findAll() ([]CollisionSegment, bool) {
	res := []CollisionSegment{}

	// The first step only establishes the previous direction; segments are
	// collected from the second position on, and the walk terminates when it
	// comes back around to the origin pair.
	i1, i2 := f.origin1, f.origin2
	prevDir := f.findDir(i1, i2)
	i1, i2 = f.comingIndex(i1, i2, prevDir)

	for {
		currentDir := f.findDir(i1, i2)

		switch {
		case currentDir == SameDir:
			// Parallel calipers complicate things. They are handled rather
			// than perturbed away to keep the walk geometrically robust.
			p11 := f.poly1[i1]
			p12 := f.poly1[(i1+1)%f.size1]
			p21 := f.poly2[i2]
			p22 := f.poly2[(i2+1)%f.size2]

			if _, apart := SegmentIntersection(p11, p12, p21, p22).(Empty); apart {
				// Parallel but apart, so this is an ordinary cross position.
				cross, ok := f.cross(i1, i2, prevDir, currentDir)
				if !ok {
					return nil, false
				}
				res = append(res, cross...)
			} else {
				res = append(res, f.overlapSegments(i1, i2)...)
			}

		case (prevDir == LeftDir && currentDir == RightDir) ||
			(prevDir == RightDir && currentDir == LeftDir):
			// The calipers changed relative direction cleanly. If the cross
			// holds no collision, the borders cannot touch anywhere.
			cross, ok := f.cross(i1, i2, prevDir, currentDir)
			if !ok {
				return nil, false
			}
			res = append(res, cross...)

		default:
			// Same direction as before, or coming out of a parallel stretch.
			// Any collision here has been or will be picked up elsewhere.
		}

		if i1 == f.origin1 && i2 == f.origin2 {
			return res, true
		}
		i1, i2 = f.comingIndex(i1, i2, currentDir)
		prevDir = currentDir
	}
}

// findDir gives the direction of polygon 2's caliper relative to polygon
// 1's. The caliper whose edge turns first decides which polygon the other is
// compared against.
func (f *segmentsFinder) findDir(i1, i2 int) Dir {
	p11 := f.poly1[i1]
	p12 := f.poly1[(i1+1)%f.size1]
	p21 := f.poly2[i2]
	p22 := f.poly2[(i2+1)%f.size2]

	v1 := p12.Minus(p11)
	v2 := p22.Minus(p21)

	if v1.Cross(v2) >= 0 {
		switch c := v1.Cross(p21.Minus(p11)); {
		case c == 0:
			return SameDir
		case c > 0:
			return LeftDir
		default:
			return RightDir
		}
	}

	// Measuring from polygon 2 instead, so left and right trade places.
	switch c := v2.Cross(p11.Minus(p21)); {
	case c == 0:
		return SameDir
	case c > 0:
		return RightDir
	default:
		return LeftDir
	}
}

// comingIndex moves the calipers one step: the edge that turns less advances,
// and parallel edges advance together.
func (f *segmentsFinder) comingIndex(i1, i2 int, currentDir Dir) (int, int) {
	nextI1 := (i1 + 1) % f.size1
	nextI2 := (i2 + 1) % f.size2

	v1 := f.poly1[nextI1].Minus(f.poly1[i1])
	v2 := f.poly2[nextI2].Minus(f.poly2[i2])

	switch c := v1.Cross(v2); {
	case c == 0:
		return nextI1, nextI2
	case c > 0:
		return nextI1, i2
	default:
		return i1, nextI2
	}
}

// overlapSegments handles the calipers lying on top of each other. Besides
// the collision of the directed edges at (i1, i2), the shared stretch may
// have started one edge back on either polygon, and those backtracked
// segments must be included for the weave to follow the border correctly.
func (f *segmentsFinder) overlapSegments(i1, i2 int) []CollisionSegment {
	p11 := f.poly1[i1]
	p12 := f.poly1[(i1+1)%f.size1]
	p21 := f.poly2[i2]
	p22 := f.poly2[(i2+1)%f.size2]

	var res []CollisionSegment
	if p11 != p21 {
		if pointOnSegment(p11, p21, p22) {
			res = append(res, CollisionSegment{Index1: prevIndex(i1, f.size1), Index2: i2, Point: p11})
		}
		if pointOnSegment(p21, p11, p12) {
			res = append(res, CollisionSegment{Index1: i1, Index2: prevIndex(i2, f.size2), Point: p21})
		}
	}
	return append(res, directedEdgeCollision(i1, i2, f.poly1, f.poly2)...)
}

// cross finds the collision of a caliper cross. The left-to-right and
// right-to-left shifts are symmetric: handling polygon 1 and polygon 2 left
// to right is the same as handling polygon 2 and polygon 1 right to left, so
// the second case swaps the polygons instead of duplicating the walk.
func (f *segmentsFinder) cross(i1, i2 int, prevDir, currentDir Dir) ([]CollisionSegment, bool) {
	switch {
	case prevDir == LeftDir && (currentDir == RightDir || currentDir == SameDir):
		return crossFromLeft(i1, i2, f.poly1, f.poly2, func(a, b int) []CollisionSegment {
			return directedEdgeCollision(a, b, f.poly1, f.poly2)
		})

	case prevDir == RightDir && (currentDir == LeftDir || currentDir == SameDir):
		return crossFromLeft(i2, i1, f.poly2, f.poly1, func(a, b int) []CollisionSegment {
			return directedEdgeCollision(b, a, f.poly1, f.poly2)
		})

	default:
		return nil, false
	}
}

// crossFromLeft finds a cross given that the second argument polygon was
// previously to the left of the first. It advances along polygon 1 and backs
// up along polygon 2 until the edges can cross, then probes the two most
// recent polygon 2 edges for the actual collision.
func crossFromLeft(i1, i2 int, poly1, poly2 []P, getColli func(a, b int) []CollisionSegment) ([]CollisionSegment, bool) {
	s1 := len(poly1)
	s2 := len(poly2)

	for {
		p11 := poly1[i1]
		p12 := poly1[(i1+1)%s1]
		p21 := poly2[i2]
		p22 := poly2[prevIndex(i2, s2)]

		v1 := p12.Minus(p11)
		v2 := p22.Minus(p21)

		if v1.Cross(v2) < 0 {
			return nil, false
		}

		if v2.Cross(p12.Minus(p21)) > 0 {
			i1 = (i1 + 1) % s1
			continue
		}
		if v1.Cross(p22.Minus(p11)) < 0 {
			i2 = prevIndex(i2, s2)
			continue
		}

		// The cross is pinned down to the last two polygon 2 edges.
		i22 := prevIndex(i2, s2)
		if segments := getColli(i1, i22); len(segments) > 0 {
			return segments, true
		}
		if segments := getColli(i1, prevIndex(i22, s2)); len(segments) > 0 {
			return segments, true
		}
		return nil, false
	}
}
