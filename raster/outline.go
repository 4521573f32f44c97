package raster

import (
	"math"

	"github.com/osuushi/pixelcoll/geometry"
)

// PixelSet is a set of integer pixels.
type PixelSet map[geometry.IP]struct{}

func (s PixelSet) add(p geometry.IP) {
	s[p] = struct{}{}
}

func (s PixelSet) union(o PixelSet) {
	for p := range o {
		s[p] = struct{}{}
	}
}

// Contains reports whether the pixel is in the set.
func (s PixelSet) Contains(p geometry.IP) bool {
	_, ok := s[p]
	return ok
}

func round(a float64) int {
	return int(math.Round(a))
}

// lineAboveMiddle classifies the line through c1 and c2 against the middle
// point: 1 when the line lies above the middle (for vertical lines, to its
// right), -1 when below, 0 when the middle is on the line. Computed in full
// precision so rounding cannot flip the side.
func lineAboveMiddle(c1, c2, middle geometry.P) int {
	xD := c2.X - c1.X
	yD := c2.Y - c1.Y

	if xD != 0 {
		ym2 := (middle.X-c1.X)*yD/xD + c1.Y
		switch {
		case ym2 > middle.Y:
			return 1
		case ym2 < middle.Y:
			return -1
		default:
			return 0
		}
	}

	switch {
	case c1.X > middle.X:
		return 1
	case c1.X < middle.X:
		return -1
	default:
		return 0
	}
}

// lineToPoints rasterizes the border segment from c1 to c2 into pixels,
// pushed one pixel away from the middle point so the raster strictly
// over-approximates the region. The rounded endpoints are always included.
func lineToPoints(c1, c2, middle geometry.P) PixelSet {
	above := lineAboveMiddle(c1, c2, middle)

	x1 := round(c1.X)
	y1 := round(c1.Y)
	x2 := round(c2.X)
	y2 := round(c2.Y)

	result := PixelSet{}
	result.add(geometry.IP{X: x1, Y: y1})
	result.add(geometry.IP{X: x2, Y: y2})

	xD := x2 - x1
	yD := y2 - y1

	var line []geometry.IP
	switch {
	case xD == 0 && yD == 0:
		line = []geometry.IP{{X: x1, Y: y1}}
	case xD == 0:
		line = bresenhamLine(
			geometry.IP{X: x1 + above, Y: y1},
			geometry.IP{X: x2 + above, Y: y2},
		)
	case yD == 0:
		line = bresenhamLine(
			geometry.IP{X: x1, Y: y1 + above},
			geometry.IP{X: x2, Y: y2 + above},
		)
	case (xD > 0) == (yD > 0):
		line = bresenhamLine(
			geometry.IP{X: x1 - above, Y: y1 + above},
			geometry.IP{X: x2 - above, Y: y2 + above},
		)
	default:
		line = bresenhamLine(
			geometry.IP{X: x1 + above, Y: y1 + above},
			geometry.IP{X: x2 + above, Y: y2 + above},
		)
	}

	for _, p := range line {
		result.add(p)
	}
	return result
}

// closedCoordinates gives the border walk for the variant. Proper polygons
// repeat their first vertex so the closing edge is rasterized too.
func closedCoordinates(region geometry.Nonempty) []geometry.P {
	points := region.Points()
	if _, isPolygon := region.(geometry.Polygon); isPolygon {
		points = append(append([]geometry.P{}, points...), points[0])
	}
	return points
}

// findOutline rasterizes the border of the region into pixels.
func findOutline(region geometry.Nonempty) PixelSet {
	middle := region.MiddlePoint()
	coordinates := closedCoordinates(region)

	outline := PixelSet{}
	for i := 0; i+1 < len(coordinates); i++ {
		outline.union(lineToPoints(coordinates[i], coordinates[i+1], middle))
	}
	last := coordinates[len(coordinates)-1]
	outline.union(lineToPoints(last, last, middle))
	return outline
}

// findOutlineStoppage rasterizes the border of the region, testing each
// pixel as it appears. When the test passes for any border pixel the walk
// stops and reports true; otherwise the full outline comes back with false.
func findOutlineStoppage(region geometry.Nonempty, test func(geometry.IP) bool) (PixelSet, bool) {
	middle := region.MiddlePoint()
	coordinates := closedCoordinates(region)

	outline := PixelSet{}
	for i := 0; i+1 < len(coordinates); i++ {
		linePoints := lineToPoints(coordinates[i], coordinates[i+1], middle)
		for p := range linePoints {
			if test(p) {
				return nil, true
			}
		}
		outline.union(linePoints)
	}

	last := coordinates[len(coordinates)-1]
	linePoints := lineToPoints(last, last, middle)
	for p := range linePoints {
		if test(p) {
			return nil, true
		}
	}
	outline.union(linePoints)
	return outline, false
}
