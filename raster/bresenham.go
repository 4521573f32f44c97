// Package raster turns convex intersection regions into pixel sets and runs
// the pixel-perfect half of the collision test: the region's outline is
// rasterized with Bresenham lines, filled by scanline, and every covered
// pixel is handed to a caller-supplied test.
package raster

import "github.com/osuushi/pixelcoll/geometry"

// bresenhamLine rasterizes the segment from start to end into a connected
// run of pixels, endpoints included.
func bresenhamLine(start, end geometry.IP) []geometry.IP {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	deltax := x1 - x0
	deltay := abs(y1 - y0)
	errorAcc := deltax / 2
	ystep := 1
	if y0 >= y1 {
		ystep = -1
	}

	points := make([]geometry.IP, 0, deltax+1)
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			points = append(points, geometry.IP{X: y, Y: x})
		} else {
			points = append(points, geometry.IP{X: x, Y: y})
		}
		errorAcc -= deltay
		if errorAcc < 0 {
			y += ystep
			errorAcc += deltax
		}
	}
	return points
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
