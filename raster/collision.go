package raster

import "github.com/osuushi/pixelcoll/geometry"

// CollisionTest reports whether any pixel covered by the region passes the
// test. A pixel at index (x, y) stands for the unit square [x, x+1] by
// [y, y+1], so the region is shifted by half a pixel before rasterizing to
// line indices up with areas.
//
// The border is tested first, then the interior fill, and the scan stops at
// the first passing pixel.
func CollisionTest(region geometry.Nonempty, test func(geometry.IP) bool) bool {
	corrected := region.Translate(geometry.P{X: -0.5, Y: -0.5}).(geometry.Nonempty)

	outline, hit := findOutlineStoppage(corrected, test)
	if hit {
		return true
	}
	return fillOutlineStoppage(outline, test)
}
