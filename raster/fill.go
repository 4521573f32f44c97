package raster

import (
	"sort"

	"github.com/osuushi/pixelcoll/geometry"
)

// Scanline filling. The outline pixels are grouped by row; each row covers
// the span from its leftmost to its rightmost outline pixel. Convexity makes
// that span exactly the filled region. A disconnected outline gives no
// meaningful fill.

func horizontalSpans(outline PixelSet) map[int][2]int {
	spans := make(map[int][2]int)
	for p := range outline {
		span, ok := spans[p.Y]
		if !ok {
			spans[p.Y] = [2]int{p.X, p.X}
			continue
		}
		if p.X < span[0] {
			span[0] = p.X
		}
		if p.X > span[1] {
			span[1] = p.X
		}
		spans[p.Y] = span
	}
	return spans
}

// fillOutline expands the outline into all covered pixels, as sorted x runs
// keyed by row.
func fillOutline(outline PixelSet) map[int][]int {
	filled := make(map[int][]int, len(outline))
	for y, span := range horizontalSpans(outline) {
		xs := make([]int, 0, span[1]-span[0]+1)
		for x := span[0]; x <= span[1]; x++ {
			xs = append(xs, x)
		}
		filled[y] = xs
	}
	return filled
}

// fillOutlineStoppage tests every pixel covered by the outline's fill,
// reporting whether the test passes anywhere. Rows are visited bottom-up so
// repeated queries touch pixels in a stable order.
func fillOutlineStoppage(outline PixelSet, test func(geometry.IP) bool) bool {
	spans := horizontalSpans(outline)

	ys := make([]int, 0, len(spans))
	for y := range spans {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	for _, y := range ys {
		span := spans[y]
		for x := span[0]; x <= span[1]; x++ {
			if test(geometry.IP{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}
