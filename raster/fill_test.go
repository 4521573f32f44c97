package raster

import (
	"testing"

	"github.com/osuushi/pixelcoll/geometry"
	"github.com/stretchr/testify/assert"
)

func ringOutline() PixelSet {
	outline := PixelSet{}
	for _, p := range []geometry.IP{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1},
		{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
		{X: 0, Y: 1},
	} {
		outline.add(p)
	}
	return outline
}

func TestHorizontalSpans(t *testing.T) {
	spans := horizontalSpans(ringOutline())
	assert.Equal(t, map[int][2]int{
		0: {0, 2},
		1: {0, 2},
		2: {0, 2},
	}, spans)
}

func TestFillOutline(t *testing.T) {
	t.Run("Ring fills its interior", func(t *testing.T) {
		filled := fillOutline(ringOutline())
		assert.Equal(t, map[int][]int{
			0: {0, 1, 2},
			1: {0, 1, 2},
			2: {0, 1, 2},
		}, filled)
	})

	t.Run("Single pixel", func(t *testing.T) {
		outline := PixelSet{}
		outline.add(geometry.IP{X: 5, Y: 7})
		assert.Equal(t, map[int][]int{7: {5}}, fillOutline(outline))
	})

	t.Run("Empty outline", func(t *testing.T) {
		assert.Empty(t, fillOutline(PixelSet{}))
	})
}

func TestFillOutlineStoppage(t *testing.T) {
	t.Run("Hit in the interior", func(t *testing.T) {
		target := geometry.IP{X: 1, Y: 1}
		hit := fillOutlineStoppage(ringOutline(), func(p geometry.IP) bool { return p == target })
		assert.True(t, hit)
	})

	t.Run("No hit visits every covered pixel", func(t *testing.T) {
		visited := PixelSet{}
		hit := fillOutlineStoppage(ringOutline(), func(p geometry.IP) bool {
			visited.add(p)
			return false
		})
		assert.False(t, hit)
		assert.Len(t, visited, 9)
	})

	t.Run("Hit stops the scan", func(t *testing.T) {
		tested := 0
		hit := fillOutlineStoppage(ringOutline(), func(geometry.IP) bool {
			tested++
			return true
		})
		assert.True(t, hit)
		assert.Equal(t, 1, tested)
	})
}
