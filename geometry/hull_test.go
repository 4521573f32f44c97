package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	t.Run("No points", func(t *testing.T) {
		assert.Equal(t, TheEmpty, ConvexHull(nil))
	})

	t.Run("Single point", func(t *testing.T) {
		assert.Equal(t, Point{Point: P{1, 2}}, ConvexHull([]P{{1, 2}}))
	})

	t.Run("Repeated single point", func(t *testing.T) {
		assert.Equal(t, Point{Point: P{1, 2}}, ConvexHull([]P{{1, 2}, {1, 2}, {1, 2}}))
	})

	t.Run("Two points", func(t *testing.T) {
		hull := ConvexHull([]P{{3, 4}, {1, 2}})
		line, ok := hull.(Line)
		require.True(t, ok)
		assert.ElementsMatch(t, []P{{1, 2}, {3, 4}}, line.Points())
	})

	t.Run("Collinear points collapse to a line", func(t *testing.T) {
		hull := ConvexHull([]P{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
		line, ok := hull.(Line)
		require.True(t, ok)
		assert.ElementsMatch(t, []P{{0, 0}, {3, 3}}, line.Points())
	})

	t.Run("Square with interior and border points", func(t *testing.T) {
		hull := ConvexHull([]P{
			{0, 0}, {2, 0}, {2, 2}, {0, 2},
			{1, 1}, {1, 0}, {0, 1}, {2, 1},
		})
		assertSameShape(t, []P{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull)
		assertCCW(t, hull)
	})

	t.Run("Duplicated input points", func(t *testing.T) {
		hull := ConvexHull([]P{
			{0, 0}, {0, 0}, {2, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 2},
		})
		assertSameShape(t, []P{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull)
	})

	t.Run("Pixel corner cloud", func(t *testing.T) {
		// The four unit square corners of pixels (0,0) and (1,1), the way
		// mask construction feeds the hull.
		var points []P
		for _, corner := range []P{{0, 0}, {1, 1}} {
			points = append(points,
				corner,
				P{corner.X + 1, corner.Y},
				P{corner.X, corner.Y + 1},
				P{corner.X + 1, corner.Y + 1},
			)
		}
		hull := ConvexHull(points)
		assertSameShape(t, []P{{0, 0}, {1, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 1}}, hull)
		assertCCW(t, hull)
	})
}

func assertCCW(t *testing.T, hull ConvexCCWPolygon) {
	t.Helper()
	points := hull.Points()
	require.GreaterOrEqual(t, len(points), 3)
	for i, p := range points {
		q := points[(i+1)%len(points)]
		r := points[(i+2)%len(points)]
		cross := q.Minus(p).Cross(r.Minus(q))
		assert.Greater(t, cross, 0.0, "vertices %d..%d must turn left", i, i+2)
	}
}
