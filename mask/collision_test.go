package mask

import (
	"math"
	"testing"

	"github.com/osuushi/pixelcoll/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placed(m *Mask, x, y, angle float64, id int) *CollisionInfo {
	return &CollisionInfo{
		Mask:     m,
		Position: geometry.P{X: x, Y: y},
		Angle:    angle,
		ScaleX:   1,
		ScaleY:   1,
		ID:       id,
	}
}

func TestNewCollisionPair(t *testing.T) {
	t.Run("Ordered ids pass through", func(t *testing.T) {
		pair, err := NewCollisionPair(1, 2)
		require.NoError(t, err)
		assert.Equal(t, CollisionPair{ID1: 1, ID2: 2}, pair)
	})

	t.Run("Reversed ids are normalized", func(t *testing.T) {
		pair, err := NewCollisionPair(7, 3)
		require.NoError(t, err)
		assert.Equal(t, CollisionPair{ID1: 3, ID2: 7}, pair)
	})

	t.Run("Equal ids are rejected", func(t *testing.T) {
		_, err := NewCollisionPair(4, 4)
		assert.Error(t, err)
	})
}

func TestCollisionInfoTransformMatrix(t *testing.T) {
	m := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4},
	}), geometry.P{X: 2, Y: 2})

	info := placed(m, 10, 20, 0, 1)
	transform := info.TransformMatrix()

	// The origin point of the mask must land on the position.
	moved := transform.TransformPoints([]geometry.P{{X: 2, Y: 2}})
	assert.Equal(t, geometry.P{X: 10, Y: 20}, moved[0])
}

func TestForCollisionFullMasks(t *testing.T) {
	t.Run("Overlapping triangles", func(t *testing.T) {
		a := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10},
		}), geometry.P{})
		b := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 2, Y: 8},
		}), geometry.P{})
		assert.True(t, TestForCollision(placed(a, 0, 0, 0, 1), placed(b, 0, 0, 0, 2)))
	})

	t.Run("Disjoint squares", func(t *testing.T) {
		a := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		}), geometry.P{})
		b := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1},
		}), geometry.P{})
		assert.False(t, TestForCollision(placed(a, 0, 0, 0, 1), placed(b, 0, 0, 0, 2)))
	})

	t.Run("Shared vertex counts", func(t *testing.T) {
		a := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		}), geometry.P{})
		b := FromPolygon(geometry.NewPolygonUnchecked([]geometry.P{
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		}), geometry.P{})
		assert.True(t, TestForCollision(placed(a, 0, 0, 0, 1), placed(b, 0, 0, 0, 2)))
	})

	t.Run("Mirrored mask still collides", func(t *testing.T) {
		// A negative scale flips the hull winding; the flipped hull must be
		// reoriented, not rejected.
		a := NewPentagon()
		mirrored := placed(NewPentagon(), 0, 0, 0, 2)
		mirrored.ScaleX = -1
		assert.True(t, TestForCollision(placed(a, 0, 0, 0, 1), mirrored))
	})
}

func TestForCollisionPixelPerfect(t *testing.T) {
	l1 := placed(NewL(), 0, 0, 0, 1)

	t.Run("Rotated L grazing the notch", func(t *testing.T) {
		// The quarter-turned L pokes into the first L's concave notch. The
		// hulls overlap, but the nearest on pixels stay a column apart.
		l2 := placed(NewL(), 11, 40, math.Pi/2, 2)
		assert.False(t, TestForCollision(l1, l2))

		t.Run("One pixel closer touches", func(t *testing.T) {
			l2 := placed(NewL(), 10, 40, math.Pi/2, 2)
			assert.True(t, TestForCollision(l1, l2))
		})
	})

	t.Run("Pentagon over the L", func(t *testing.T) {
		pentagon := placed(NewPentagon(), 0, 0, 0, 2)
		assert.True(t, TestForCollision(pentagon, l1))

		t.Run("Far away pentagon misses", func(t *testing.T) {
			far := placed(NewPentagon(), -100, 0, 0, 2)
			assert.False(t, TestForCollision(far, l1))
		})
	})

	t.Run("Singular scale never collides", func(t *testing.T) {
		flat := placed(NewL(), 0, 0, 0, 2)
		flat.ScaleX = 0
		assert.False(t, TestForCollision(l1, flat))
		assert.False(t, TestForCollision(flat, l1))
	})

	t.Run("Symmetry", func(t *testing.T) {
		l2 := placed(NewL(), 11, 40, math.Pi/2, 2)
		l3 := placed(NewL(), 10, 40, math.Pi/2, 3)
		assert.Equal(t, TestForCollision(l1, l2), TestForCollision(l2, l1))
		assert.Equal(t, TestForCollision(l1, l3), TestForCollision(l3, l1))
	})
}

func TestCheckImage(t *testing.T) {
	t.Run("Full mask is on everywhere", func(t *testing.T) {
		m := NewPentagon()
		assert.True(t, checkImage(m, geometry.P3{X: 1000, Y: -1000, Z: 1}))
	})

	t.Run("Image mask rounds and bounds-checks", func(t *testing.T) {
		m := NewL()
		assert.True(t, checkImage(m, geometry.P3{X: 5.2, Y: 0.4, Z: 1}))
		assert.False(t, checkImage(m, geometry.P3{X: 4.2, Y: 0.4, Z: 1}))
		assert.False(t, checkImage(m, geometry.P3{X: -1, Y: 0, Z: 1}), "out of bounds")
		assert.False(t, checkImage(m, geometry.P3{X: 5, Y: 30.4, Z: 1}), "past the last row")
	})
}

func TestReorientCCW(t *testing.T) {
	t.Run("Degenerate sizes", func(t *testing.T) {
		assert.Equal(t, geometry.TheEmpty, reorientCCW(nil))
		assert.Equal(t, geometry.NewPoint(geometry.P{X: 1, Y: 2}), reorientCCW([]geometry.P{{X: 1, Y: 2}}))
		line, ok := reorientCCW([]geometry.P{{X: 0, Y: 0}, {X: 1, Y: 1}}).(geometry.Line)
		require.True(t, ok)
		assert.ElementsMatch(t, []geometry.P{{X: 0, Y: 0}, {X: 1, Y: 1}}, line.Points())
	})

	t.Run("Counterclockwise input is kept", func(t *testing.T) {
		points := []geometry.P{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
		poly, ok := reorientCCW(points).(geometry.Polygon)
		require.True(t, ok)
		assert.Equal(t, points, poly.Points())
	})

	t.Run("Clockwise input is reversed", func(t *testing.T) {
		poly, ok := reorientCCW([]geometry.P{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}).(geometry.Polygon)
		require.True(t, ok)
		assert.Equal(t, []geometry.P{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}, poly.Points())
	})
}
