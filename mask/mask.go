package mask

import (
	"github.com/pkg/errors"

	"github.com/osuushi/pixelcoll/geometry"
	"github.com/osuushi/pixelcoll/internal"
)

// Mask is a collision shape: either a binary image approximated by its
// convex hull and bounding box, or a bare convex hull standing for a
// completely filled shape. A mask is never empty; an empty mask could never
// collide with anything, so construction rejects it.
type Mask struct {
	origin      geometry.P
	boundingBox geometry.BoundingBox
	convexHull  geometry.Nonempty
	image       BinaryImage
}

// Origin is the mask's reference point. A mask pixel at (1, 2) with origin
// (5, 5) sits at effective position (-4, -3).
func (m *Mask) Origin() geometry.P { return m.origin }

// BoundingBox over-approximates both the image and the convex hull.
func (m *Mask) BoundingBox() geometry.BoundingBox { return m.boundingBox }

// ConvexHull over-approximates the image when one is present, and is the
// exact shape otherwise.
func (m *Mask) ConvexHull() geometry.Nonempty { return m.convexHull }

// BinaryImage gives the mask's image, or nil for a full mask.
func (m *Mask) BinaryImage() BinaryImage { return m.image }

// IsFull reports whether the mask stands for a completely filled shape.
func (m *Mask) IsFull() bool { return m.image == nil }

// FromImage builds a mask from a row-major pixel grid, backed by a
// SimpleBinaryImage.
func FromImage(rows [][]bool, origin geometry.P) (*Mask, error) {
	return FromImageWithFactory(rows, origin, NewSimpleBinaryImage)
}

// FromImageWithFactory builds a mask from a row-major pixel grid. Each on
// pixel contributes its four unit square corners to the hull, so the hull
// and bounding box cover pixel areas rather than pixel indices. The grid
// must be rectangular and contain at least one on pixel.
func FromImageWithFactory(rows [][]bool, origin geometry.P, factory ImageFactory) (*Mask, error) {
	image, err := factory(rows)
	if err != nil {
		return nil, err
	}

	var points []geometry.P
	for x := 0; x < image.Width(); x++ {
		for y := 0; y < image.Height(); y++ {
			if !image.HasPoint(x, y) {
				continue
			}
			fx, fy := float64(x), float64(y)
			points = append(points,
				geometry.P{X: fx, Y: fy},
				geometry.P{X: fx + 1, Y: fy},
				geometry.P{X: fx, Y: fy + 1},
				geometry.P{X: fx + 1, Y: fy + 1},
			)
		}
	}
	if len(points) == 0 {
		return nil, errors.New("image has no on pixels")
	}

	hull, ok := geometry.ConvexHull(points).(geometry.Nonempty)
	if !ok {
		internal.Fatalf("hull of %d points came back empty", len(points))
	}

	return &Mask{
		origin:      origin,
		boundingBox: geometry.BoundingBoxOf(points),
		convexHull:  hull,
		image:       image,
	}, nil
}

// FromPolygon builds a full mask from a convex hull variant.
func FromPolygon(hull geometry.Nonempty, origin geometry.P) *Mask {
	return &Mask{
		origin:      origin,
		boundingBox: geometry.BoundingBoxOf(hull.Points()),
		convexHull:  hull,
	}
}

// NewL builds the reference L mask: a 30 by 30 image with the left bar on
// columns 5..10 and the bottom bar on rows 0..5 out to the last column, 29.
func NewL() *Mask {
	const width, height = 30, 30

	rows := make([][]bool, height)
	for y := range rows {
		row := make([]bool, width)
		for x := range row {
			row[x] = (x >= 5 && x <= 10) || (x >= 5 && y <= 5)
		}
		rows[y] = row
	}

	m, err := FromImage(rows, geometry.P{})
	if err != nil {
		internal.Fatalf("reference L mask failed to build: %v", err)
	}
	return m
}

// NewPentagon builds the reference pentagon mask, a full five-vertex hull.
func NewPentagon() *Mask {
	pentagon := geometry.NewPolygonUnchecked([]geometry.P{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 15, Y: 10},
		{X: 5, Y: 15},
		{X: -5, Y: 10},
	})
	return FromPolygon(pentagon, geometry.P{})
}
