// Package mask holds the collision-object model: binary images, masks built
// from images or polygons, and the pairwise collision driver that combines
// hull intersection with pixel-perfect testing.
package mask

import "github.com/pkg/errors"

// BinaryImage answers whether a pixel is on. Coordinates are x right,
// y down the rows, with (0, 0) the first pixel of the first row.
type BinaryImage interface {
	Width() int
	Height() int
	HasPoint(x, y int) bool
}

// ImageFactory builds a binary image from a row-major grid. The grid must
// have at least one row and all rows the same length.
type ImageFactory func(rows [][]bool) (BinaryImage, error)

func checkRows(rows [][]bool) (width, height int, err error) {
	height = len(rows)
	if height < 1 {
		return 0, 0, errors.New("image must have at least one row")
	}
	width = len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return 0, 0, errors.Errorf("row %d has length %d, want %d", i, len(row), width)
		}
	}
	return width, height, nil
}

// SimpleBinaryImage keeps the source rows as-is.
type SimpleBinaryImage struct {
	rows          [][]bool
	width, height int
}

// NewSimpleBinaryImage copies the grid into a row-backed image.
func NewSimpleBinaryImage(rows [][]bool) (BinaryImage, error) {
	width, height, err := checkRows(rows)
	if err != nil {
		return nil, err
	}
	copied := make([][]bool, height)
	for i, row := range rows {
		copied[i] = append([]bool{}, row...)
	}
	return &SimpleBinaryImage{rows: copied, width: width, height: height}, nil
}

func (im *SimpleBinaryImage) Width() int  { return im.width }
func (im *SimpleBinaryImage) Height() int { return im.height }

func (im *SimpleBinaryImage) HasPoint(x, y int) bool {
	return im.rows[y][x]
}

// BitsetBinaryImage packs the grid into a bitset, one bit per pixel in
// row-major order. Same behavior as SimpleBinaryImage at an eighth of the
// memory.
type BitsetBinaryImage struct {
	bits          []uint64
	width, height int
}

// NewBitsetBinaryImage packs the grid into a bit-backed image.
func NewBitsetBinaryImage(rows [][]bool) (BinaryImage, error) {
	width, height, err := checkRows(rows)
	if err != nil {
		return nil, err
	}
	bits := make([]uint64, (width*height+63)/64)
	for y, row := range rows {
		for x, on := range row {
			if on {
				i := x + y*width
				bits[i/64] |= 1 << (i % 64)
			}
		}
	}
	return &BitsetBinaryImage{bits: bits, width: width, height: height}, nil
}

func (im *BitsetBinaryImage) Width() int  { return im.width }
func (im *BitsetBinaryImage) Height() int { return im.height }

func (im *BitsetBinaryImage) HasPoint(x, y int) bool {
	i := x + y*im.width
	return im.bits[i/64]&(1<<(i%64)) != 0
}
