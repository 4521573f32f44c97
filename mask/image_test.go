package mask

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFactoryValidation(t *testing.T) {
	factories := map[string]ImageFactory{
		"simple": NewSimpleBinaryImage,
		"bitset": NewBitsetBinaryImage,
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			t.Run("No rows", func(t *testing.T) {
				_, err := factory(nil)
				assert.Error(t, err)
			})

			t.Run("Ragged rows", func(t *testing.T) {
				_, err := factory([][]bool{
					{true, false},
					{true},
				})
				assert.Error(t, err)
			})

			t.Run("Single empty row is still an image", func(t *testing.T) {
				image, err := factory([][]bool{{false, false, false}})
				require.NoError(t, err)
				assert.Equal(t, 3, image.Width())
				assert.Equal(t, 1, image.Height())
				assert.False(t, image.HasPoint(1, 0))
			})
		})
	}
}

func TestSimpleBinaryImage(t *testing.T) {
	rows := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	image, err := NewSimpleBinaryImage(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, image.Width())
	assert.Equal(t, 2, image.Height())
	assert.True(t, image.HasPoint(0, 0))
	assert.False(t, image.HasPoint(1, 0))
	assert.True(t, image.HasPoint(1, 1))
	assert.False(t, image.HasPoint(2, 1))

	t.Run("Source rows are copied", func(t *testing.T) {
		rows[0][1] = true
		assert.False(t, image.HasPoint(1, 0))
	})
}

func TestBitsetBinaryImage(t *testing.T) {
	// 13 by 7 crosses a word boundary in the bitset.
	const width, height = 13, 7
	rows := make([][]bool, height)
	for y := range rows {
		row := make([]bool, width)
		for x := range row {
			row[x] = (x*7+y*3)%5 < 2
		}
		rows[y] = row
	}

	simple, err := NewSimpleBinaryImage(rows)
	require.NoError(t, err)
	bitset, err := NewBitsetBinaryImage(rows)
	require.NoError(t, err)

	assert.Equal(t, simple.Width(), bitset.Width())
	assert.Equal(t, simple.Height(), bitset.Height())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assert.Equal(t, simple.HasPoint(x, y), bitset.HasPoint(x, y),
				fmt.Sprintf("pixel (%d, %d)", x, y))
		}
	}
}
