package damage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleBox(t *testing.T) {
	assert := assert.New(t)

	box := image.Rect(68, 68, 132, 132)
	assert.Equal(box, ScaleBox(box, 1))
	assert.Equal(image.Rect(136, 136, 264, 264), ScaleBox(box, 2))

	// Fractional scales round every edge, the width follows from the rounded edges.
	got := ScaleBox(image.Rect(1, 1, 4, 4), 1.5)
	assert.Equal(image.Rect(2, 2, 6, 6), got)
}

func TestScaleBox_AdjacentBoxesStayAdjacent(t *testing.T) {
	left := ScaleBox(image.Rect(0, 0, 3, 3), 1.25)
	right := ScaleBox(image.Rect(3, 0, 7, 3), 1.25)
	assert.Equal(t, left.Max.X, right.Min.X)
}
