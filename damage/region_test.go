package damage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion_AddReportsGrowth(t *testing.T) {
	assert := assert.New(t)

	var r Region
	assert.True(r.Add(image.Rect(0, 0, 10, 10)))
	assert.False(r.Add(image.Rect(2, 2, 8, 8)), "contained box must not change the region")
	assert.False(r.Add(image.Rectangle{}), "empty box must not change the region")
	assert.True(r.Add(image.Rect(5, 5, 15, 15)))

	assert.Equal(100+100-25, r.Area())
	assert.Equal(image.Rect(0, 0, 15, 15), r.Bounds())
}

func TestRegion_RectsAreDisjoint(t *testing.T) {
	r := NewRegion(
		image.Rect(0, 0, 10, 10),
		image.Rect(5, 5, 15, 15),
		image.Rect(-5, 3, 20, 6),
	)

	rects := r.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rects[i].Overlaps(rects[j]), "%v overlaps %v", rects[i], rects[j])
		}
	}
	assert.True(t, r.Contains(image.Pt(-5, 3)))
	assert.True(t, r.Contains(image.Pt(14, 14)))
	assert.False(t, r.Contains(image.Pt(0, 14)))
}

func TestRegion_SubtractAndIntersect(t *testing.T) {
	assert := assert.New(t)

	r := NewRegion(image.Rect(0, 0, 10, 10))
	r.Subtract(NewRegion(image.Rect(0, 0, 10, 5)))
	assert.Equal(50, r.Area())
	assert.False(r.Overlaps(image.Rect(0, 0, 10, 5)))

	clipped := r.Intersect(image.Rect(0, 0, 5, 20))
	assert.Equal(25, clipped.Area())
	assert.Equal(50, r.Area(), "intersect must not modify the receiver")
}

func TestRegion_CollapsesWhenFragmented(t *testing.T) {
	var r Region
	for i := 0; i < maxRects+8; i++ {
		r.Add(image.Rect(i*4, 0, i*4+2, 2))
	}
	assert.LessOrEqual(t, len(r.Rects()), maxRects)
	assert.Equal(t, image.Rect(0, 0, (maxRects+7)*4+2, 2), r.Bounds())
}
