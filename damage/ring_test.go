package damage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_StartsFullyDamaged(t *testing.T) {
	r := NewRing(100, 50)
	assert.Equal(t, 100*50, r.Current().Area())
}

func TestRing_AddBoxClipsToBounds(t *testing.T) {
	assert := assert.New(t)

	r := NewRing(100, 50)
	r.Rotate()

	assert.False(r.AddBox(image.Rect(200, 200, 210, 210)), "box outside the buffer")
	assert.True(r.AddBox(image.Rect(90, 40, 110, 60)))
	assert.Equal(image.Rect(90, 40, 100, 50), r.Current().Bounds())
	assert.False(r.AddBox(image.Rect(95, 45, 100, 50)), "already damaged")
}

func TestRing_BufferDamageUsesHistory(t *testing.T) {
	assert := assert.New(t)

	r := NewRing(100, 100)
	r.Rotate()

	r.AddBox(image.Rect(0, 0, 10, 10))
	r.Rotate()
	r.AddBox(image.Rect(20, 20, 30, 30))
	r.Rotate()
	r.AddBox(image.Rect(40, 40, 50, 50))

	assert.Equal(100, r.BufferDamage(1).Area())
	assert.Equal(200, r.BufferDamage(2).Area())
	assert.Equal(300, r.BufferDamage(3).Area())
	assert.Equal(100*100, r.BufferDamage(0).Area(), "unknown age")
	assert.Equal(100*100, r.BufferDamage(PreviousLen+2).Area(), "too old")
}

func TestRing_SetBoundsDamagesWhole(t *testing.T) {
	r := NewRing(10, 10)
	r.Rotate()
	r.SetBounds(10, 10)
	assert.True(t, r.Current().Empty())

	r.SetBounds(20, 10)
	assert.Equal(t, 200, r.Current().Area())
}
