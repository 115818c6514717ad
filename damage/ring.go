package damage

import "image"

// PreviousLen is the number of past frames whose damage is remembered.
const PreviousLen = 3

// Ring accumulates the damage of an output. The current region collects
// damage for the next frame; once a frame is submitted it is rotated into a
// bounded history, so that a buffer of age n can be repaired with the union
// of the last n frames.
type Ring struct {
	width, height int
	current       Region
	previous      [PreviousLen]Region
	index         int
}

// NewRing creates a damage ring for a buffer of the given size. The whole
// buffer starts out damaged.
func NewRing(width, height int) *Ring {
	r := &Ring{}
	r.SetBounds(width, height)
	return r
}

// Bounds returns the buffer rectangle damage is clipped against.
func (r *Ring) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// SetBounds changes the buffer size. A size change damages the whole buffer.
func (r *Ring) SetBounds(width, height int) {
	if r.width == width && r.height == height {
		return
	}
	r.width, r.height = width, height
	r.AddWhole()
}

// AddBox adds a box to the current damage and reports whether the
// accumulated damage changed.
func (r *Ring) AddBox(box image.Rectangle) bool {
	return r.current.Add(box.Intersect(r.Bounds()))
}

// Add merges a region into the current damage and reports whether the
// accumulated damage changed.
func (r *Ring) Add(reg Region) bool {
	return r.current.Union(reg.Intersect(r.Bounds()))
}

// AddWhole damages the full buffer.
func (r *Ring) AddWhole() {
	r.current.Clear()
	r.current.Add(r.Bounds())
}

// Current returns the damage accumulated since the last rotation.
func (r *Ring) Current() Region {
	return r.current.Clone()
}

// Rotate moves the current damage into the history. It is called once the
// frame containing it has been submitted.
func (r *Ring) Rotate() {
	r.index = (r.index + PreviousLen - 1) % PreviousLen
	r.previous[r.index] = r.current
	r.current = Region{}
}

// BufferDamage returns the damage needed to bring a buffer of the given age
// up to date. Unknown (zero) or too old buffers are fully damaged.
func (r *Ring) BufferDamage(age int) Region {
	if age <= 0 || age > PreviousLen+1 {
		return NewRegion(r.Bounds())
	}

	out := r.current.Clone()
	for i := 0; i < age-1; i++ {
		out.Union(r.previous[(r.index+i)%PreviousLen])
	}
	return out
}
