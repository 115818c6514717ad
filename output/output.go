// Package output models the physical displays of the desktop: their place
// in the layout, their damage and the frame clock animations run on.
package output

import (
	"image"
	"time"

	"github.com/esimov/bling/anim"
	"github.com/esimov/bling/damage"
)

// Output is a display placed in the layout. Width and height are in buffer
// pixels, the layout extent is the buffer size divided by the scale.
type Output struct {
	name          string
	pos           image.Point
	width, height int
	scale         float64

	ring *damage.Ring

	callbacks []frameCallback
	nextID    uint

	pending    bool
	onSchedule func(*Output)

	debugTracking bool
	debugDamage   []*debugRegion
}

type frameCallback struct {
	id uint
	fn anim.FrameCallback
}

// FrameInfo describes a frame being drawn.
type FrameInfo struct {
	Time time.Time
	// Damage is the part of the buffer to repaint, in buffer coordinates.
	Damage damage.Region
	// Highlights lists recently damaged regions when debug damage
	// tracking is enabled, newest first.
	Highlights []Highlight
}

// New creates an output at (x, y) in the layout. A non positive scale is
// treated as 1.
func New(name string, x, y, width, height int, scale float64) *Output {
	if scale <= 0 {
		scale = 1
	}
	return &Output{
		name:   name,
		pos:    image.Pt(x, y),
		width:  width,
		height: height,
		scale:  scale,
		ring:   damage.NewRing(width, height),
	}
}

// Name returns the output name.
func (o *Output) Name() string { return o.name }

// Position returns the top left corner in layout coordinates.
func (o *Output) Position() image.Point { return o.pos }

// Size returns the buffer size in pixels.
func (o *Output) Size() (int, int) { return o.width, o.height }

// Scale returns the output scale factor.
func (o *Output) Scale() float64 { return o.scale }

// Damage returns the damage ring of the output.
func (o *Output) Damage() *damage.Ring { return o.ring }

// Viewport returns the area covered by the output in layout coordinates.
func (o *Output) Viewport() image.Rectangle {
	w := int(float64(o.width) / o.scale)
	h := int(float64(o.height) / o.scale)
	return image.Rectangle{Min: o.pos, Max: o.pos.Add(image.Pt(w, h))}
}

// SetPosition moves the output in the layout and damages all of it.
func (o *Output) SetPosition(x, y int) {
	o.pos = image.Pt(x, y)
	o.ring.AddWhole()
	o.ScheduleFrame()
}

// SetMode changes the buffer size and the scale.
func (o *Output) SetMode(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	o.width, o.height, o.scale = width, height, scale
	o.ring.SetBounds(width, height)
	o.ring.AddWhole()
	o.ScheduleFrame()
}

// OnSchedule sets a function called whenever a frame gets requested.
func (o *Output) OnSchedule(fn func(*Output)) {
	o.onSchedule = fn
}

// ScheduleFrame requests a frame. Requests made while one is pending are
// merged.
func (o *Output) ScheduleFrame() {
	if o.pending {
		return
	}
	o.pending = true
	if o.onSchedule != nil {
		o.onSchedule(o)
	}
}

// FramePending reports whether a frame was requested and not yet drawn.
func (o *Output) FramePending() bool { return o.pending }

// AddFrameCallback registers fn to run at the start of every frame and
// makes sure the frame clock ticks.
func (o *Output) AddFrameCallback(fn anim.FrameCallback) uint {
	o.nextID++
	o.callbacks = append(o.callbacks, frameCallback{id: o.nextID, fn: fn})
	o.ScheduleFrame()
	return o.nextID
}

// RemoveFrameCallback unregisters a frame callback. Unknown ids are ignored.
func (o *Output) RemoveFrameCallback(id uint) {
	for i, cb := range o.callbacks {
		if cb.id == id {
			o.callbacks = append(o.callbacks[:i:i], o.callbacks[i+1:]...)
			return
		}
	}
}

// HasFrameCallbacks reports whether any frame callback is registered.
func (o *Output) HasFrameCallbacks() bool { return len(o.callbacks) > 0 }

// Frame runs one frame: the frame callbacks first, then draw when there is
// something to repaint. age is the age of the buffer drawn into, 0 when
// unknown. It reports whether draw was called.
func (o *Output) Frame(now time.Time, age int, draw func(FrameInfo) error) bool {
	o.pending = false
	o.runCallbacks(now)

	highlights := o.buildDebugDamage(now)

	drawn := false
	if !o.ring.Current().Empty() || len(o.debugDamage) > 0 {
		info := FrameInfo{
			Time:       now,
			Damage:     o.ring.BufferDamage(age),
			Highlights: highlights,
		}
		var err error
		if draw != nil {
			err = draw(info)
			drawn = true
		}
		if err != nil {
			// Repaint everything on the next frame.
			o.ring.AddWhole()
		} else {
			o.ring.Rotate()
		}
	}

	// Keep the frame clock ticking while animations run or debug damage
	// fades out.
	if len(o.callbacks) > 0 || len(o.debugDamage) > 0 {
		o.ScheduleFrame()
	}
	return drawn
}

func (o *Output) runCallbacks(now time.Time) {
	if len(o.callbacks) == 0 {
		return
	}
	snapshot := make([]frameCallback, len(o.callbacks))
	copy(snapshot, o.callbacks)

	for _, cb := range snapshot {
		if !o.registered(cb.id) {
			continue
		}
		if !cb.fn(now) {
			o.RemoveFrameCallback(cb.id)
		}
	}
}

func (o *Output) registered(id uint) bool {
	for _, cb := range o.callbacks {
		if cb.id == id {
			return true
		}
	}
	return false
}
