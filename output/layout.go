package output

import (
	"image"

	"github.com/esimov/bling/damage"
	"github.com/pkg/errors"
)

// Layout arranges outputs in a shared coordinate space.
type Layout struct {
	outputs []*Output
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// Add places an output in the layout. Names must be unique.
func (l *Layout) Add(o *Output) error {
	if o == nil {
		return errors.New("output: nil output")
	}
	if l.Output(o.Name()) != nil {
		return errors.Errorf("output: duplicate output %q", o.Name())
	}
	l.outputs = append(l.outputs, o)
	o.ring.AddWhole()
	o.ScheduleFrame()
	return nil
}

// Remove takes the named output out of the layout.
func (l *Layout) Remove(name string) {
	for i, o := range l.outputs {
		if o.Name() == name {
			l.outputs = append(l.outputs[:i:i], l.outputs[i+1:]...)
			return
		}
	}
}

// Outputs returns the outputs in the order they were added.
func (l *Layout) Outputs() []*Output {
	out := make([]*Output, len(l.outputs))
	copy(out, l.outputs)
	return out
}

// Output returns the output with the given name or nil.
func (l *Layout) Output(name string) *Output {
	for _, o := range l.outputs {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// OutputAt returns the first output containing the layout point p.
func (l *Layout) OutputAt(p image.Point) *Output {
	for _, o := range l.outputs {
		if p.In(o.Viewport()) {
			return o
		}
	}
	return nil
}

// Bounds returns the smallest rectangle covering every output.
func (l *Layout) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, o := range l.outputs {
		r = r.Union(o.Viewport())
	}
	return r
}

// DamageBox damages box, given in layout coordinates, on every output it
// intersects. Outputs whose damage grew get a frame scheduled.
func (l *Layout) DamageBox(box image.Rectangle) {
	if box.Empty() {
		return
	}
	for _, o := range l.outputs {
		if !box.Overlaps(o.Viewport()) {
			continue
		}
		local := damage.ScaleBox(box.Sub(o.Position()), o.Scale())
		if o.ring.AddBox(local) {
			o.ScheduleFrame()
		}
	}
}

// DamageWhole damages every output completely.
func (l *Layout) DamageWhole() {
	for _, o := range l.outputs {
		o.ring.AddWhole()
		o.ScheduleFrame()
	}
}

// SetDebugDamageTracking toggles damage highlighting on every output.
func (l *Layout) SetDebugDamageTracking(enable bool) {
	for _, o := range l.outputs {
		o.SetDebugDamageTracking(enable)
	}
}
