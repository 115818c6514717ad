package bling

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/esimov/bling/output"
	"github.com/esimov/bling/render"
)

// DefaultDamageColor tints highlighted damage when debug damage tracking is on.
var DefaultDamageColor = color.NRGBA{R: 255, A: 128}

// Desktop composes the blings of a layout into one CPU buffer per output.
// It runs on a single goroutine: every method, including the ones called
// from frame callbacks, must be invoked from the goroutine driving Tick.
type Desktop struct {
	layout   *output.Layout
	renderer render.Renderer
	blings   []Bling
	buffers  map[string]*image.NRGBA

	// Background is painted below the blings.
	Background color.NRGBA
	// DamageColor is used for debug damage highlights. Its alpha fades out
	// with the highlight.
	DamageColor color.NRGBA
}

// NewDesktop creates a desktop drawing the outputs of layout.
func NewDesktop(layout *output.Layout, r render.Renderer) *Desktop {
	return &Desktop{
		layout:      layout,
		renderer:    r,
		buffers:     make(map[string]*image.NRGBA),
		DamageColor: DefaultDamageColor,
	}
}

// Layout returns the output layout, which is also the desktop's Damager.
func (d *Desktop) Layout() *output.Layout { return d.layout }

// Renderer returns the renderer textures get uploaded with.
func (d *Desktop) Renderer() render.Renderer { return d.renderer }

// AddBling stacks b on top of the blings added before.
func (d *Desktop) AddBling(b Bling) {
	for _, own := range d.blings {
		if own == b {
			return
		}
	}
	d.blings = append(d.blings, b)
	DamageBling(d.layout, b)
}

// RemoveBling takes b off the desktop without unmapping it.
func (d *Desktop) RemoveBling(b Bling) {
	for i, own := range d.blings {
		if own == b {
			DamageBling(d.layout, b)
			d.blings = append(d.blings[:i:i], d.blings[i+1:]...)
			return
		}
	}
}

// Blings returns the blings from bottom to top.
func (d *Desktop) Blings() []Bling {
	out := make([]Bling, len(d.blings))
	copy(out, d.blings)
	return out
}

// Buffer returns the last frame drawn for the named output.
func (d *Desktop) Buffer(name string) *image.NRGBA {
	return d.buffers[name]
}

// Tick runs a frame on every output with a pending frame and returns the
// outputs that got repainted.
func (d *Desktop) Tick(now time.Time) []*output.Output {
	var drawn []*output.Output
	for _, o := range d.layout.Outputs() {
		if !o.FramePending() {
			continue
		}
		buf, age := d.acquire(o)
		if o.Frame(now, age, func(info output.FrameInfo) error {
			d.draw(o, buf, info)
			return nil
		}) {
			drawn = append(drawn, o)
		}
	}
	return drawn
}

// Pending reports whether any output waits for a frame.
func (d *Desktop) Pending() bool {
	for _, o := range d.layout.Outputs() {
		if o.FramePending() {
			return true
		}
	}
	return false
}

// Run ticks the desktop every interval until ctx is done. onFrame, if set,
// is called with the outputs repainted by each tick.
func (d *Desktop) Run(ctx context.Context, interval time.Duration, onFrame func([]*output.Output)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			drawn := d.Tick(now)
			if onFrame != nil && len(drawn) > 0 {
				onFrame(drawn)
			}
		}
	}
}

// acquire returns the buffer of o and its age: 1 when it holds the previous
// frame, 0 when it was just (re)allocated.
func (d *Desktop) acquire(o *output.Output) (*image.NRGBA, int) {
	w, h := o.Size()
	buf, ok := d.buffers[o.Name()]
	if ok && buf.Bounds().Dx() == w && buf.Bounds().Dy() == h {
		return buf, 1
	}
	buf = image.NewNRGBA(image.Rect(0, 0, w, h))
	d.buffers[o.Name()] = buf
	return buf, 0
}

func (d *Desktop) draw(o *output.Output, buf *image.NRGBA, info output.FrameInfo) {
	clip := info.Damage
	ctx := render.NewContext(buf, o.Position(), o.Scale(), &clip)

	ctx.AddRect(render.RectOptions{Box: buf.Bounds(), Color: d.Background, Op: render.Copy})

	viewport := o.Viewport()
	for _, b := range d.blings {
		if !b.IsMapped() || !b.Box().Overlaps(viewport) {
			continue
		}
		b.Render(ctx)
	}

	for _, hl := range info.Highlights {
		c := d.DamageColor
		c.A = uint8(float64(c.A)*hl.Alpha + 0.5)
		for _, r := range hl.Region.Rects() {
			ctx.AddRect(render.RectOptions{Box: r, Color: c})
		}
	}
}
