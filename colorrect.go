package bling

import (
	"image"
	"image/color"

	"github.com/esimov/bling/render"
	"github.com/esimov/bling/utils"
)

// ColorRect is a Bling filling its box with a solid, possibly translucent,
// color.
type ColorRect struct {
	damager Damager
	box     image.Rectangle
	color   color.NRGBA
	mapped  bool
}

// NewColorRect creates an unmapped rectangle.
func NewColorRect(d Damager, box image.Rectangle, c color.NRGBA) *ColorRect {
	return &ColorRect{
		damager: d,
		box:     box.Canon(),
		color:   c,
	}
}

func (r *ColorRect) Box() image.Rectangle {
	return r.box
}

func (r *ColorRect) Render(ctx *render.Context) {
	if !r.mapped || ctx == nil {
		return
	}
	ctx.AddRect(render.RectOptions{
		Box:   ctx.ToBuffer(r.box),
		Color: r.color,
	})
}

func (r *ColorRect) Map() {
	if r.mapped {
		return
	}
	r.mapped = true
	DamageBling(r.damager, r)
}

func (r *ColorRect) Unmap() {
	if !r.mapped {
		return
	}
	DamageBling(r.damager, r)
	r.mapped = false
}

func (r *ColorRect) IsMapped() bool {
	return r.mapped
}

// SetBox moves or resizes the rectangle.
func (r *ColorRect) SetBox(box image.Rectangle) {
	box = box.Canon()
	if box == r.box {
		return
	}
	DamageBling(r.damager, r)
	r.box = box
	DamageBling(r.damager, r)
}

// Color returns the fill color.
func (r *ColorRect) Color() color.NRGBA {
	return r.color
}

// SetColor changes the fill color.
func (r *ColorRect) SetColor(c color.NRGBA) {
	if c == r.color {
		return
	}
	r.color = c
	DamageBling(r.damager, r)
}

// SetAlpha changes the opacity of the fill color, alpha is within [0, 1].
func (r *ColorRect) SetAlpha(alpha float64) {
	c := r.color
	c.A = uint8(utils.Clamp(alpha, 0, 1)*255 + 0.5)
	r.SetColor(c)
}
