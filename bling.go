package bling

import (
	"image"

	"github.com/esimov/bling/render"
)

// Bling is a self contained overlay drawn on top of the desktop scene.
//
// Box is valid in both states. Render does nothing while unmapped and Unmap
// may be called any number of times.
type Bling interface {
	// Box returns the bounding box in layout coordinates.
	Box() image.Rectangle
	// Render draws the overlay into the render pass of an output.
	Render(ctx *render.Context)
	// Map acquires the resources needed for drawing and shows the overlay.
	Map()
	// Unmap hides the overlay and releases its resources.
	Unmap()
	IsMapped() bool
}

// Damager invalidates areas of the layout. *output.Layout implements it.
type Damager interface {
	DamageBox(box image.Rectangle)
}

// DamageBling damages the area covered by b, if it is mapped.
func DamageBling(d Damager, b Bling) {
	if d == nil || b == nil || !b.IsMapped() {
		return
	}
	d.DamageBox(b.Box())
}
