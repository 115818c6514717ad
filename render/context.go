package render

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/bling/damage"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Filter selects the sampling used when a texture is drawn at a different size.
type Filter int

const (
	// FilterAuto samples with nearest neighbor on integer output scales
	// and bilinear otherwise.
	FilterAuto Filter = iota
	FilterBilinear
	FilterNearest
)

// Context is the render pass of a single output frame.
type Context struct {
	// Target holds the output buffer; (0, 0) is the output's top left pixel.
	Target *image.NRGBA
	// Origin is the position of the output in layout coordinates.
	Origin image.Point
	// Scale is the output scale factor.
	Scale float64
	// Damage clips every operation, in buffer coordinates. A nil Damage
	// means the whole target is drawn.
	Damage *damage.Region
	Filter Filter
}

// TextureOptions describes a texture draw.
type TextureOptions struct {
	Texture Texture
	// Src is the sampled area of the texture. An empty Src samples all of it.
	Src image.Rectangle
	// Dst is the destination box in buffer coordinates.
	Dst image.Rectangle
}

// RectOptions describes a solid rectangle draw.
type RectOptions struct {
	// Box is the destination in buffer coordinates.
	Box   image.Rectangle
	Color color.NRGBA
	// Op defaults to SrcOver.
	Op Op
}

// NewContext creates a render pass drawing into target.
func NewContext(target *image.NRGBA, origin image.Point, scale float64, clip *damage.Region) *Context {
	if scale <= 0 {
		scale = 1
	}
	return &Context{
		Target: target,
		Origin: origin,
		Scale:  scale,
		Damage: clip,
	}
}

// ToBuffer maps a box in layout coordinates to buffer coordinates.
func (c *Context) ToBuffer(box image.Rectangle) image.Rectangle {
	return damage.ScaleBox(box.Sub(c.Origin), c.scale())
}

// AddTexture draws the Src area of a texture scaled into Dst.
func (c *Context) AddTexture(opts TextureOptions) error {
	tex, ok := opts.Texture.(*SoftwareTexture)
	if !ok || tex == nil {
		return errors.Errorf("render: unsupported texture %T", opts.Texture)
	}
	img := tex.Image()
	if img == nil {
		return errors.New("render: texture already destroyed")
	}

	src := opts.Src
	if src.Empty() {
		src = img.Bounds()
	}
	src = src.Intersect(img.Bounds())
	dst := opts.Dst
	if src.Empty() || dst.Empty() {
		return nil
	}
	clips := c.clip(dst)
	if len(clips) == 0 {
		return nil
	}

	var layer image.Image
	if src.Dx() == dst.Dx() && src.Dy() == dst.Dy() {
		layer = img.SubImage(src)
	} else {
		scaled := image.NewNRGBA(dst)
		c.interpolator().Scale(scaled, dst, img, src, draw.Src, nil)
		layer = scaled
	}

	for _, r := range clips {
		sp := r.Min
		if src.Dx() == dst.Dx() && src.Dy() == dst.Dy() {
			sp = r.Min.Sub(dst.Min).Add(src.Min)
		}
		Composite(c.Target, r, layer, sp, SrcOver)
	}
	return nil
}

// AddRect fills a rectangle with a solid color.
func (c *Context) AddRect(opts RectOptions) {
	op := opts.Op
	if op == "" {
		op = SrcOver
	}
	for _, r := range c.clip(opts.Box) {
		Fill(c.Target, r, opts.Color, op)
	}
}

// Clear makes the damaged part of the target fully transparent.
func (c *Context) Clear() {
	c.AddRect(RectOptions{Box: c.Target.Bounds(), Op: Clear})
}

func (c *Context) clip(box image.Rectangle) []image.Rectangle {
	if c.Target == nil {
		return nil
	}
	box = box.Intersect(c.Target.Bounds())
	if box.Empty() {
		return nil
	}
	if c.Damage == nil {
		return []image.Rectangle{box}
	}
	return c.Damage.Intersect(box).Rects()
}

func (c *Context) interpolator() draw.Interpolator {
	switch c.Filter {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterBilinear:
		return draw.BiLinear
	}
	if s := c.scale(); s == math.Trunc(s) {
		return draw.NearestNeighbor
	}
	return draw.BiLinear
}

func (c *Context) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
