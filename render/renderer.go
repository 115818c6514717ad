// Package render implements the draw side of the compositor: texture upload
// and a per-output render pass that paints textures and rectangles into a
// CPU target clipped to the output damage.
package render

import (
	"image"

	"github.com/pkg/errors"
)

// MaxTextureSize is the largest texture edge the software renderer accepts.
const MaxTextureSize = 16384

// ErrInvalidSize is returned when uploading pixel data with a bad geometry.
var ErrInvalidSize = errors.New("render: invalid texture size")

// Texture is an uploaded, immutable pixel buffer owned by its creator.
type Texture interface {
	Width() int
	Height() int
	Destroy()
}

// Renderer uploads pixel data into textures.
// The pixel layout is 8 bit non-premultiplied RGBA, row stride in bytes.
type Renderer interface {
	TextureFromPixels(stride, width, height int, pix []byte) (Texture, error)
}

// Software is a Renderer keeping textures in main memory.
type Software struct {
	// MaxSize overrides MaxTextureSize when positive.
	MaxSize int

	live int
}

// NewSoftware creates a software renderer.
func NewSoftware() *Software {
	return &Software{}
}

// TextureFromPixels copies pix into a new texture.
func (s *Software) TextureFromPixels(stride, width, height int, pix []byte) (Texture, error) {
	max := MaxTextureSize
	if s.MaxSize > 0 {
		max = s.MaxSize
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	if width > max || height > max {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d exceeds the %d pixel limit", width, height, max)
	}
	if stride < width*4 || len(pix) < stride*(height-1)+width*4 {
		return nil, errors.Wrapf(ErrInvalidSize, "stride %d with %d bytes for %dx%d", stride, len(pix), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], pix[y*stride:y*stride+width*4])
	}
	s.live++

	return &SoftwareTexture{img: img, owner: s}, nil
}

// Live returns the number of textures created and not yet destroyed.
func (s *Software) Live() int {
	return s.live
}

// SoftwareTexture is the texture type produced by Software.
type SoftwareTexture struct {
	img   *image.NRGBA
	owner *Software
}

// Width returns the texture width in pixels.
func (t *SoftwareTexture) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *SoftwareTexture) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dy()
}

// Image exposes the texture pixels. It returns nil once destroyed.
func (t *SoftwareTexture) Image() *image.NRGBA {
	return t.img
}

// Destroy releases the pixels. Calling it more than once is harmless.
func (t *SoftwareTexture) Destroy() {
	if t.img == nil {
		return
	}
	t.img = nil
	if t.owner != nil {
		t.owner.live--
	}
}
