// Package sprite loads the base image the spinner atlas is built from.
package sprite

import (
	"bytes"
	_ "embed"
	"image"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/bling/utils"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed data/spinner.png
var spinnerPNG []byte

// ErrEmptySprite is returned for images without pixels.
var ErrEmptySprite = errors.New("sprite: empty image")

// Source produces a sprite image. Every call returns a fresh image.
type Source func() (*image.NRGBA, error)

// Default decodes the built in spinner sprite.
func Default() (*image.NRGBA, error) {
	return Decode(bytes.NewReader(spinnerPNG))
}

// Embedded returns the raw PNG data of the built in sprite.
func Embedded() []byte {
	out := make([]byte, len(spinnerPNG))
	copy(out, spinnerPNG)
	return out
}

// Decode reads a raster image.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "sprite: could not decode image")
	}
	return check(ToNRGBA(img))
}

// Load decodes data as an SVG document or as a raster image depending on
// its content.
func Load(data []byte) (*image.NRGBA, error) {
	if utils.DetectContentType(data) == "image/svg+xml" {
		return FromSVG(bytes.NewReader(data), 0, 0)
	}
	return Decode(bytes.NewReader(data))
}

// Open loads a sprite from a local path or a http(s) url.
func Open(src string) (*image.NRGBA, error) {
	var (
		data []byte
		err  error
	)
	if utils.IsValidUrl(src) {
		data, _, err = utils.DownloadSprite(src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "sprite: could not read %s", src)
	}
	return Load(data)
}

// FromFile returns a Source reading src on every call.
func FromFile(src string) Source {
	return func() (*image.NRGBA, error) {
		return Open(src)
	}
}

// FromSVG rasterizes an SVG document at w x h pixels. A zero size uses the
// document's view box.
func FromSVG(r io.Reader, w, h int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "sprite: could not parse svg")
	}
	if w <= 0 || h <= 0 {
		w = int(math.Ceil(icon.ViewBox.W))
		h = int(math.Ceil(icon.ViewBox.H))
	}
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySprite
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return check(ToNRGBA(img))
}

// ToNRGBA converts any image into a non-premultiplied RGBA image with its
// origin at (0, 0). NRGBA images already at the origin are returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

func check(img *image.NRGBA) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptySprite
	}
	return img, nil
}
