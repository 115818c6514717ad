package bling

import (
	"image"
	"image/color"
	"time"

	"github.com/esimov/bling/output"
	"github.com/pkg/errors"
)

var (
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	marker = color.NRGBA{R: 255, A: 255}
)

type damageRecorder struct {
	boxes []image.Rectangle
}

func (r *damageRecorder) DamageBox(box image.Rectangle) {
	r.boxes = append(r.boxes, box)
}

func (r *damageRecorder) reset() {
	r.boxes = nil
}

// solidSprite returns a source of w x h opaque white pixels.
func solidSprite(w, h int) func() (*image.NRGBA, error) {
	return func() (*image.NRGBA, error) {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		return img, nil
	}
}

// markerSprite returns a transparent 8 x 8 sprite with one opaque pixel at
// the top center.
func markerSprite() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(4, 0, marker)
	return img, nil
}

func failingSprite() (*image.NRGBA, error) {
	return nil, errors.New("no sprite")
}

func emptySprite() (*image.NRGBA, error) {
	return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
}

// frameClock is a stand alone output used as frame source.
func frameClock() *output.Output {
	return output.New("clock", 0, 0, 1, 1, 1)
}

func runFrame(o *output.Output, now time.Time) {
	o.Frame(now, 1, nil)
}

// isTransparent reports whether every pixel of img has zero alpha.
func isTransparent(img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				return false
			}
		}
	}
	return true
}
