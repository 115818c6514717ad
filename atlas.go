package bling

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/bling/sprite"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	// AtlasColumns is the number of cells per atlas row and column.
	AtlasColumns = 19
	// AtlasFrames is the number of used cells, one per degree.
	AtlasFrames = 360
)

// BuildAtlas renders the sprite rotated by every whole degree into a single
// AtlasColumns x AtlasColumns grid. Cell i lies at column i%AtlasColumns,
// row i/AtlasColumns and holds the sprite turned clockwise by i degrees
// about its center. The last cell stays transparent.
func BuildAtlas(img image.Image) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Wrap(sprite.ErrEmptySprite, "bling: cannot build atlas")
	}
	src := sprite.ToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	atlas := image.NewNRGBA(image.Rect(0, 0, AtlasColumns*w, AtlasColumns*h))
	for i := 0; i < AtlasFrames; i++ {
		// imaging rotates counter-clockwise and grows the canvas to fit
		// the rotated corners, so crop it back to the cell size.
		rotated := imaging.Rotate(src, -float64(i), color.Transparent)
		cell := imaging.CropCenter(rotated, w, h)

		x, y := (i%AtlasColumns)*w, (i/AtlasColumns)*h
		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), cell, image.Point{}, draw.Src)
	}
	return atlas, nil
}

// AtlasCell returns the grid position of the cell showing rotation.
func AtlasCell(rotation float32) (col, row int) {
	deg := int(math.Floor(float64(rotation)))
	col = deg % AtlasColumns
	row = int(math.Floor(float64(rotation) / AtlasColumns))
	return col, row
}

// AtlasCellRect returns the pixel area of the cell showing rotation in an
// atlas made of w x h cells.
func AtlasCellRect(rotation float32, w, h int) image.Rectangle {
	col, row := AtlasCell(rotation)
	return image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
}
