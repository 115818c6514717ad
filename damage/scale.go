package damage

import (
	"image"
	"math"
)

// ScaleBox scales a box by the given factor. Edges are rounded
// individually, so adjacent boxes stay adjacent after scaling.
func ScaleBox(box image.Rectangle, scale float64) image.Rectangle {
	if scale == 1 {
		return box
	}
	return image.Rectangle{
		Min: image.Pt(scaleCoord(box.Min.X, scale), scaleCoord(box.Min.Y, scale)),
		Max: image.Pt(scaleCoord(box.Max.X, scale), scaleCoord(box.Max.Y, scale)),
	}
}

func scaleCoord(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}
