// Package damage tracks the screen areas that changed since an output was
// last repainted. Regions are kept as sets of disjoint rectangles in
// output-local buffer coordinates.
package damage

import "image"

// maxRects bounds the fragmentation of a region. Once exceeded the region
// collapses into its bounding rectangle, trading a bigger repaint for
// cheaper bookkeeping.
const maxRects = 32

// Region is a set of disjoint rectangles. The zero value is an empty region.
type Region struct {
	rects []image.Rectangle
}

// NewRegion returns a region covering the given rectangles.
func NewRegion(rects ...image.Rectangle) Region {
	var r Region
	for _, rect := range rects {
		r.Add(rect)
	}
	return r
}

// Add merges rect into the region and reports whether the region grew.
func (r *Region) Add(rect image.Rectangle) bool {
	if rect.Empty() {
		return false
	}

	pieces := []image.Rectangle{rect.Canon()}
	for _, existing := range r.rects {
		var rest []image.Rectangle
		for _, p := range pieces {
			rest = append(rest, subtract(p, existing)...)
		}
		pieces = rest
		if len(pieces) == 0 {
			return false
		}
	}

	r.rects = append(r.rects, pieces...)
	if len(r.rects) > maxRects {
		r.rects = []image.Rectangle{r.Bounds()}
	}
	return true
}

// Union merges every rectangle of o into the region and reports whether the region grew.
func (r *Region) Union(o Region) bool {
	changed := false
	for _, rect := range o.rects {
		if r.Add(rect) {
			changed = true
		}
	}
	return changed
}

// Subtract removes the area covered by o from the region.
func (r *Region) Subtract(o Region) {
	for _, cut := range o.rects {
		var rest []image.Rectangle
		for _, rect := range r.rects {
			rest = append(rest, subtract(rect, cut)...)
		}
		r.rects = rest
	}
}

// Intersect returns the part of the region that lies inside clip.
func (r Region) Intersect(clip image.Rectangle) Region {
	var out Region
	for _, rect := range r.rects {
		if in := rect.Intersect(clip); !in.Empty() {
			out.rects = append(out.rects, in)
		}
	}
	return out
}

// Overlaps reports whether any part of the region lies inside rect.
func (r Region) Overlaps(rect image.Rectangle) bool {
	for _, own := range r.rects {
		if own.Overlaps(rect) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p image.Point) bool {
	for _, rect := range r.rects {
		if p.In(rect) {
			return true
		}
	}
	return false
}

// Bounds returns the smallest rectangle enclosing the region.
func (r Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, rect := range r.rects {
		b = b.Union(rect)
	}
	return b
}

// Area returns the number of pixels covered by the region.
func (r Region) Area() int {
	area := 0
	for _, rect := range r.rects {
		area += rect.Dx() * rect.Dy()
	}
	return area
}

// Rects returns a copy of the rectangles making up the region.
func (r Region) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(r.rects))
	copy(out, r.rects)
	return out
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return len(r.rects) == 0
}

// Clone returns an independent copy of the region.
func (r Region) Clone() Region {
	return Region{rects: r.Rects()}
}

// Clear empties the region.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
}

// subtract returns the parts of a not covered by b, as at most four disjoint rectangles.
func subtract(a, b image.Rectangle) []image.Rectangle {
	in := a.Intersect(b)
	if in.Empty() {
		return []image.Rectangle{a}
	}

	var out []image.Rectangle
	if a.Min.Y < in.Min.Y {
		out = append(out, image.Rect(a.Min.X, a.Min.Y, a.Max.X, in.Min.Y))
	}
	if in.Max.Y < a.Max.Y {
		out = append(out, image.Rect(a.Min.X, in.Max.Y, a.Max.X, a.Max.Y))
	}
	if a.Min.X < in.Min.X {
		out = append(out, image.Rect(a.Min.X, in.Min.Y, in.Min.X, in.Max.Y))
	}
	if in.Max.X < a.Max.X {
		out = append(out, image.Rect(in.Max.X, in.Min.Y, a.Max.X, in.Max.Y))
	}
	return out
}
