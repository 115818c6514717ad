package render

import (
	"image"
	"image/color"
)

// Op is a Porter-Duff composition operation used for mixing a source
// graphic element with its backdrop. The image/draw core package only
// implements source-over and source, the remaining operators are needed
// for clearing damaged areas and for the debug damage overlay.
type Op string

// Supported composition operations.
const (
	Clear   Op = "clear"
	Copy    Op = "copy"
	SrcOver Op = "src_over"
	DstOver Op = "dst_over"
	SrcIn   Op = "src_in"
	DstIn   Op = "dst_in"
	SrcOut  Op = "src_out"
	DstOut  Op = "dst_out"
	SrcAtop Op = "src_atop"
	DstAtop Op = "dst_atop"
	Xor     Op = "xor"
)

// Composite mixes src into dst over the rectangle r using the operation op.
// sp is the point in src aligned with r.Min. Pixels are non-premultiplied.
// The rectangle is clipped to the bounds of both images.
func Composite(dst *image.NRGBA, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	// Source pixels are found at dst + delta.
	delta := sp.Sub(r.Min)
	r = r.Intersect(dst.Bounds())
	r = r.Add(delta).Intersect(src.Bounds()).Sub(delta)
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sc := color.NRGBAModel.Convert(src.At(x+delta.X, y+delta.Y)).(color.NRGBA)
			i := dst.PixOffset(x, y)
			dc := color.NRGBA{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2], A: dst.Pix[i+3]}

			out := blend(sc, dc, op)
			dst.Pix[i+0] = out.R
			dst.Pix[i+1] = out.G
			dst.Pix[i+2] = out.B
			dst.Pix[i+3] = out.A
		}
	}
}

// Fill mixes a uniform color into dst over the rectangle r.
func Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, op Op) {
	Composite(dst, r, &image.Uniform{C: c}, r.Min, op)
}

// blend applies the alpha composition formula of op to a single pixel.
func blend(s, d color.NRGBA, op Op) color.NRGBA {
	rs, gs, bs, as := float64(s.R)/255, float64(s.G)/255, float64(s.B)/255, float64(s.A)/255
	rb, gb, bb, ab := float64(d.R)/255, float64(d.G)/255, float64(d.B)/255, float64(d.A)/255

	// Fs and Fd are the fractions of source and backdrop kept by the operator.
	var fs, fd float64
	switch op {
	case Clear:
		fs, fd = 0, 0
	case Copy:
		fs, fd = 1, 0
	case SrcOver:
		fs, fd = 1, 1-as
	case DstOver:
		fs, fd = 1-ab, 1
	case SrcIn:
		fs, fd = ab, 0
	case DstIn:
		fs, fd = 0, as
	case SrcOut:
		fs, fd = 1-ab, 0
	case DstOut:
		fs, fd = 0, 1-as
	case SrcAtop:
		fs, fd = ab, 1-as
	case DstAtop:
		fs, fd = 1-ab, as
	case Xor:
		fs, fd = 1-ab, 1-as
	default:
		return d
	}

	an := as*fs + ab*fd
	if an <= 0 {
		return color.NRGBA{}
	}
	rn := (as*fs*rs + ab*fd*rb) / an
	gn := (as*fs*gs + ab*fd*gb) / an
	bn := (as*fs*bs + ab*fd*bb) / an

	return color.NRGBA{
		R: toByte(rn),
		G: toByte(gn),
		B: toByte(bn),
		A: toByte(an),
	}
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
