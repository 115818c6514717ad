package bling

import (
	"image"
	"log"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/bling/anim"
	"github.com/esimov/bling/ease"
	"github.com/esimov/bling/render"
	"github.com/esimov/bling/sprite"
	"github.com/esimov/bling/utils"
)

const (
	// SpinnerDuration is the time of one full turn.
	SpinnerDuration = 750 * time.Millisecond
	// SpinnerEasing is the curve a turn follows.
	SpinnerEasing = ease.EaseInOutBack
)

// Spinner is a Bling showing a rotating sprite to signal ongoing activity.
// The rotated frames are prerendered into an atlas texture when mapped.
type Spinner struct {
	damager    Damager
	renderer   render.Renderer
	animatable anim.Animatable
	source     sprite.Source

	cx, cy        int
	width, height int
	rotation      float32
	texture       render.Texture

	duration  time.Duration
	curve     ease.Curve
	easer     *anim.PropertyEaser
	animation *anim.TimedAnimation
	closed    bool
}

// SpinnerOption customizes a Spinner.
type SpinnerOption func(*Spinner)

// WithSprite replaces the built in sprite.
func WithSprite(src sprite.Source) SpinnerOption {
	return func(s *Spinner) {
		if src != nil {
			s.source = src
		}
	}
}

// WithDuration changes the length of one turn.
func WithDuration(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.duration = d
		}
	}
}

// WithEasing changes the curve of a turn.
func WithEasing(c ease.Curve) SpinnerOption {
	return func(s *Spinner) {
		s.curve = c
	}
}

// NewSpinner creates an unmapped spinner centered at (cx, cy) in layout
// coordinates. Damage is raised on d, textures are created with r and the
// animation runs on the frames of a.
func NewSpinner(d Damager, r render.Renderer, a anim.Animatable, cx, cy int, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		damager:    d,
		renderer:   r,
		animatable: a,
		source:     sprite.Default,
		cx:         utils.Max(cx, 0),
		cy:         utils.Max(cy, 0),
		duration:   SpinnerDuration,
		curve:      SpinnerEasing,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.probeSize()

	s.easer = anim.NewPropertyEaser(s.curve)
	s.easer.SetProps(anim.Prop{
		Name:  "rotation",
		Start: 0,
		End:   359,
		Set:   s.setRotation,
	})
	s.animation = anim.NewTimedAnimation(a, s.duration, s.easer)
	s.animation.OnDone(s.onAnimationDone)

	return s
}

// Box returns the area covered by one atlas cell around the center.
func (s *Spinner) Box() image.Rectangle {
	x := int(float64(s.cx) - float64(s.width)*0.5)
	y := int(float64(s.cy) - float64(s.height)*0.5)
	return image.Rect(x, y, x+s.width, y+s.height)
}

// Render draws the atlas cell of the current rotation.
func (s *Spinner) Render(ctx *render.Context) {
	if s.texture == nil || ctx == nil {
		return
	}

	err := ctx.AddTexture(render.TextureOptions{
		Texture: s.texture,
		Src:     AtlasCellRect(s.rotation, s.width, s.height),
		Dst:     ctx.ToBuffer(s.Box()),
	})
	if err != nil {
		log.Printf("bling: failed to render spinner: %v", err)
	}
}

// Map builds the atlas texture and starts spinning. Failures leave the
// spinner unmapped. Mapping a mapped spinner does nothing.
func (s *Spinner) Map() {
	if s.texture != nil {
		return
	}
	if s.closed {
		log.Printf("bling: cannot map a closed spinner")
		return
	}

	img, err := s.source()
	if err != nil {
		log.Printf("bling: failed to load spinner sprite: %v", err)
		return
	}
	if img == nil || img.Bounds().Empty() {
		log.Printf("bling: spinner sprite has no pixels")
		return
	}

	// The cell size is fixed by the first sprite.
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if s.width == 0 || s.height == 0 {
		s.width, s.height = w, h
	} else if w != s.width || h != s.height {
		img = imaging.Resize(img, s.width, s.height, imaging.Lanczos)
	}

	atlas, err := BuildAtlas(img)
	if err != nil {
		log.Printf("bling: %v", err)
		return
	}
	b := atlas.Bounds()
	tex, err := s.renderer.TextureFromPixels(atlas.Stride, b.Dx(), b.Dy(), atlas.Pix)
	if err != nil {
		log.Printf("bling: failed to upload spinner atlas: %v", err)
		return
	}

	s.texture = tex
	s.damageBox()
	s.animation.Play()
}

// Unmap releases the atlas texture and stops spinning.
func (s *Spinner) Unmap() {
	s.damageBox()
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.animation != nil {
		s.animation.Reset()
	}
}

// IsMapped reports whether the atlas texture exists.
func (s *Spinner) IsMapped() bool {
	return s.texture != nil
}

// Close unmaps the spinner and stops it for good.
func (s *Spinner) Close() {
	if s.closed {
		return
	}
	if s.IsMapped() {
		s.Unmap()
	}
	s.easer.Detach()
	s.closed = true
}

// Center returns the center in layout coordinates.
func (s *Spinner) Center() (int, int) { return s.cx, s.cy }

// SetCX moves the center horizontally.
func (s *Spinner) SetCX(cx int) { s.SetCenter(cx, s.cy) }

// SetCY moves the center vertically.
func (s *Spinner) SetCY(cy int) { s.SetCenter(s.cx, cy) }

// SetCenter moves the spinner. Negative coordinates are ignored.
func (s *Spinner) SetCenter(cx, cy int) {
	if cx < 0 || cy < 0 {
		log.Printf("bling: invalid spinner center %d,%d", cx, cy)
		return
	}
	if cx == s.cx && cy == s.cy {
		return
	}
	s.damageBox()
	s.cx, s.cy = cx, cy
	s.damageBox()
}

// Rotation returns the current rotation in degrees, within [0, 360).
func (s *Spinner) Rotation() float32 { return s.rotation }

// Size returns the cell size, zero while no sprite could be read.
func (s *Spinner) Size() (int, int) { return s.width, s.height }

// Animation returns the animation driving the rotation.
func (s *Spinner) Animation() *anim.TimedAnimation { return s.animation }

// SetSprite replaces the sprite source used by the next Map.
func (s *Spinner) SetSprite(src sprite.Source) {
	if src != nil {
		s.source = src
		s.probeSize()
	}
}

// probeSize fixes the cell size from the sprite, so the box is known before
// the first Map.
func (s *Spinner) probeSize() {
	if s.width != 0 && s.height != 0 {
		return
	}
	img, err := s.source()
	if err != nil || img == nil || img.Bounds().Empty() {
		return
	}
	s.width, s.height = img.Bounds().Dx(), img.Bounds().Dy()
}

func (s *Spinner) setRotation(v float64) {
	s.rotation = normalizeRotation(float32(v))
	s.damageBox()
}

func (s *Spinner) onAnimationDone() {
	s.animation.Play()
}

// damageBox damages the spinner area as long as there is something drawn.
func (s *Spinner) damageBox() {
	if s.texture == nil || s.damager == nil {
		return
	}
	s.damager.DamageBox(s.Box())
}

// maxRotation is the largest magnitude folded one step at a time. Larger
// values are first reduced modulo 359, where float32 steps are still exact.
const maxRotation = 1 << 20

// normalizeRotation brings v into [0, 360). Negative values become 360 - v,
// values of a full turn or more lose 359 degrees. NaN and infinities map to 0.
func normalizeRotation(v float32) float32 {
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if utils.Abs(v) > maxRotation {
		v = float32(math.Mod(float64(v), 359))
	}
	for v < 0 || v >= 360 {
		if v < 0 {
			v = 360 - v
		} else {
			v = v - 359
		}
	}
	return v
}
