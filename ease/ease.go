// Package ease maps linear animation progress onto named easing curves.
// The curves are evaluated through the Robert Penner equations provided by
// github.com/tanema/gween/ease, normalized to the unit interval.
package ease

import (
	"fmt"

	tween "github.com/tanema/gween/ease"
)

// Curve is the name of an easing curve.
type Curve string

// The supported easing curves.
const (
	None           Curve = "linear"
	EaseInQuad     Curve = "ease-in-quad"
	EaseOutQuad    Curve = "ease-out-quad"
	EaseInOutQuad  Curve = "ease-in-out-quad"
	EaseInCubic    Curve = "ease-in-cubic"
	EaseOutCubic   Curve = "ease-out-cubic"
	EaseInOutCubic Curve = "ease-in-out-cubic"
	EaseOutQuint   Curve = "ease-out-quint"
	EaseInOutQuint Curve = "ease-in-out-quint"
	EaseInBack     Curve = "ease-in-back"
	EaseOutBack    Curve = "ease-out-back"
	EaseInOutBack  Curve = "ease-in-out-back"
	EaseOutBounce  Curve = "ease-out-bounce"
	EaseOutElastic Curve = "ease-out-elastic"
)

var curves = []Curve{
	None,
	EaseInQuad,
	EaseOutQuad,
	EaseInOutQuad,
	EaseInCubic,
	EaseOutCubic,
	EaseInOutCubic,
	EaseOutQuint,
	EaseInOutQuint,
	EaseInBack,
	EaseOutBack,
	EaseInOutBack,
	EaseOutBounce,
	EaseOutElastic,
}

var tweens = map[Curve]tween.TweenFunc{
	None:           tween.Linear,
	EaseInQuad:     tween.InQuad,
	EaseOutQuad:    tween.OutQuad,
	EaseInOutQuad:  tween.InOutQuad,
	EaseInCubic:    tween.InCubic,
	EaseOutCubic:   tween.OutCubic,
	EaseInOutCubic: tween.InOutCubic,
	EaseOutQuint:   tween.OutQuint,
	EaseInOutQuint: tween.InOutQuint,
	EaseInBack:     tween.InBack,
	EaseOutBack:    tween.OutBack,
	EaseInOutBack:  tween.InOutBack,
	EaseOutBounce:  tween.OutBounce,
	EaseOutElastic: tween.OutElastic,
}

// Ease maps the progress t, expected in [0,1], onto the given curve.
// Unknown curves behave like None. The result is not clamped: the back and
// elastic curves overshoot below 0 and above 1 before settling.
func Ease(c Curve, t float64) float64 {
	fn, ok := tweens[c]
	if !ok {
		return t
	}
	// The endpoints are exact for every curve, regardless of float32 rounding.
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// Parse returns the curve with the given name.
func Parse(name string) (Curve, error) {
	c := Curve(name)
	if _, ok := tweens[c]; !ok {
		return None, fmt.Errorf("unsupported easing curve %q", name)
	}
	return c, nil
}

// Curves returns the names of all supported curves.
func Curves() []Curve {
	out := make([]Curve, len(curves))
	copy(out, curves)
	return out
}

// String implements fmt.Stringer.
func (c Curve) String() string {
	return string(c)
}
