package anim

import (
	"log"

	"github.com/esimov/bling/ease"
	"github.com/pkg/errors"
)

var (
	// ErrProgressRange is returned for a progress outside of [0, 1].
	ErrProgressRange = errors.New("anim: progress out of range")
	// ErrNoProps is returned when applying progress without any property.
	ErrNoProps = errors.New("anim: no properties to ease")
)

// Prop is an eased property. Set receives the interpolated value.
type Prop struct {
	Name  string
	Start float64
	End   float64
	Set   func(v float64)
}

// PropertyEaser interpolates a set of properties along an easing curve.
type PropertyEaser struct {
	curve    ease.Curve
	props    []Prop
	progress float64
	detached bool
}

// NewPropertyEaser creates an easer without properties.
func NewPropertyEaser(curve ease.Curve) *PropertyEaser {
	return &PropertyEaser{curve: curve}
}

// SetProps registers props. A prop replaces an earlier one with the same
// name. Props without a setter are skipped with a warning. The progress is
// reset to 0 which writes the start values once. It returns the number of
// props accepted.
func (e *PropertyEaser) SetProps(props ...Prop) int {
	if e.detached {
		return 0
	}

	accepted := 0
	for _, p := range props {
		if p.Set == nil {
			log.Printf("anim: ignoring invalid property %q", p.Name)
			continue
		}
		accepted++
		if i := e.index(p.Name); i >= 0 {
			e.props[i] = p
			continue
		}
		e.props = append(e.props, p)
	}

	if len(e.props) > 0 {
		if err := e.SetProgress(0); err != nil {
			log.Printf("anim: %v", err)
		}
	}
	return accepted
}

// SetProgress applies the eased value for progress p to every property.
func (e *PropertyEaser) SetProgress(p float64) error {
	if p < 0 || p > 1 {
		return errors.Wrapf(ErrProgressRange, "%v", p)
	}
	if e.detached {
		return nil
	}
	if len(e.props) == 0 {
		return ErrNoProps
	}
	e.progress = p

	mu := ease.Ease(e.curve, p)
	for _, prop := range e.props {
		prop.Set(prop.Start + (prop.End-prop.Start)*mu)
	}
	return nil
}

// Progress returns the last applied progress.
func (e *PropertyEaser) Progress() float64 { return e.progress }

// Curve returns the easing curve.
func (e *PropertyEaser) Curve() ease.Curve { return e.curve }

// SetCurve changes the easing curve used by later updates.
func (e *PropertyEaser) SetCurve(c ease.Curve) { e.curve = c }

// Props returns a copy of the registered properties.
func (e *PropertyEaser) Props() []Prop {
	out := make([]Prop, len(e.props))
	copy(out, e.props)
	return out
}

// Detach drops the eased target. Later progress updates no longer reach
// the setters.
func (e *PropertyEaser) Detach() {
	e.detached = true
	e.props = nil
}

func (e *PropertyEaser) index(name string) int {
	for i, p := range e.props {
		if p.Name == name {
			return i
		}
	}
	return -1
}
