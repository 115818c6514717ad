// Package preview shows one output of a desktop in a Gio window.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/bling"
	"github.com/esimov/bling/output"
	"github.com/pkg/errors"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	MaxScreenX = 1366
	MaxScreenY = 768
)

var (
	statusBkgColor = color.NRGBA{R: 15, G: 139, B: 141, A: 0xff}
	statusFgColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Preview drives a desktop from the window event loop and shows the
// frames of a single output.
type Preview struct {
	desktop  *bling.Desktop
	output   *output.Output
	interval time.Duration
	title    string

	// Reload, if set, is called from the window loop when R is pressed.
	Reload func() error

	frames int
	img    image.Image
}

// New creates a preview of the named output, ticking the desktop every
// interval.
func New(d *bling.Desktop, name string, interval time.Duration) (*Preview, error) {
	o := d.Layout().Output(name)
	if o == nil {
		return nil, errors.Errorf("preview: unknown output %q", name)
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Preview{
		desktop:  d,
		output:   o,
		interval: interval,
		title:    fmt.Sprintf("bling - %s", name),
	}, nil
}

// windowSize returns the logical output size, shrunk to fit the screen
// while keeping the aspect ratio.
func (p *Preview) windowSize() (float64, float64) {
	vp := p.output.Viewport()
	w, h := float64(vp.Dx()), float64(vp.Dy())

	if w > MaxScreenX || h > MaxScreenY {
		ratio := math.Min(MaxScreenX/w, MaxScreenY/h)
		w, h = w*ratio, h*ratio
	}
	return w, h
}

// Run opens the window and blocks until it is closed. All desktop access
// happens on the calling goroutine. The caller must run app.Main on the
// main goroutine.
func (p *Preview) Run() error {
	w, h := p.windowSize()
	win := app.NewWindow(
		app.Title(p.title),
		app.Size(unit.Dp(w), unit.Dp(h)),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var ops op.Ops
	th := material.NewTheme(gofont.Collection())

	for {
		select {
		case e := <-win.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				p.draw(gtx, th)
				e.Frame(gtx.Ops)
			case key.Event:
				if e.State != key.Press {
					continue
				}
				switch e.Name {
				case key.NameEscape:
					win.Close()
				case "D":
					l := p.desktop.Layout()
					l.SetDebugDamageTracking(!p.output.DebugDamageTracking())
					l.DamageWhole()
				case "R":
					if p.Reload != nil {
						if err := p.Reload(); err != nil {
							log.Printf("preview: reload failed: %v", err)
						}
					}
				}
			case system.DestroyEvent:
				return e.Err
			}
		case now := <-ticker.C:
			for _, o := range p.desktop.Tick(now) {
				if o == p.output {
					p.frames++
					p.img = p.desktop.Buffer(o.Name())
					win.Invalidate()
				}
			}
		}
	}
}

func (p *Preview) draw(gtx C, th *material.Theme) {
	paint.Fill(gtx.Ops, color.NRGBA{A: 0xff})

	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			if p.img == nil {
				return D{Size: gtx.Constraints.Max}
			}
			return widget.Image{
				Src:   paint.NewImageOp(p.img),
				Scale: 1 / gtx.Metric.PxPerDp,
				Fit:   widget.Contain,
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return p.status(gtx, th)
		}),
	)
}

// status draws a one line summary below the output.
func (p *Preview) status(gtx C, th *material.Theme) D {
	msg := fmt.Sprintf("%s  frames: %d  [D] damage tracking  [Esc] quit", p.output.Name(), p.frames)

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			paint.FillShape(gtx.Ops, statusBkgColor, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
				lbl := material.Label(th, unit.Sp(12), msg)
				lbl.Color = statusFgColor
				return lbl.Layout(gtx)
			})
		}),
	)
}
