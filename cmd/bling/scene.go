package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/bling"
	"github.com/esimov/bling/config"
	"github.com/esimov/bling/output"
	"github.com/esimov/bling/render"
	"github.com/esimov/bling/sprite"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// scene is the desktop described by a configuration, with its spinner.
type scene struct {
	desktop *bling.Desktop
	spinner *bling.Spinner
}

// newScene lays out the configured outputs and creates the backdrops and
// the spinner. The spinner is left unmapped.
func newScene(cfg *config.Config, src sprite.Source) (*scene, error) {
	layout := output.NewLayout()
	if err := configureOutputs(layout, cfg.Outputs); err != nil {
		return nil, err
	}

	bkg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	d := bling.NewDesktop(layout, render.NewSoftware())
	d.Background = bkg

	for _, b := range cfg.Backdrops {
		r := bling.NewColorRect(layout, b.Box(), b.NRGBA())
		d.AddBling(r)
		r.Map()
	}

	// The animation is driven by the output showing the spinner center.
	clock := layout.OutputAt(image.Pt(cfg.Spinner.CX, cfg.Spinner.CY))
	if clock == nil {
		clock = layout.Outputs()[0]
	}

	opts := []bling.SpinnerOption{
		bling.WithDuration(cfg.Spinner.Duration()),
		bling.WithEasing(cfg.Spinner.Curve()),
	}
	if src != nil {
		opts = append(opts, bling.WithSprite(src))
	}
	s := bling.NewSpinner(layout, d.Renderer(), clock, cfg.Spinner.CX, cfg.Spinner.CY, opts...)
	d.AddBling(s)

	layout.SetDebugDamageTracking(cfg.Debug.DamageTracking)

	return &scene{desktop: d, spinner: s}, nil
}

// configureOutputs adds the outputs missing from layout and moves or
// resizes the ones already present. Outputs not listed are kept.
func configureOutputs(layout *output.Layout, outputs []config.Output) error {
	for _, oc := range outputs {
		o := layout.Output(oc.Name)
		if o == nil {
			if err := layout.Add(output.New(oc.Name, oc.X, oc.Y, oc.Width, oc.Height, oc.Scale)); err != nil {
				return err
			}
			continue
		}
		if o.Position() != image.Pt(oc.X, oc.Y) {
			o.SetPosition(oc.X, oc.Y)
		}
		if w, h := o.Size(); w != oc.Width || h != oc.Height || o.Scale() != oc.Scale {
			o.SetMode(oc.Width, oc.Height, oc.Scale)
		}
	}
	return nil
}

// reconfigure applies a reloaded configuration to the running scene: the
// output layout, the background, the spinner center and damage debugging.
// Sprite, timing and backdrops are fixed for the lifetime of the scene.
func (s *scene) reconfigure(cfg *config.Config) error {
	layout := s.desktop.Layout()
	if err := configureOutputs(layout, cfg.Outputs); err != nil {
		return err
	}

	bkg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	if bkg != s.desktop.Background {
		s.desktop.Background = bkg
		layout.DamageWhole()
	}

	s.spinner.SetCenter(cfg.Spinner.CX, cfg.Spinner.CY)
	layout.SetDebugDamageTracking(cfg.Debug.DamageTracking)
	return nil
}

// start maps the spinner, which builds its atlas and starts the animation.
func (s *scene) start() error {
	s.spinner.Map()
	if !s.spinner.IsMapped() {
		return errors.New("could not map the spinner")
	}
	return nil
}

// simulate ticks the desktop count times, interval apart, and saves the
// buffer of every output after each tick as <dir>/<output>-<frame>.png.
func (s *scene) simulate(dir string, count int, interval time.Duration) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "unable to create the frames directory")
	}

	var files []string
	now := time.Now()
	for i := 0; i < count; i++ {
		s.desktop.Tick(now)

		// Buffers stay untouched until the next tick, so the outputs of
		// one frame are encoded concurrently.
		var g errgroup.Group
		for _, o := range s.desktop.Layout().Outputs() {
			buf := s.desktop.Buffer(o.Name())
			if buf == nil {
				continue
			}
			name, frame := o.Name(), i
			path := filepath.Join(dir, fmt.Sprintf("%s-%04d.png", name, frame))
			g.Go(func() error {
				return errors.Wrapf(imaging.Save(buf, path), "unable to save frame %d of %s", frame, name)
			})
			files = append(files, path)
		}
		if err := g.Wait(); err != nil {
			return files, err
		}
		now = now.Add(interval)
	}
	return files, nil
}

// exportAtlas renders the rotation atlas of src and writes it as PNG to
// dst. A dst of "-" writes to stdout, which must be a pipe.
func exportAtlas(src sprite.Source, dst string) (image.Rectangle, error) {
	img, err := src()
	if err != nil {
		return image.Rectangle{}, err
	}
	atlas, err := bling.BuildAtlas(img)
	if err != nil {
		return image.Rectangle{}, err
	}

	if dst == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return image.Rectangle{}, errors.New("`-` should be used with a pipe for stdout")
		}
		return atlas.Bounds(), imaging.Encode(os.Stdout, atlas, imaging.PNG)
	}
	if err := imaging.Save(atlas, dst); err != nil {
		return image.Rectangle{}, errors.Wrap(err, "unable to save the atlas")
	}
	return atlas.Bounds(), nil
}
