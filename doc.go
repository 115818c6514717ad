/*
Package bling draws small animated overlays, called blings, on top of a
composited desktop and keeps the repainted area to a minimum.

The main bling is the Spinner, which signals ongoing activity. When mapped it
renders its sprite rotated by every whole degree into a single atlas texture,
then loops a rotation animation over it. Every change to the spinner damages
only its bounding box on the outputs it covers.

A minimal setup with one output looks like this:

	package main

	import (
		"context"
		"time"

		"github.com/esimov/bling"
		"github.com/esimov/bling/output"
		"github.com/esimov/bling/render"
	)

	func main() {
		layout := output.NewLayout()
		dsi := output.New("DSI-1", 0, 0, 720, 1440, 2)
		if err := layout.Add(dsi); err != nil {
			panic(err)
		}

		desktop := bling.NewDesktop(layout, render.NewSoftware())
		spinner := bling.NewSpinner(layout, desktop.Renderer(), dsi, 180, 360)
		desktop.AddBling(spinner)
		spinner.Map()
		defer spinner.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		desktop.Run(ctx, 16*time.Millisecond, nil)
	}
*/
package bling
