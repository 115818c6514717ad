// Package anim drives time based property animations from a host frame clock.
package anim

import "time"

// FrameCallback is invoked once per frame with the frame time.
// Returning false unregisters the callback.
type FrameCallback func(now time.Time) bool

// Animatable is a frame source animations can hook into.
// Callback ids are never zero.
type Animatable interface {
	AddFrameCallback(cb FrameCallback) uint
	RemoveFrameCallback(id uint)
}
