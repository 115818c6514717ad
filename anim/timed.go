package anim

import (
	"log"
	"time"
)

// State of a TimedAnimation.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return "unknown"
}

// TimedAnimation runs a PropertyEaser from 0 to 1 over a fixed duration,
// advancing on the frames of an Animatable.
type TimedAnimation struct {
	animatable Animatable
	duration   time.Duration
	easer      *PropertyEaser

	state   State
	start   time.Time
	started bool
	frameID uint
	done    []func()
}

// NewTimedAnimation creates an idle animation.
func NewTimedAnimation(a Animatable, d time.Duration, e *PropertyEaser) *TimedAnimation {
	return &TimedAnimation{
		animatable: a,
		duration:   d,
		easer:      e,
	}
}

// Play starts the animation. It does nothing while already running.
func (t *TimedAnimation) Play() {
	if t.state == Running {
		return
	}
	if t.animatable == nil {
		log.Printf("anim: no frame source to play animation on")
		return
	}

	t.state = Running
	t.started = false
	t.frameID = t.animatable.AddFrameCallback(t.tick)
}

// Reset stops the animation without emitting the done event.
func (t *TimedAnimation) Reset() {
	if t.state == Idle {
		return
	}
	t.state = Idle
	if t.frameID != 0 {
		t.animatable.RemoveFrameCallback(t.frameID)
		t.frameID = 0
	}
}

// OnDone registers fn to run every time the animation completes.
func (t *TimedAnimation) OnDone(fn func()) {
	t.done = append(t.done, fn)
}

// State returns whether the animation is running.
func (t *TimedAnimation) State() State { return t.state }

// Duration returns the length of one run.
func (t *TimedAnimation) Duration() time.Duration { return t.duration }

// Easer returns the animated property easer.
func (t *TimedAnimation) Easer() *PropertyEaser { return t.easer }

func (t *TimedAnimation) tick(now time.Time) bool {
	if t.state != Running {
		return false
	}
	if !t.started {
		t.start = now
		t.started = true
	}

	progress := 1.0
	if t.duration > 0 {
		progress = float64(now.Sub(t.start)) / float64(t.duration)
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
	}

	if t.easer != nil {
		if err := t.easer.SetProgress(progress); err != nil {
			log.Printf("anim: %v", err)
		}
	}
	if progress < 1 {
		return true
	}

	// The frame source drops this callback once we return false.
	t.state = Idle
	t.frameID = 0
	for _, fn := range append([]func(){}, t.done...) {
		fn()
	}
	return false
}
