package anim

import (
	"sort"
	"time"
)

// frameClock is a minimal Animatable driven by hand.
type frameClock struct {
	next      uint
	callbacks map[uint]FrameCallback
}

func newFrameClock() *frameClock {
	return &frameClock{callbacks: make(map[uint]FrameCallback)}
}

func (c *frameClock) AddFrameCallback(cb FrameCallback) uint {
	c.next++
	c.callbacks[c.next] = cb
	return c.next
}

func (c *frameClock) RemoveFrameCallback(id uint) {
	delete(c.callbacks, id)
}

func (c *frameClock) frame(now time.Time) {
	ids := make([]uint, 0, len(c.callbacks))
	for id := range c.callbacks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		cb, ok := c.callbacks[id]
		if !ok {
			continue
		}
		if !cb(now) {
			delete(c.callbacks, id)
		}
	}
}
