package output

import (
	"image"
	"testing"
	"time"

	"github.com/esimov/bling/damage"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func drawOK(FrameInfo) error { return nil }

func settle(o *Output) {
	o.Frame(time.Unix(0, 0), 1, drawOK)
}

func TestOutput_Viewport(t *testing.T) {
	assert := assert.New(t)

	o := New("DSI-1", 100, 50, 720, 1440, 2)
	assert.Equal(image.Rect(100, 50, 460, 770), o.Viewport())

	o = New("HDMI-A-1", 0, 0, 1000, 500, 1.5)
	assert.Equal(image.Rect(0, 0, 666, 333), o.Viewport())
}

func TestOutput_FrameCallbacks(t *testing.T) {
	assert := assert.New(t)

	o := New("DSI-1", 0, 0, 100, 100, 1)
	settle(o)
	assert.False(o.FramePending())

	ticks := 0
	o.AddFrameCallback(func(time.Time) bool {
		ticks++
		return ticks < 2
	})
	assert.True(o.FramePending())

	o.Frame(time.Unix(1, 0), 1, drawOK)
	assert.Equal(1, ticks)
	assert.True(o.FramePending(), "frame clock keeps ticking while callbacks exist")

	o.Frame(time.Unix(2, 0), 1, drawOK)
	assert.Equal(2, ticks)
	assert.False(o.HasFrameCallbacks())
	assert.False(o.FramePending())
}

func TestOutput_CallbackCanReplaceItself(t *testing.T) {
	assert := assert.New(t)

	o := New("DSI-1", 0, 0, 100, 100, 1)
	var first, second int
	var again func(time.Time) bool
	again = func(time.Time) bool {
		second++
		return true
	}
	o.AddFrameCallback(func(time.Time) bool {
		first++
		o.AddFrameCallback(again)
		return false
	})

	o.Frame(time.Unix(1, 0), 1, drawOK)
	assert.Equal(1, first)
	assert.Equal(0, second, "callbacks added during dispatch run on the next frame")
	assert.Len(o.callbacks, 1)

	o.Frame(time.Unix(2, 0), 1, drawOK)
	assert.Equal(1, first)
	assert.Equal(1, second)
}

func TestOutput_RemoveDuringDispatch(t *testing.T) {
	o := New("DSI-1", 0, 0, 100, 100, 1)

	var victim uint
	called := false
	o.AddFrameCallback(func(time.Time) bool {
		o.RemoveFrameCallback(victim)
		return true
	})
	victim = o.AddFrameCallback(func(time.Time) bool {
		called = true
		return true
	})

	o.Frame(time.Unix(1, 0), 1, drawOK)
	assert.False(t, called)
	assert.Len(t, o.callbacks, 1)
}

func TestOutput_FrameDrawsOnlyWhenDamaged(t *testing.T) {
	assert := assert.New(t)

	o := New("DSI-1", 0, 0, 100, 100, 1)
	var got []damage.Region
	record := func(info FrameInfo) error {
		got = append(got, info.Damage)
		return nil
	}

	assert.True(o.Frame(time.Unix(0, 0), 1, record))
	assert.Equal(image.Rect(0, 0, 100, 100), got[0].Bounds())

	assert.False(o.Frame(time.Unix(1, 0), 1, record))

	o.Damage().AddBox(image.Rect(10, 10, 20, 20))
	assert.True(o.Frame(time.Unix(2, 0), 1, record))
	assert.Equal(image.Rect(10, 10, 20, 20), got[1].Bounds())
	assert.True(o.Damage().Current().Empty())
}

func TestOutput_FailedDrawDamagesWhole(t *testing.T) {
	o := New("DSI-1", 0, 0, 100, 100, 1)
	settle(o)

	o.Damage().AddBox(image.Rect(0, 0, 5, 5))
	o.Frame(time.Unix(1, 0), 1, func(FrameInfo) error { return errors.New("submit failed") })

	assert.Equal(t, 100*100, o.Damage().Current().Area())
}

func TestOutput_ScheduleHookMergesRequests(t *testing.T) {
	o := New("DSI-1", 0, 0, 100, 100, 1)
	settle(o)

	requests := 0
	o.OnSchedule(func(*Output) { requests++ })
	o.ScheduleFrame()
	o.ScheduleFrame()

	assert.Equal(t, 1, requests)
}

func TestOutput_DebugDamageFades(t *testing.T) {
	assert := assert.New(t)

	o := New("DSI-1", 0, 0, 100, 100, 1)
	settle(o)
	o.SetDebugDamageTracking(true)

	t0 := time.Unix(10, 0)
	var highlights []Highlight
	record := func(info FrameInfo) error {
		highlights = info.Highlights
		return nil
	}

	o.Damage().AddBox(image.Rect(0, 0, 10, 10))
	o.Frame(t0, 1, record)
	assert.Len(highlights, 1)
	assert.Equal(1.0, highlights[0].Alpha)
	assert.True(o.FramePending(), "keeps redrawing until faded out")

	o.Frame(t0.Add(DamageFadeOut/2), 1, record)
	assert.Len(highlights, 1)
	assert.InDelta(0.5, highlights[0].Alpha, 1e-9)
	assert.Equal(image.Rect(0, 0, 10, 10), highlights[0].Region.Bounds())

	o.Frame(t0.Add(DamageFadeOut), 1, record)
	assert.Empty(highlights)
	assert.False(o.FramePending())
}
