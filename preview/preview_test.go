package preview

import (
	"testing"

	"github.com/esimov/bling"
	"github.com/esimov/bling/output"
	"github.com/esimov/bling/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDesktop(t *testing.T, outputs ...*output.Output) *bling.Desktop {
	l := output.NewLayout()
	for _, o := range outputs {
		require.NoError(t, l.Add(o))
	}
	return bling.NewDesktop(l, render.NewSoftware())
}

func TestPreview_UnknownOutput(t *testing.T) {
	d := newDesktop(t, output.New("DSI-1", 0, 0, 720, 1440, 2))

	_, err := New(d, "HDMI-A-1", 0)
	assert.Error(t, err)
}

func TestPreview_WindowSize(t *testing.T) {
	assert := assert.New(t)

	d := newDesktop(t,
		output.New("DSI-1", 0, 0, 720, 1440, 2),
		output.New("HDMI-A-1", 360, 0, 3840, 2160, 1),
	)

	p, err := New(d, "DSI-1", 0)
	require.NoError(t, err)
	w, h := p.windowSize()
	assert.Equal(360.0, w)
	assert.Equal(720.0, h)

	// Large outputs keep their aspect ratio.
	p, err = New(d, "HDMI-A-1", 0)
	require.NoError(t, err)
	w, h = p.windowSize()
	assert.InDelta(1365.33, w, 0.01)
	assert.InDelta(768, h, 0.01)
}
