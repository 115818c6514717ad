package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/esimov/bling/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
outputs:
  - name: DSI-1
    width: 720
    height: 1440
    scale: 2
  - name: HDMI-A-1
    x: 360
    width: 1920
    height: 1080
    scale: 1.5
spinner:
  cx: 500
  cy: 300
  duration_ms: 1000
  easing: ease-out-bounce
background: "#102030"
backdrops:
  - x: 10
    y: 20
    width: 100
    height: 50
    color: steelblue
    alpha: 0.5
debug:
  damage_tracking: true
frame_interval_ms: 8
`

func TestConfig_DefaultIsValid(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 750*time.Millisecond, c.Spinner.Duration())
	assert.Equal(t, ease.EaseInOutBack, c.Spinner.Curve())
}

func TestConfig_Parse(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Len(c.Outputs, 2)
	assert.Equal("HDMI-A-1", c.Outputs[1].Name)
	assert.Equal(360, c.Outputs[1].X)
	assert.Equal(1.5, c.Outputs[1].Scale)
	assert.Equal(time.Second, c.Spinner.Duration())
	assert.Equal(ease.EaseOutBounce, c.Spinner.Curve())
	assert.True(c.Debug.DamageTracking)
	assert.Equal(8*time.Millisecond, c.FrameInterval())

	require.Len(t, c.Backdrops, 1)
	b := c.Backdrops[0]
	assert.Equal(image.Rect(10, 20, 110, 70), b.Box())
	assert.Equal(color.NRGBA{R: 70, G: 130, B: 180, A: 128}, b.NRGBA())
}

func TestConfig_PartialKeepsDefaults(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse([]byte("spinner:\n  cx: 42\n"))
	require.NoError(t, err)

	assert.Equal(42, c.Spinner.CX)
	assert.Equal(360, c.Spinner.CY)
	assert.Equal("DSI-1", c.Outputs[0].Name)
	assert.Equal(16, c.FrameIntervalMS)
}

func TestConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"no outputs":       "outputs: []\n",
		"duplicate output": "outputs:\n  - {name: a, width: 1, height: 1, scale: 1}\n  - {name: a, width: 1, height: 1, scale: 1}\n",
		"bad size":         "outputs:\n  - {name: a, width: 0, height: 1, scale: 1}\n",
		"bad scale":        "outputs:\n  - {name: a, width: 1, height: 1, scale: 0}\n",
		"bad easing":       "spinner:\n  easing: wobble\n",
		"bad duration":     "spinner:\n  duration_ms: 0\n",
		"bad center":       "spinner:\n  cx: -1\n",
		"bad color":        "background: rainbow\n",
		"bad backdrop":     "backdrops:\n  - {width: 10, height: 10, color: red, alpha: 2}\n",
		"bad yaml":         "outputs: [\n",
	}
	for name, data := range cases {
		_, err := Parse([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestConfig_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bling.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, c.Spinner.CX)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_ParseColor(t *testing.T) {
	assert := assert.New(t)

	c, err := ParseColor("Red")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 255, A: 255}, c)

	c, err = ParseColor("#10203040")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	c, err = ParseColor("#102030")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = ParseColor("#12")
	assert.Error(err)
}
