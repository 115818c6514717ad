package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
  <rect x="4" y="4" width="8" height="8" fill="#ff0000"/>
</svg>`

func TestSprite_DefaultIsSquareAndTranslucent(t *testing.T) {
	assert := assert.New(t)

	img, err := Default()
	require.NoError(t, err)

	assert.Equal(48, img.Bounds().Dx())
	assert.Equal(48, img.Bounds().Dy())
	// The corners lie outside of the ring.
	assert.Equal(uint8(0), img.NRGBAAt(0, 0).A)
}

func TestSprite_DecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestSprite_FromSVG(t *testing.T) {
	assert := assert.New(t)

	img, err := FromSVG(strings.NewReader(square), 0, 0)
	require.NoError(t, err)
	assert.Equal(image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(uint8(0), img.NRGBAAt(1, 1).A)

	c := img.NRGBAAt(8, 8)
	assert.Equal(uint8(255), c.R)
	assert.Equal(uint8(255), c.A)

	img, err = FromSVG(strings.NewReader(square), 32, 32)
	require.NoError(t, err)
	assert.Equal(image.Rect(0, 0, 32, 32), img.Bounds())
	assert.Equal(uint8(255), img.NRGBAAt(16, 16).A)
}

func TestSprite_FromSVGWithoutSize(t *testing.T) {
	_, err := FromSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 0, 0)
	assert.True(t, errors.Is(err, ErrEmptySprite))
}

func TestSprite_LoadSniffsFormat(t *testing.T) {
	assert := assert.New(t)

	img, err := Load([]byte(square))
	require.NoError(t, err)
	assert.Equal(16, img.Bounds().Dx())

	img, err = Load(Embedded())
	require.NoError(t, err)
	assert.Equal(48, img.Bounds().Dx())
}

func TestSprite_Open(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	src.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 255})
	require.NoError(t, png.Encode(&buf, src))

	path := filepath.Join(t.TempDir(), "sprite.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := FromFile(path)()
	require.NoError(t, err)
	assert.Equal(image.Rect(0, 0, 6, 4), img.Bounds())
	assert.Equal(color.NRGBA{G: 255, A: 255}, img.NRGBAAt(1, 1))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(square))
	}))
	defer srv.Close()

	img, err = Open(srv.URL + "/sprite.svg")
	require.NoError(t, err)
	assert.Equal(16, img.Bounds().Dx())

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(err)
}

func TestSprite_ToNRGBAMovesOrigin(t *testing.T) {
	assert := assert.New(t)

	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{B: 255, A: 255})

	img := ToNRGBA(src)
	assert.Equal(image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(color.NRGBA{B: 255, A: 255}, img.NRGBAAt(0, 0))

	same := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(same, ToNRGBA(same))
}
