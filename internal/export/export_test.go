package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-creator/internal/canvas2d"
	"emoji-creator/internal/features"
)

func decodeDataURL(t *testing.T, url string) []byte {
	t.Helper()
	require.True(t, strings.HasPrefix(url, dataURLPrefix), url)
	data, err := base64.StdEncoding.DecodeString(url[len(dataURLPrefix):])
	require.NoError(t, err)
	return data
}

func TestDataURLFromSurface(t *testing.T) {
	sf := canvas2d.NewSurface(64, 64)
	defer sf.Close()
	require.NoError(t, canvas2d.Draw(sf, features.Default()))

	url, ok := DataURL(sf)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	img, err := png.Decode(bytes.NewReader(decodeDataURL(t, url)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestAbsentSurfaceDoesNothing(t *testing.T) {
	var sf *canvas2d.Surface
	url, ok := DataURL(sf)
	assert.False(t, ok)
	assert.Empty(t, url)

	url, ok = DataURL(nil)
	assert.False(t, ok)
	assert.Empty(t, url)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := Save(sf, dir, DefaultName)
	assert.NoError(t, err)
	assert.Empty(t, path)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no directory is created for an absent surface")
}

func TestSave(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := Save(Image{Img: img}, dir, "my emoji")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_emoji.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	r, _, _, _ := got.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, DefaultName, sanitizeFilename(""))
	assert.Equal(t, "evil.png", sanitizeFilename("../../evil.png"))
	assert.Equal(t, "a_b.png", sanitizeFilename("a b.png"))
}

func TestReadback(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})

	flipped := Readback(img, 0)
	r, _, _, _ := flipped.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r, "top row moves to the bottom")
	r, _, _, _ = flipped.At(0, 0).RGBA()
	assert.Zero(t, r)

	scaled := Readback(img, 8)
	assert.Equal(t, image.Rect(0, 0, 8, 8), scaled.Bounds())

	assert.Nil(t, Readback(nil, 8))
}
