package canvas2d

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-creator/internal/features"
)

func rgbAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func isInk(c color.RGBA) bool {
	return c.R < 60 && c.G < 60 && c.B < 60 && c.A > 200
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) < 4 && d(a.G, b.G) < 4 && d(a.B, b.B) < 4 && d(a.A, b.A) < 4
}

func draw(t *testing.T, s features.State) image.Image {
	t.Helper()
	sf := NewSurface(DefaultWidth, DefaultHeight)
	t.Cleanup(func() { _ = sf.Close() })
	require.NoError(t, Draw(sf, s))
	return sf.Snapshot()
}

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDrawBodyAndNormalEyes(t *testing.T) {
	img := draw(t, features.Default())
	yellow := color.RGBA{0xFF, 0xE5, 0x5C, 0xFF}

	assert.True(t, near(yellow, rgbAt(img, 200, 200)), "body center %v", rgbAt(img, 200, 200))
	assert.Equal(t, uint8(0), rgbAt(img, 5, 5).A, "outside the body stays clear")

	assert.True(t, isInk(rgbAt(img, 140, 170)), "left eye")
	assert.True(t, isInk(rgbAt(img, 260, 170)), "right eye")
	assert.True(t, near(yellow, rgbAt(img, 200, 170)), "between the eyes")
}

func TestHappyEyesAreArcs(t *testing.T) {
	s := features.Default()
	s.EyeStyle = features.EyeHappy
	img := draw(t, s)
	yellow := color.RGBA{0xFF, 0xE5, 0x5C, 0xFF}

	assert.True(t, near(yellow, rgbAt(img, 140, 170)), "eye center is not filled")
	assert.True(t, isInk(rgbAt(img, 140, 170-s.EyeSize)), "top of the arc")
	assert.True(t, near(yellow, rgbAt(img, 140, 170+s.EyeSize)), "no lower half")
}

func TestEyeSize(t *testing.T) {
	s := features.Default()
	s, err := s.With(features.Update{Field: features.FieldEyeSize, Value: "40"})
	require.NoError(t, err)
	img := draw(t, s)
	assert.True(t, isInk(rgbAt(img, 140+35, 170)))

	small := draw(t, features.Default())
	assert.False(t, isInk(rgbAt(small, 140+35, 170)))
}

// The frown arc sits 80px below center while the smile sits 30px below; this asymmetry
// is current behavior.
func TestMouthArcs(t *testing.T) {
	smile := draw(t, features.Default())
	assert.True(t, isInk(rgbAt(smile, 200, 200+SmileOffsetY+MouthRadius)), "bottom of smile")
	assert.False(t, isInk(rgbAt(smile, 200, 200+FrownOffsetY-MouthRadius)))

	s := features.Default()
	s.MouthStyle = features.MouthFrown
	frown := draw(t, s)
	assert.True(t, isInk(rgbAt(frown, 200, 200+FrownOffsetY-MouthRadius)), "top of frown")
	assert.False(t, isInk(rgbAt(frown, 200, 200+SmileOffsetY+MouthRadius)))

	s.MouthStyle = features.MouthSad
	assert.Equal(t, encode(t, frown), encode(t, draw(t, s)))
}

func TestDrawIsIdempotent(t *testing.T) {
	sf := NewSurface(DefaultWidth, DefaultHeight)
	defer sf.Close()
	s := features.Default()

	require.NoError(t, Draw(sf, s))
	first := encode(t, sf.Snapshot())
	require.NoError(t, Draw(sf, s))
	assert.Equal(t, first, encode(t, sf.Snapshot()))

	other := s
	other.EyeStyle = features.EyeHappy
	other.MouthStyle = features.MouthFrown
	require.NoError(t, Draw(sf, other))
	require.NoError(t, Draw(sf, s))
	assert.Equal(t, first, encode(t, sf.Snapshot()), "no trace of the previous frame")
}

func TestDrawIsTotal(t *testing.T) {
	sf := NewSurface(64, 64)
	defer sf.Close()
	for _, e := range features.EyeStyles() {
		for _, m := range features.MouthStyles() {
			s := features.Default()
			s.EyeStyle, s.MouthStyle = e, m
			assert.NoError(t, Draw(sf, s), "%v/%v", e, m)
		}
	}
}

func TestAbsentSurface(t *testing.T) {
	var sf *Surface
	assert.False(t, sf.Ready())
	assert.NoError(t, Draw(sf, features.Default()))
	assert.Nil(t, sf.Snapshot())
	assert.NoError(t, sf.Close())

	closed := NewSurface(10, 10)
	require.NoError(t, closed.Close())
	assert.False(t, closed.Ready())
	assert.NoError(t, Draw(closed, features.Default()))
	assert.Nil(t, closed.Snapshot())
	w, h := closed.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}
