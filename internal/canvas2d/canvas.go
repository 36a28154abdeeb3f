// Package canvas2d draws the flat variant of the emoji with gogpu/gg. Every Draw replays
// the whole picture onto a cleared surface, so drawing the same state twice gives the
// same pixels.
package canvas2d

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"emoji-creator/internal/features"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 400

	BodyRadius  = 150
	EyeOffsetX  = 60
	EyeOffsetY  = -30
	MouthRadius = 50
	LineWidth   = 5
	// The smile arc is centered 30px below the body center, the frown arc 80px below.
	// They are not mirror images of each other.
	SmileOffsetY = 30
	FrownOffsetY = 80
)

var ink = color.RGBA{A: 255}

// Surface is a drawing surface. A nil *Surface, or one that was closed, is absent:
// drawing on it and reading it are silent no-ops.
type Surface struct {
	dc *gg.Context
}

// NewSurface allocates a width x height surface.
func NewSurface(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

// Ready reports whether the surface can be drawn on.
func (s *Surface) Ready() bool {
	return s != nil && s.dc != nil
}

// Size returns the surface size in pixels, or 0, 0 when absent.
func (s *Surface) Size() (int, int) {
	if !s.Ready() {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// Snapshot returns the current pixels, or nil when the surface is absent.
func (s *Surface) Snapshot() image.Image {
	if !s.Ready() {
		return nil
	}
	return s.dc.Image()
}

// Close releases the surface. It is absent afterwards.
func (s *Surface) Close() error {
	if !s.Ready() {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}

// Draw renders st onto s: clear, body, eyes, mouth.
func Draw(s *Surface, st features.State) error {
	if !s.Ready() {
		return nil
	}
	dc := s.dc
	cx, cy := float64(dc.Width())/2, float64(dc.Height())/2

	dc.ClearPath()
	dc.Clear()

	dc.SetColor(features.MustColor(st.Color))
	dc.DrawCircle(cx, cy, BodyRadius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas2d: body: %w", err)
	}

	r := float64(features.ClampEyeSize(st.EyeSize))
	for _, dx := range []float64{-EyeOffsetX, EyeOffsetX} {
		if err := drawEye(dc, st.EyeStyle, cx+dx, cy+EyeOffsetY, r); err != nil {
			return err
		}
	}

	if err := drawMouth(dc, st.MouthStyle, cx, cy); err != nil {
		return err
	}
	return nil
}

// drawEye draws happy eyes as an upper half arc and every other style as a filled dot.
func drawEye(dc *gg.Context, style features.EyeStyle, x, y, r float64) error {
	dc.SetColor(ink)
	if style == features.EyeHappy {
		dc.SetLineWidth(LineWidth)
		// π→2π runs through 3π/2, which is up on a y-down canvas
		dc.DrawArc(x, y, r, math.Pi, 2*math.Pi)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("canvas2d: eye: %w", err)
		}
		return nil
	}
	dc.DrawCircle(x, y, r)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas2d: eye: %w", err)
	}
	return nil
}

func drawMouth(dc *gg.Context, style features.MouthStyle, cx, cy float64) error {
	dc.SetColor(ink)
	dc.SetLineWidth(LineWidth)
	if style.Smiling() {
		dc.DrawArc(cx, cy+SmileOffsetY, MouthRadius, 0, math.Pi)
	} else {
		dc.DrawArc(cx, cy+FrownOffsetY, MouthRadius, math.Pi, 2*math.Pi)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("canvas2d: mouth: %w", err)
	}
	return nil
}
