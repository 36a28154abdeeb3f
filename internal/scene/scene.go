// Package scene hosts the two emoji views inside the raylib window: the lit 3D scene and
// the flat 2D canvas. Both render off screen and are drawn fitted into a viewport.
package scene

import (
	"image"
	"image/color"
	"image/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the viewport clear color, a pale lavender.
var Background = color.RGBA{R: 0xF3, G: 0xF0, B: 0xFA, A: 0xFF}

// View is what the frame loop needs from either host.
type View interface {
	// Draw draws the last rendered frame fitted into dst.
	Draw(dst rl.Rectangle)
	// Snapshot returns the pixels of the last frame, or nil when there are none.
	Snapshot() image.Image
}

// Fit returns the largest rectangle with the aspect ratio w:h centered in dst.
func Fit(w, h float32, dst rl.Rectangle) rl.Rectangle {
	if w <= 0 || h <= 0 || dst.Width <= 0 || dst.Height <= 0 {
		return rl.Rectangle{X: dst.X, Y: dst.Y}
	}
	scale := min(dst.Width/w, dst.Height/h)
	fw, fh := w*scale, h*scale
	return rl.Rectangle{
		X:      dst.X + (dst.Width-fw)/2,
		Y:      dst.Y + (dst.Height-fh)/2,
		Width:  fw,
		Height: fh,
	}
}

// Pixels converts img to the row-major color slice raylib textures are updated with.
func Pixels(img image.Image) []color.RGBA {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	out := make([]color.RGBA, b.Dx()*b.Dy())
	for i := range out {
		p := rgba.Pix[4*i : 4*i+4 : 4*i+4]
		out[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return out
}

func drawFitted(tex rl.Texture2D, flipY bool, dst rl.Rectangle) {
	w, h := float32(tex.Width), float32(tex.Height)
	src := rl.Rectangle{Width: w, Height: h}
	if flipY {
		// render textures are stored bottom row first
		src.Height = -h
	}
	rl.DrawTexturePro(tex, src, Fit(w, h, dst), rl.Vector2{}, 0, rl.White)
}
