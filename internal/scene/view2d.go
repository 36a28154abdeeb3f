package scene

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/canvas2d"
	"emoji-creator/internal/features"
)

// View2D shows the gg canvas. The canvas is redrawn and uploaded to a texture only when
// the state version changes.
type View2D struct {
	surface *canvas2d.Surface
	tex     rl.Texture2D
	loaded  bool
	version uint64
	drawn   bool
}

// NewView2D returns a view over a width x height canvas.
func NewView2D(width, height int) *View2D {
	return &View2D{surface: canvas2d.NewSurface(width, height)}
}

// Surface returns the drawing surface.
func (v *View2D) Surface() *canvas2d.Surface {
	return v.surface
}

// Render redraws the canvas for s if version differs from the last one drawn.
func (v *View2D) Render(s features.State, version uint64) error {
	if v.drawn && version == v.version {
		return nil
	}
	if err := canvas2d.Draw(v.surface, s); err != nil {
		return err
	}
	v.drawn, v.version = true, version
	img := v.surface.Snapshot()
	if img == nil {
		return nil
	}
	if !v.loaded {
		w, h := v.surface.Size()
		blank := rl.GenImageColor(w, h, rl.White)
		v.tex = rl.LoadTextureFromImage(blank)
		rl.UnloadImage(blank)
		v.loaded = rl.IsTextureValid(v.tex)
		if !v.loaded {
			return nil
		}
	}
	rl.UpdateTexture(v.tex, Pixels(img))
	return nil
}

// Draw draws the canvas texture fitted into dst.
func (v *View2D) Draw(dst rl.Rectangle) {
	if !v.loaded {
		return
	}
	drawFitted(v.tex, false, dst)
}

// Snapshot returns the canvas pixels.
func (v *View2D) Snapshot() image.Image {
	return v.surface.Snapshot()
}

// Close frees the texture and the canvas.
func (v *View2D) Close() error {
	if v.loaded {
		rl.UnloadTexture(v.tex)
		v.loaded = false
	}
	return v.surface.Close()
}
