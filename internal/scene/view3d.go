package scene

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/emoji"
	"emoji-creator/internal/export"
	"emoji-creator/internal/primitives"
	"emoji-creator/internal/shape"
)

// Camera defaults: looking at the origin from +Z.
const (
	CameraDistance = 4
	CameraFovy     = 50
)

// View3D renders emoji frames with a perspective camera into a square render texture.
// GPU resources are created on first Render, after the window exists.
type View3D struct {
	Camera rl.Camera3D
	// AutoRotate orbits the camera around the emoji (raylib CameraOrbital).
	AutoRotate bool

	reg        *primitives.Registry
	size       int32
	exportSize int
	target     rl.RenderTexture2D
	ready      bool
}

// NewView3D returns a view rendering at size x size pixels whose snapshots are scaled to
// exportSize x exportSize. exportSize <= 0 keeps the render size.
func NewView3D(size int32, exportSize int, autoRotate bool) *View3D {
	v := &View3D{AutoRotate: autoRotate, reg: primitives.NewRegistry(), size: size, exportSize: exportSize}
	v.Camera.Position = rl.NewVector3(0, 0, CameraDistance)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = CameraFovy
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Update moves the camera when auto-rotate is on. Call once per frame.
func (v *View3D) Update() {
	if v.AutoRotate {
		rl.UpdateCamera(&v.Camera, rl.CameraOrbital)
	}
}

// Render draws frame into the view's render texture.
func (v *View3D) Render(frame emoji.Frame) {
	if !v.ready {
		v.target = rl.LoadRenderTexture(v.size, v.size)
		v.ready = rl.IsRenderTextureValid(v.target)
		if !v.ready {
			return
		}
	}
	p := v.Camera.Position
	v.reg.SetView(shape.Vec3{p.X, p.Y, p.Z})

	rl.BeginTextureMode(v.target)
	rl.ClearBackground(Background)
	rl.BeginMode3D(v.Camera)
	v.reg.Draw(frame.Root)
	rl.EndMode3D()
	rl.EndTextureMode()
}

// Draw draws the last rendered frame fitted into dst.
func (v *View3D) Draw(dst rl.Rectangle) {
	if !v.ready {
		return
	}
	drawFitted(v.target.Texture, true, dst)
}

// Snapshot reads the render texture back from the GPU, top row first, at the export size.
func (v *View3D) Snapshot() image.Image {
	if !v.ready {
		return nil
	}
	img := rl.LoadImageFromTexture(v.target.Texture)
	defer rl.UnloadImage(img)
	return v.readback(img.ToImage())
}

func (v *View3D) readback(img image.Image) image.Image {
	return export.Readback(img, v.exportSize)
}

// Close frees GPU resources.
func (v *View3D) Close() {
	if v.ready {
		rl.UnloadRenderTexture(v.target)
		v.ready = false
	}
	v.reg.Unload()
}
