package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/emoji"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws the FPS counter and the current motion values at the top left of the
// viewport. Hidden unless ShowFPS is set.
type Overlay struct {
	ShowFPS    bool
	frameCount uint32
	fpsText    string
	motionText string
}

// New returns a hidden overlay.
func New() *Overlay {
	return &Overlay{}
}

// Lines returns the overlay text for fps and motion m.
func Lines(fps int32, m emoji.Motion) (string, string) {
	return fmt.Sprintf("FPS: %d", fps), fmt.Sprintf("bounce %+.3f  yaw %.2f rad", m.OffsetY, m.Yaw)
}

// Draw renders the overlay at (x, y). Text is recomputed every updateInterval frames.
func (o *Overlay) Draw(x, y int32, m emoji.Motion) {
	if !o.ShowFPS {
		o.fpsText = ""
		return
	}
	o.frameCount++
	if o.fpsText == "" || o.frameCount%updateInterval == 0 {
		o.fpsText, o.motionText = Lines(rl.GetFPS(), m)
	}
	rl.DrawText(o.fpsText, x+padding, y+padding, fontSize, rl.DarkGreen)
	rl.DrawText(o.motionText, x+padding, y+padding+lineHeight, fontSize, rl.DarkGray)
}
