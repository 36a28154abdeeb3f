package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/config"
)

// minWidth and minHeight keep room for the control panel and a usable viewport.
const (
	minWidth  = 800
	minHeight = 600
)

// Run opens a resizable window and runs the main loop. Each frame it calls update (input,
// state), then clears the screen and calls draw. ESC is left to the console; the window
// closes from its close button. setup runs once after the window exists, teardown
// before it closes; either may be nil.
func Run(win config.Window, setup, update, draw, teardown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(minWidth, minHeight)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.FPS))

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}
