package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/commands"
	"emoji-creator/internal/config"
	"emoji-creator/internal/debug"
	"emoji-creator/internal/emoji"
	"emoji-creator/internal/export"
	"emoji-creator/internal/scene"
	"emoji-creator/internal/studio"
	"emoji-creator/internal/terminal"
	"emoji-creator/internal/ui"
)

const defaultExportSize = 512

// minRenderSize bounds the 3D render texture from below for small windows.
const minRenderSize = 256

// app wires the studio to the window: control panel and console in, views and overlays out.
type app struct {
	st      *studio.Studio
	term    *terminal.Terminal
	panel   *ui.ControlPanel
	view3d  *scene.View3D
	view2d  *scene.View2D
	overlay *debug.Overlay
	motion  emoji.Motion
}

func newApp(st *studio.Studio) *app {
	prefs := st.Prefs()
	reg := commands.NewRegistry()
	st.RegisterCommands(reg)

	size := prefs.Export.Size
	if size <= 0 {
		size = defaultExportSize
	}
	// the viewport is as tall as the window, so render at window height and let the
	// snapshot scale to the export size
	renderSize := max(prefs.Window.Height, minRenderSize)
	engine := ui.New()
	if prefs.PanelCSS != "" {
		if err := engine.LoadCSS(prefs.PanelCSS); err != nil {
			st.Log().Logf("panel css: %v, keeping the built-in sheet", err)
		} else {
			st.Log().Logf("panel css loaded from %s", prefs.PanelCSS)
		}
	}
	overlay := debug.New()
	return &app{
		st:      st,
		term:    terminal.New(st.Log(), reg),
		panel:   ui.NewControlPanel(engine),
		view3d:  scene.NewView3D(int32(renderSize), size, prefs.AutoRotate),
		view2d:  scene.NewView2D(prefs.Canvas.Width, prefs.Canvas.Height),
		overlay: overlay,
	}
}

func (a *app) setup() {
	a.st.Log().Logf("ready: %s (ESC opens the console, try: cmd help)", a.st)
}

func (a *app) update() {
	a.term.Update()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if action, ok := a.panel.Click(m.X, m.Y); ok {
			a.handle(action)
		}
	}
	if a.st.Mode() == config.Mode3D {
		a.view3d.Update()
	}
	a.panel.Sync(a.st.State(), a.st.Mode())
	a.overlay.ShowFPS = a.st.ShowFPS()
}

func (a *app) handle(action ui.Action) {
	switch action.Kind {
	case ui.ActionUpdate:
		// failures are logged by the studio
		_ = a.st.Apply(action.Update)
	case ui.ActionMode:
		_ = a.st.SetMode(action.Mode)
	case ui.ActionExport:
		a.st.RequestExport("")
	}
}

// view renders the active view for this frame and returns it.
func (a *app) view() scene.View {
	if a.st.Mode() == config.Mode2D {
		a.motion = emoji.Motion{}
		if err := a.view2d.Render(a.st.State(), a.st.Version()); err != nil {
			a.st.Log().Log(err.Error())
		}
		return a.view2d
	}
	frame := a.st.Frame(a.st.Clock())
	a.motion = frame.Motion
	a.view3d.Render(frame)
	return a.view3d
}

func (a *app) draw() {
	v := a.view()
	for {
		req, ok := a.st.TakeExport()
		if !ok {
			break
		}
		a.st.Exported(export.Save(v, req.Dir, req.Name))
	}

	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	a.panel.Layout(screenW, screenH)
	viewport := rl.Rectangle{Width: a.panel.Bounds().X, Height: float32(screenH)}
	rl.DrawRectangleRec(viewport, scene.Background)
	v.Draw(viewport)

	a.panel.Draw()
	a.overlay.Draw(0, 0, a.motion)
	a.term.Draw()
}

func (a *app) teardown() {
	a.view3d.Close()
	if err := a.view2d.Close(); err != nil {
		a.st.Log().Log(err.Error())
	}
}
