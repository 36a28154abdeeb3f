package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"emoji-creator/internal/canvas2d"
	"emoji-creator/internal/config"
	"emoji-creator/internal/env"
	"emoji-creator/internal/export"
	"emoji-creator/internal/graphics"
	"emoji-creator/internal/logger"
	"emoji-creator/internal/studio"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML preferences file")
	mode := flag.String("mode", "", "start in 2d or 3d (overrides the config)")
	preset := flag.String("preset", "", "features YAML file to start from (overrides the config)")
	render := flag.String("render", "", "draw the 2D emoji into this PNG file and exit without opening a window")
	flag.Parse()

	// a broken .env is reported but not fatal
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	prefs, _ := config.Load(*configPath)
	prefs = config.ApplyEnv(prefs, os.LookupEnv)
	if *mode != "" {
		m, err := config.ParseMode(*mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		prefs.Mode = m
	}
	if *preset != "" {
		prefs.Preset = *preset
	}

	log := logger.New(prefs.LogPath)
	gg.SetLogger(log.Slog(slog.LevelWarn))

	st := studio.New(prefs, log)
	st.SetConfigPath(*configPath)
	if prefs.Preset != "" {
		// a broken preset is logged and the defaults stay
		_ = st.LoadPreset(prefs.Preset)
	}

	if *render != "" {
		path, err := renderPNG(st, prefs.Canvas, *render)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	app := newApp(st)
	graphics.Run(prefs.Window, app.setup, app.update, app.draw, app.teardown)
}

// renderPNG draws the current state on a fresh 2D canvas and saves it to out.
func renderPNG(st *studio.Studio, size config.Canvas, out string) (string, error) {
	surface := canvas2d.NewSurface(size.Width, size.Height)
	defer surface.Close()
	if err := canvas2d.Draw(surface, st.State()); err != nil {
		return "", err
	}
	path, err := export.Save(surface, filepath.Dir(out), filepath.Base(out))
	st.Exported(path, err)
	return path, err
}
