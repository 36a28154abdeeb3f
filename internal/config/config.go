package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/emoji.yaml"

// Render modes.
const (
	Mode2D = "2d"
	Mode3D = "3d"
)

// Window holds the host window settings.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Canvas is the pixel size of the 2D drawing surface.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Export controls where the PNG goes and how large the 3D snapshot is.
type Export struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Prefs are application preferences. Feature edits are not stored here; they live only
// in memory unless saved as a preset.
type Prefs struct {
	Window     Window `yaml:"window"`
	Mode       string `yaml:"mode"`
	ShowFPS    bool   `yaml:"show_fps"`
	AutoRotate bool   `yaml:"auto_rotate"`
	Canvas     Canvas `yaml:"canvas"`
	Export     Export `yaml:"export"`
	LogPath    string `yaml:"log_path"`
	// Preset, when set, is a features YAML file loaded at startup.
	Preset string `yaml:"preset,omitempty"`
	// PanelCSS, when set, replaces the built-in control panel stylesheet.
	PanelCSS string `yaml:"panel_css,omitempty"`
}

// Default returns the default preferences (3D mode, 60 FPS, no FPS overlay).
func Default() Prefs {
	return Prefs{
		Window:     Window{Width: 1100, Height: 720, Title: "Emoji Creator", FPS: 60},
		Mode:       Mode3D,
		ShowFPS:    false,
		AutoRotate: false,
		Canvas:     Canvas{Width: 400, Height: 400},
		Export:     Export{Dir: "exports", Name: "my-3d-emoji.png", Size: 512},
		LogPath:    "logs/emoji.txt",
	}
}

// Load reads preferences from path. If the file is missing or invalid, Default() is
// returned and no file is created. Zero or out-of-range values in a valid file are
// replaced by their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.withDefaults(), nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseMode normalizes a mode name.
func ParseMode(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case Mode2D, "canvas":
		return Mode2D, nil
	case Mode3D, "scene":
		return Mode3D, nil
	}
	return "", fmt.Errorf("config: unknown mode %q (want 2d or 3d)", s)
}

// Environment variables read by ApplyEnv.
const (
	EnvMode      = "EMOJI_MODE"
	EnvShowFPS   = "EMOJI_SHOW_FPS"
	EnvExportDir = "EMOJI_EXPORT_DIR"
	EnvLogPath   = "EMOJI_LOG_PATH"
	EnvPreset    = "EMOJI_PRESET"
	EnvPanelCSS  = "EMOJI_PANEL_CSS"
)

// ApplyEnv overrides p with the EMOJI_* variables found by lookup (usually os.LookupEnv).
// Invalid values are ignored.
func ApplyEnv(p Prefs, lookup func(string) (string, bool)) Prefs {
	if v, ok := lookup(EnvMode); ok {
		if m, err := ParseMode(v); err == nil {
			p.Mode = m
		}
	}
	if v, ok := lookup(EnvShowFPS); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.ShowFPS = b
		}
	}
	if v, ok := lookup(EnvExportDir); ok && v != "" {
		p.Export.Dir = v
	}
	if v, ok := lookup(EnvLogPath); ok && v != "" {
		p.LogPath = v
	}
	if v, ok := lookup(EnvPreset); ok {
		p.Preset = v
	}
	if v, ok := lookup(EnvPanelCSS); ok {
		p.PanelCSS = v
	}
	return p
}

func (p Prefs) withDefaults() Prefs {
	d := Default()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		p.Window.Width, p.Window.Height = d.Window.Width, d.Window.Height
	}
	if p.Window.Title == "" {
		p.Window.Title = d.Window.Title
	}
	if p.Window.FPS <= 0 {
		p.Window.FPS = d.Window.FPS
	}
	if m, err := ParseMode(p.Mode); err == nil {
		p.Mode = m
	} else {
		p.Mode = d.Mode
	}
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		p.Canvas = d.Canvas
	}
	if p.Export.Dir == "" {
		p.Export.Dir = d.Export.Dir
	}
	if p.Export.Name == "" {
		p.Export.Name = d.Export.Name
	}
	if p.Export.Size < 0 {
		p.Export.Size = d.Export.Size
	}
	if p.LogPath == "" {
		p.LogPath = d.LogPath
	}
	return p
}
