package studio

import (
	"errors"
	"fmt"
	"strings"

	"emoji-creator/internal/commands"
	"emoji-creator/internal/features"
)

// RegisterCommands adds the console commands that drive the studio.
func (s *Studio) RegisterCommands(reg *commands.Registry) {
	reg.Register("set", "set <field> <value>, fields: "+strings.Join(features.Fields(), ", "), nil, func(args []string) error {
		if len(args) < 2 {
			return errors.New("usage: set <field> <value>")
		}
		return s.Apply(features.Update{Field: args[0], Value: strings.Join(args[1:], " ")})
	})

	reg.Register("toggle", "toggle <hat|glasses|metallic|bouncing>", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: toggle <hat|glasses|metallic|bouncing>")
		}
		if _, err := features.ParseAccessory(args[0]); err == nil {
			return s.Apply(features.Update{Field: features.FieldAccessory, Value: args[0]})
		}
		return s.Apply(features.Update{Field: args[0], Value: "toggle"})
	})

	reg.Register("reset", "restore the initial state", nil, func([]string) error {
		s.Reset()
		return nil
	})

	presetFS := commands.NewFlagSet("preset")
	load := presetFS.String("load", "", "read features from a YAML file")
	save := presetFS.String("save", "", "write features to a YAML file")
	reg.Register("preset", "preset -load <file> | -save <file>", presetFS, func([]string) error {
		defer func() { *load, *save = "", "" }()
		switch {
		case *load != "":
			return s.LoadPreset(*load)
		case *save != "":
			return s.SavePreset(*save)
		}
		return errors.New("usage: preset -load <file> | -save <file>")
	})

	exportFS := commands.NewFlagSet("export")
	out := exportFS.String("o", "", "file name inside the export directory")
	reg.Register("export", "export [-o name.png]", exportFS, func([]string) error {
		defer func() { *out = "" }()
		s.RequestExport(*out)
		return nil
	})

	reg.Register("mode", "mode <2d|3d>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("mode is %s", s.Mode())
		}
		return s.SetMode(args[0])
	})

	reg.Register("fps", "fps [on|off]", nil, func(args []string) error {
		on := !s.ShowFPS()
		if len(args) == 1 {
			switch strings.ToLower(args[0]) {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("fps: want on or off, got %q", args[0])
			}
		}
		s.SetShowFPS(on)
		return nil
	})

	prefsFS := commands.NewFlagSet("prefs")
	savePrefs := prefsFS.Bool("save", false, "write preferences to the config file")
	prefsOut := prefsFS.String("o", "", "write to this file instead of the config file")
	reg.Register("prefs", "prefs [-save [-o file]]", prefsFS, func([]string) error {
		defer func() { *savePrefs, *prefsOut = false, "" }()
		if *savePrefs || *prefsOut != "" {
			return s.SavePrefs(*prefsOut)
		}
		p := s.Prefs()
		s.log.Logf("mode=%s show_fps=%t export=%s/%s", p.Mode, p.ShowFPS, p.Export.Dir, p.Export.Name)
		return nil
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}
