package features

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads a state from a YAML preset file. Fields missing from the file keep
// their defaults; the result is normalized.
func LoadPreset(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("features: read preset: %w", err)
	}
	return DecodePreset(data)
}

// DecodePreset parses YAML preset data on top of Default().
func DecodePreset(data []byte) (State, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("features: parse preset: %w", err)
	}
	return s.Normalize(), nil
}

// SavePreset writes s to path as YAML, creating the parent directory if needed.
func SavePreset(path string, s State) error {
	data, err := yaml.Marshal(s.Normalize())
	if err != nil {
		return fmt.Errorf("features: encode preset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("features: save preset: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("features: save preset: %w", err)
	}
	return nil
}
