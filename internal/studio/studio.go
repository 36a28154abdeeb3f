// Package studio is the application core: it owns the feature state, the render mode and
// pending exports, and is the single place edits from the panel and the console go through.
package studio

import (
	"fmt"
	"sync"
	"time"

	"emoji-creator/internal/config"
	"emoji-creator/internal/emoji"
	"emoji-creator/internal/features"
	"emoji-creator/internal/logger"
)

// ExportRequest asks the active view to save its surface on the next frame.
type ExportRequest struct {
	Dir  string
	Name string
}

// Studio holds the current State. The State is replaced as a whole on every edit and
// Version increments each time it changes.
type Studio struct {
	mu      sync.Mutex
	state   features.State
	version uint64
	mode    string
	showFPS bool
	exports []ExportRequest
	builder emoji.Builder

	prefs      config.Prefs
	configPath string
	log        *logger.Logger
	start time.Time
	now   func() time.Time
}

// New returns a Studio in the default state using prefs for mode and export settings.
// log may be nil.
func New(prefs config.Prefs, log *logger.Logger) *Studio {
	if log == nil {
		log = logger.New("")
	}
	s := &Studio{
		state:   features.Default(),
		mode:    prefs.Mode,
		showFPS: prefs.ShowFPS,
		prefs:      prefs,
		configPath: config.DefaultPath,
		log:        log,
		now:        time.Now,
	}
	s.start = s.now()
	return s
}

// State returns the current state.
func (s *Studio) State() features.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version returns a counter that changes whenever the state does.
func (s *Studio) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Apply applies one field edit. The edit is logged; on error the state is unchanged.
func (s *Studio) Apply(u features.Update) error {
	s.mu.Lock()
	next, err := s.state.With(u)
	if err == nil {
		s.replace(next)
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Logf("edit %s failed: %v", u, err)
		return err
	}
	s.log.Logf("edit %s", u)
	return nil
}

// Reset returns to the initial state.
func (s *Studio) Reset() {
	s.mu.Lock()
	s.replace(features.Default())
	s.mu.Unlock()
	s.log.Log("reset")
}

// LoadPreset replaces the state with the preset stored at path.
func (s *Studio) LoadPreset(path string) error {
	st, err := features.LoadPreset(path)
	if err != nil {
		s.log.Logf("preset load failed: %v", err)
		return err
	}
	s.mu.Lock()
	s.replace(st)
	s.mu.Unlock()
	s.log.Logf("preset loaded from %s", path)
	return nil
}

// SavePreset writes the current state to path.
func (s *Studio) SavePreset(path string) error {
	if err := features.SavePreset(path, s.State()); err != nil {
		s.log.Logf("preset save failed: %v", err)
		return err
	}
	s.log.Logf("preset saved to %s", path)
	return nil
}

// RequestExport queues an export. Empty name uses the configured name.
func (s *Studio) RequestExport(name string) {
	if name == "" {
		name = s.prefs.Export.Name
	}
	s.mu.Lock()
	s.exports = append(s.exports, ExportRequest{Dir: s.prefs.Export.Dir, Name: name})
	s.mu.Unlock()
}

// TakeExport pops the oldest pending export request.
func (s *Studio) TakeExport() (ExportRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.exports) == 0 {
		return ExportRequest{}, false
	}
	r := s.exports[0]
	s.exports = s.exports[1:]
	return r, true
}

// Exported logs the result of a finished export. An empty path means there was no surface.
func (s *Studio) Exported(path string, err error) {
	switch {
	case err != nil:
		s.log.Logf("export failed: %v", err)
	case path == "":
		s.log.Log("export skipped: no surface")
	default:
		s.log.Logf("exported %s", path)
	}
}

// Mode returns the render mode (config.Mode2D or config.Mode3D).
func (s *Studio) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the render mode.
func (s *Studio) SetMode(mode string) error {
	m, err := config.ParseMode(mode)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	s.log.Logf("mode %s", m)
	return nil
}

// ShowFPS reports whether the FPS overlay is on.
func (s *Studio) ShowFPS() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showFPS
}

// SetShowFPS turns the FPS overlay on or off.
func (s *Studio) SetShowFPS(on bool) {
	s.mu.Lock()
	s.showFPS = on
	s.mu.Unlock()
}

// Prefs returns the preferences the studio was created with, updated with the current
// mode and FPS overlay setting.
func (s *Studio) Prefs() config.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs
	p.Mode, p.ShowFPS = s.mode, s.showFPS
	return p
}

// SetConfigPath sets the file SavePrefs writes to by default.
func (s *Studio) SetConfigPath(path string) {
	s.mu.Lock()
	s.configPath = path
	s.mu.Unlock()
}

// SavePrefs writes the current preferences to path, or to the config path when path
// is empty.
func (s *Studio) SavePrefs(path string) error {
	if path == "" {
		s.mu.Lock()
		path = s.configPath
		s.mu.Unlock()
	}
	if err := config.Save(path, s.Prefs()); err != nil {
		s.log.Logf("prefs save failed: %v", err)
		return err
	}
	s.log.Logf("prefs saved to %s", path)
	return nil
}

// Log returns the studio's logger.
func (s *Studio) Log() *logger.Logger {
	return s.log
}

// Clock returns seconds since the studio started.
func (s *Studio) Clock() float64 {
	return s.now().Sub(s.start).Seconds()
}

// Frame returns the 3D frame for the current state at time t (seconds).
func (s *Studio) Frame(t float64) emoji.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Frame(s.state, t)
}

// replace must be called with mu held.
func (s *Studio) replace(next features.State) {
	if s.state.Equal(next) {
		s.state = next
		return
	}
	s.state = next
	s.version++
}

func (s *Studio) String() string {
	return fmt.Sprintf("mode=%s %s", s.Mode(), s.State())
}
