package studio

import (
	"path/filepath"
	"testing"
	"time"

	"emoji-creator/internal/commands"
	"emoji-creator/internal/config"
	"emoji-creator/internal/emoji"
	"emoji-creator/internal/features"
	"emoji-creator/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudio() *Studio {
	return New(config.Default(), logger.New(""))
}

func run(t *testing.T, reg *commands.Registry, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	require.True(t, ok, line)
	return reg.Execute(args)
}

func TestApplyReplacesStateAndBumpsVersion(t *testing.T) {
	s := newStudio()
	before := s.State()

	require.NoError(t, s.Apply(features.Update{Field: features.FieldEyeStyle, Value: "star"}))
	assert.Equal(t, features.EyeStar, s.State().EyeStyle)
	assert.Equal(t, uint64(1), s.Version())
	assert.Equal(t, features.EyeNormal, before.EyeStyle)

	// same value again: no change, no new version
	require.NoError(t, s.Apply(features.Update{Field: features.FieldEyeStyle, Value: "star"}))
	assert.Equal(t, uint64(1), s.Version())

	assert.Error(t, s.Apply(features.Update{Field: "nose", Value: "big"}))
	assert.Equal(t, uint64(1), s.Version())
	assert.Contains(t, s.Log().Lines()[len(s.Log().Lines())-1], "edit nose=big failed")
}

func TestReset(t *testing.T) {
	s := newStudio()
	require.NoError(t, s.Apply(features.Update{Field: features.FieldAccessory, Value: "hat"}))
	s.Reset()
	assert.True(t, s.State().Equal(features.Default()))
	assert.Equal(t, uint64(2), s.Version())
}

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "cool.yaml")
	s := newStudio()
	require.NoError(t, s.Apply(features.Update{Field: features.FieldColor, Value: "#00ff00"}))
	require.NoError(t, s.Apply(features.Update{Field: features.FieldAccessory, Value: "glasses"}))
	require.NoError(t, s.SavePreset(path))
	saved := s.State()

	s.Reset()
	require.NoError(t, s.LoadPreset(path))
	assert.True(t, s.State().Equal(saved))

	assert.Error(t, s.LoadPreset(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestExportQueue(t *testing.T) {
	s := newStudio()
	_, ok := s.TakeExport()
	assert.False(t, ok)

	s.RequestExport("")
	s.RequestExport("b.png")
	r, ok := s.TakeExport()
	require.True(t, ok)
	assert.Equal(t, ExportRequest{Dir: "exports", Name: "my-3d-emoji.png"}, r)
	r, _ = s.TakeExport()
	assert.Equal(t, "b.png", r.Name)
	_, ok = s.TakeExport()
	assert.False(t, ok)
}

func TestFrameFollowsState(t *testing.T) {
	s := newStudio()
	f := s.Frame(0.5)
	assert.InDelta(t, 0.1*0.8414709848, f.Motion.OffsetY, 1e-6)
	require.NotNil(t, f.Root.Find(emoji.NameBody))
	assert.Nil(t, f.Root.Find(emoji.NameHat))

	require.NoError(t, s.Apply(features.Update{Field: features.FieldAccessory, Value: "hat"}))
	require.NoError(t, s.Apply(features.Update{Field: features.FieldBouncing, Value: "off"}))
	f = s.Frame(0.5)
	assert.NotNil(t, f.Root.Find(emoji.NameHat))
	assert.Zero(t, f.Motion.OffsetY)
}

func TestClock(t *testing.T) {
	s := newStudio()
	base := s.start
	s.now = func() time.Time { return base.Add(1500 * time.Millisecond) }
	assert.InDelta(t, 1.5, s.Clock(), 1e-9)
}

func TestConsoleCommands(t *testing.T) {
	s := newStudio()
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	require.NoError(t, run(t, reg, "cmd set eyeStyle heart"))
	require.NoError(t, run(t, reg, "cmd set color gold"))
	require.NoError(t, run(t, reg, "cmd toggle glasses"))
	require.NoError(t, run(t, reg, "cmd toggle metallic"))
	require.NoError(t, run(t, reg, "cmd set eyeSize 99"))

	st := s.State()
	assert.Equal(t, features.EyeHeart, st.EyeStyle)
	assert.Equal(t, "#FFD700", st.Color)
	assert.True(t, st.Has(features.Glasses))
	assert.True(t, st.Metallic)
	assert.Equal(t, features.MaxEyeSize, st.EyeSize)

	assert.Error(t, run(t, reg, "cmd set eyeStyle"))
	assert.Error(t, run(t, reg, "cmd set eyeStyle laser"))
	assert.Error(t, run(t, reg, "cmd toggle"))

	require.NoError(t, run(t, reg, "cmd reset"))
	assert.True(t, s.State().Equal(features.Default()))
}

func TestConsolePresetAndExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	s := newStudio()
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	require.NoError(t, run(t, reg, "cmd set mouthStyle sad"))
	require.NoError(t, run(t, reg, "cmd preset -save "+path))
	require.NoError(t, run(t, reg, "cmd reset"))
	require.NoError(t, run(t, reg, "cmd preset -load "+path))
	assert.Equal(t, features.MouthSad, s.State().MouthStyle)
	assert.Error(t, run(t, reg, "cmd preset"))

	require.NoError(t, run(t, reg, "cmd export -o face.png"))
	require.NoError(t, run(t, reg, "cmd export"))
	r, _ := s.TakeExport()
	assert.Equal(t, "face.png", r.Name)
	r, _ = s.TakeExport()
	assert.Equal(t, "my-3d-emoji.png", r.Name)
}

func TestConsoleModeAndFPS(t *testing.T) {
	s := newStudio()
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	require.NoError(t, run(t, reg, "cmd mode canvas"))
	assert.Equal(t, config.Mode2D, s.Mode())
	assert.Error(t, run(t, reg, "cmd mode 4d"))
	assert.ErrorContains(t, run(t, reg, "cmd mode"), "mode is 2d")

	require.NoError(t, run(t, reg, "cmd fps"))
	assert.True(t, s.ShowFPS())
	require.NoError(t, run(t, reg, "cmd fps off"))
	assert.False(t, s.ShowFPS())
	assert.Error(t, run(t, reg, "cmd fps maybe"))

	require.NoError(t, run(t, reg, "cmd help"))
	assert.Contains(t, s.Log().Lines()[len(s.Log().Lines())-1], "toggle:")
}

func TestConsolePrefsSave(t *testing.T) {
	s := newStudio()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "emoji.yaml")
	s.SetConfigPath(cfg)
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)

	require.NoError(t, run(t, reg, "cmd mode 2d"))
	require.NoError(t, run(t, reg, "cmd fps on"))
	require.NoError(t, run(t, reg, "cmd prefs -save"))

	saved, err := config.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.Mode2D, saved.Mode)
	assert.True(t, saved.ShowFPS)
	assert.Equal(t, config.Default().Export, saved.Export)

	other := filepath.Join(dir, "sub", "other.yaml")
	require.NoError(t, run(t, reg, "cmd prefs -save -o "+other))
	saved, err = config.Load(other)
	require.NoError(t, err)
	assert.Equal(t, config.Mode2D, saved.Mode)

	// without -save the next call only reports
	require.NoError(t, run(t, reg, "cmd prefs"))
	assert.Contains(t, s.Log().Lines()[len(s.Log().Lines())-1], "mode=2d show_fps=true")
}
