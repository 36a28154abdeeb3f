package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "emoji.txt")
	l := New(path)
	l.now = fixedClock

	l.Log("eyeStyle=star")
	l.Logf("exported %s", "a.png")

	assert.Equal(t, []string{
		"[2026-10-18 12:00:00] eyeStyle=star",
		"[2026-10-18 12:00:00] exported a.png",
	}, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2026-10-18 12:00:00] eyeStyle=star\n[2026-10-18 12:00:00] exported a.png\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestHistoryIsBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Log("x")
	}
	assert.Len(t, l.Lines(), maxLines)
}

func TestSlog(t *testing.T) {
	l := New("")
	l.now = fixedClock
	log := l.Slog(slog.LevelInfo)
	log.Debug("hidden")
	log.Info("export", "path", "exports/a.png")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], `level=INFO msg=export path=exports/a.png`), lines[0])
	assert.NotContains(t, lines[0], "time=")
}
