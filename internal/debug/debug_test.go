package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emoji-creator/internal/emoji"
)

func TestLines(t *testing.T) {
	fps, motion := Lines(60, emoji.Motion{OffsetY: 0.05, Yaw: 1.234})
	assert.Equal(t, "FPS: 60", fps)
	assert.Equal(t, "bounce +0.050  yaw 1.23 rad", motion)

	_, still := Lines(60, emoji.Motion{})
	assert.Equal(t, "bounce +0.000  yaw 0.00 rad", still)
}
