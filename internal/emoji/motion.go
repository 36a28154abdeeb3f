package emoji

import (
	"github.com/chewxy/math32"

	"emoji-creator/internal/features"
	"emoji-creator/internal/shape"
)

const (
	BounceAmplitude = 0.1
	BounceRate      = 2   // rad/s
	YawRate         = 0.1 // rad/s
)

// Motion is the whole-emoji transform for one frame.
type Motion struct {
	OffsetY float32
	Yaw     float32
}

// Advance returns the motion at t seconds since the scene started. The bounce is
// evaluated from t directly, never accumulated, so it is exactly periodic and a paused
// clock resumes where it left off. When bouncing is false the offset is exactly 0.
func Advance(t float64, bouncing bool) Motion {
	m := Motion{Yaw: float32(YawRate * t)}
	if bouncing {
		m.OffsetY = BounceAmplitude * math32.Sin(float32(BounceRate*t))
	}
	return m
}

// Transform returns m as a shape transform.
func (m Motion) Transform() shape.Transform {
	return shape.At(0, m.OffsetY, 0).Rotated(0, m.Yaw, 0)
}

// Frame is everything a host needs to draw one 3D frame.
type Frame struct {
	Motion Motion
	// Root is a group carrying Motion whose only child is the emoji tree.
	Root *shape.Node
}

// Render builds the frame for s at t seconds.
func Render(s features.State, t float64) Frame {
	m := Advance(t, s.Bouncing)
	root := &shape.Node{Name: NameAnimation, Kind: shape.Group, Transform: m.Transform()}
	root.Add(Build(s))
	return Frame{Motion: m, Root: root}
}

// Builder caches the tree for the last state it saw, so hosts re-render every frame
// without rebuilding an unchanged tree.
type Builder struct {
	state features.State
	tree  *shape.Node
}

// Frame returns the frame for s at t, rebuilding the tree only when s changed.
func (b *Builder) Frame(s features.State, t float64) Frame {
	if b.tree == nil || !b.state.Equal(s) {
		b.state = s
		b.tree = Build(s)
	}
	m := Advance(t, s.Bouncing)
	root := &shape.Node{Name: NameAnimation, Kind: shape.Group, Transform: m.Transform()}
	root.Add(b.tree)
	return Frame{Motion: m, Root: root}
}
