// Package emoji maps a feature state to a 3D shape tree and computes the per-frame
// motion. Both are pure: the same input always produces an equal tree.
package emoji

import (
	"image/color"

	"github.com/chewxy/math32"

	"emoji-creator/internal/features"
	"emoji-creator/internal/geometry"
	"emoji-creator/internal/shape"
)

// Layout constants, in body radii. Eyes and glasses float just in front of the body so
// flat parts are not clipped by the sphere; the mouth is seated on it (see onFace).
const (
	BodyRadius = 1

	EyeX     = 0.3
	EyeY     = 0.2
	EyeDepth = 1.0

	MouthScale   = 0.3
	SmileMouthY  = -0.25
	FrownMouthY  = -0.45
	GlassesDepth = 1.04
	HatY         = 1.05
)

var black = color.RGBA{A: 255}

// Node names, for hosts and tests that look parts up.
const (
	NameRoot      = "emoji"
	NameBody      = "body"
	NameLeftEye   = "eye-left"
	NameRightEye  = "eye-right"
	NameMouth     = "mouth"
	NameHat       = "hat"
	NameGlasses   = "glasses"
	NameAnimation = "motion"
)

// Build returns the shape tree for s. Eyes sit at (∓EyeX, EyeY, EyeDepth) on the front
// of the unit body sphere, facing +Z.
func Build(s features.State) *shape.Node {
	root := &shape.Node{Name: NameRoot, Kind: shape.Group, Transform: shape.Identity}
	root.Add(body(s))
	root.Add(eyes(s.EyeStyle)...)
	root.Add(mouth(s.MouthStyle))

	accessory := features.MustColor(s.AccessoryColor)
	// accessories are kept in canonical order, so the tree is stable for equal sets
	for _, a := range s.Accessories {
		switch a {
		case features.Hat:
			root.Add(hat(accessory))
		case features.Glasses:
			root.Add(glasses(accessory))
		}
	}
	return root
}

func body(s features.State) *shape.Node {
	m := shape.Material{Color: features.MustColor(s.Color), Metalness: 0, Roughness: 0.8}
	if s.Metallic {
		m.Metalness, m.Roughness = 0.8, 0.2
	}
	return &shape.Node{Name: NameBody, Kind: shape.Sphere, Radius: BodyRadius, Transform: shape.Identity, Material: m}
}

// eyes returns the left and right eye. wink always closes the right eye.
func eyes(style features.EyeStyle) []*shape.Node {
	left := eye(style, NameLeftEye, -EyeX)
	right := eye(style, NameRightEye, EyeX)
	if style == features.EyeWink {
		left = openEye(NameLeftEye, -EyeX, 0.1, 0.05)
		right = eye(features.EyeClosed, NameRightEye, EyeX)
	}
	return []*shape.Node{left, right}
}

// eye builds one eye. Styles without a 3D rendering of their own, including the 2D-only
// happy, fall through to the normal disc.
func eye(style features.EyeStyle, name string, x float32) *shape.Node {
	at := shape.At(x, EyeY, EyeDepth)
	switch style {
	case features.EyeStar:
		return &shape.Node{Name: name, Kind: shape.Extruded, Mesh: geometry.StarSlab(), Transform: at.Scaled(0.15), Material: shape.Matte(black)}
	case features.EyeHeart:
		// the heart outline grows up from its cusp; turn it over and center it on the eye
		at.Position[1] += 0.09
		return &shape.Node{Name: name, Kind: shape.Extruded, Mesh: geometry.HeartSlab(), Transform: at.Scaled(0.12).Rotated(0, 0, math32.Pi), Material: shape.Matte(black)}
	case features.EyeClosed:
		return &shape.Node{Name: name, Kind: shape.Box, Size: shape.Vec3{0.2, 0.03, 0.02}, Transform: at, Material: shape.Matte(black)}
	case features.EyeSurprised:
		return openEye(name, x, 0.15, 0.08)
	default:
		return &shape.Node{Name: name, Kind: shape.Disc, Radius: 0.1, Thickness: 0.02, Transform: at, Material: shape.Matte(black)}
	}
}

// openEye is a ring with a pupil disc inside.
func openEye(name string, x, ring, pupil float32) *shape.Node {
	n := &shape.Node{Name: name, Kind: shape.Group, Transform: shape.At(x, EyeY, EyeDepth)}
	return n.Add(
		&shape.Node{Name: name + "-ring", Kind: shape.Ring, Radius: ring, Thickness: 0.02, Transform: shape.Identity, Material: shape.Matte(black)},
		&shape.Node{Name: name + "-pupil", Kind: shape.Disc, Radius: pupil, Thickness: 0.02, Transform: shape.Identity, Material: shape.Matte(black)},
	)
}

// mouth is a half-disc; smiling mouths are flipped so the round side points down.
func mouth(style features.MouthStyle) *shape.Node {
	t := onFace(FrownMouthY, 1)
	if style.Smiling() {
		t = onFace(SmileMouthY, -1)
		t.Rotation[2] = math32.Pi
	}
	return &shape.Node{Name: NameMouth, Kind: shape.Extruded, Mesh: geometry.HalfDiscSlab(), Transform: t, Material: shape.Matte(black)}
}

// onFace places the mouth slab with its flat edge at height edgeY and its round side
// growing up (dir 1) or down (dir -1). The slab is tilted to the body normal at its
// middle, and that middle sits on the body surface.
func onFace(edgeY, dir float32) shape.Transform {
	half := float32(MouthScale) / 2
	tilt := math32.Asin(-(edgeY + dir*half) / BodyRadius)
	sin, cos := math32.Sincos(tilt)
	midY := edgeY + dir*half*cos
	midZ := math32.Sqrt(BodyRadius*BodyRadius - midY*midY)
	return shape.At(0, edgeY, midZ-dir*half*sin).Scaled(MouthScale).Rotated(dir*tilt, 0, 0)
}

func hat(c color.RGBA) *shape.Node {
	return &shape.Node{
		Name:      NameHat,
		Kind:      shape.Cone,
		Radius:    0.5,
		Height:    0.5,
		Transform: shape.At(0, HatY, 0).Rotated(-0.5, 0, 0),
		Material:  shape.Matte(c),
	}
}

func glasses(c color.RGBA) *shape.Node {
	m := shape.Matte(c)
	n := &shape.Node{Name: NameGlasses, Kind: shape.Group, Transform: shape.At(0, EyeY, GlassesDepth)}
	return n.Add(
		&shape.Node{Name: NameGlasses + "-left", Kind: shape.Ring, Radius: 0.15, Thickness: 0.02, Transform: shape.At(-EyeX, 0, 0), Material: m},
		&shape.Node{Name: NameGlasses + "-right", Kind: shape.Ring, Radius: 0.15, Thickness: 0.02, Transform: shape.At(EyeX, 0, 0), Material: m},
		&shape.Node{Name: NameGlasses + "-bridge", Kind: shape.Box, Size: shape.Vec3{0.3, 0.02, 0.02}, Transform: shape.Identity, Material: m},
	)
}
