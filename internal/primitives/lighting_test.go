package primitives

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"emoji-creator/internal/shape"
)

func TestModelMatrixMatchesChain(t *testing.T) {
	chain := shape.Chain{
		shape.At(0, 0.07, 0).Rotated(0, 0.4, 0),
		shape.At(-0.3, 0.2, 1).Rotated(0.3, -0.2, math32.Pi).Scaled(0.12),
		{Position: shape.Vec3{0.1, 0, 0}, Scale: shape.Vec3{2, 1, 0.5}},
	}
	m := ModelMatrix(chain)
	for _, p := range []shape.Vec3{{0, 0, 0}, {1, 0, 0}, {0.3, -0.7, 0.2}, {-1, 1, 1}} {
		want := chain.Apply(p)
		got := rl.Vector3Transform(rl.NewVector3(p[0], p[1], p[2]), m)
		assert.InDelta(t, want[0], got.X, 1e-5)
		assert.InDelta(t, want[1], got.Y, 1e-5)
		assert.InDelta(t, want[2], got.Z, 1e-5)
	}
}

func TestDiscFacesForward(t *testing.T) {
	n := &shape.Node{Kind: shape.Disc, Radius: 0.1, Thickness: 0.02}
	chain := append(shape.Chain{shape.Identity}, BaseTransforms(n)...)
	// the unit cylinder's axis runs from y=0 to y=1
	bottom := chain.Apply(shape.Vec3{0, 0, 0})
	top := chain.Apply(shape.Vec3{0, 1, 0})
	rim := chain.Apply(shape.Vec3{1, 0.5, 0})
	assert.InDelta(t, -0.01, bottom[2], 1e-6)
	assert.InDelta(t, 0.01, top[2], 1e-6)
	assert.InDelta(t, 0.1, rim[0], 1e-6)
	assert.InDelta(t, 0, rim[2], 1e-6)
}

func TestConeIsCentered(t *testing.T) {
	n := &shape.Node{Kind: shape.Cone, Radius: 0.5, Height: 0.5}
	chain := shape.Chain(BaseTransforms(n))
	assert.InDelta(t, -0.25, chain.Apply(shape.Vec3{0, 0, 0})[1], 1e-6)
	assert.InDelta(t, 0.25, chain.Apply(shape.Vec3{0, 1, 0})[1], 1e-6)
	assert.Nil(t, BaseTransforms(&shape.Node{Kind: shape.Group}))
}

func TestSpecularFollowsMaterial(t *testing.T) {
	matteP, matteS := Specular(shape.Material{Roughness: 0.8})
	metalP, metalS := Specular(shape.Material{Metalness: 0.8, Roughness: 0.2})
	assert.Greater(t, metalP, matteP)
	assert.Greater(t, metalS, matteS)
}

func TestShade(t *testing.T) {
	yellow := color.RGBA{R: 255, G: 229, B: 92, A: 255}
	light := DefaultLight
	matte := shape.Material{Roughness: 0.8}

	lit := Shade(yellow, light.Dir, shape.Vec3{0, 0, 1}, light, matte)
	dark := Shade(yellow, shape.Vec3{-light.Dir[0], -light.Dir[1], -light.Dir[2]}, shape.Vec3{0, 0, 1}, light, matte)
	assert.Greater(t, lit.G, dark.G)
	assert.Equal(t, uint8(255), lit.A)

	// facing away from the light leaves only the ambient term
	assert.InDelta(t, 229*light.Ambient[1], float32(dark.G), 1)
}
