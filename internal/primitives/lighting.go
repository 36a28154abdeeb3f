package primitives

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/shape"
)

// Light is a directional light plus ambient term shared by the GPU shader and the CPU
// shading of triangle meshes.
type Light struct {
	Dir       shape.Vec3 // direction to the light
	Color     shape.Vec3
	Intensity float32
	Ambient   shape.Vec3
}

// DefaultLight comes from above-right and slightly in front.
var DefaultLight = Light{
	Dir:       shape.Vec3{0.5, 1, 0.8},
	Color:     shape.Vec3{1.0, 0.98, 0.95},
	Intensity: 0.8,
	Ambient:   shape.Vec3{0.25, 0.26, 0.3},
}

// Specular returns the Blinn-Phong exponent and strength for m. Smooth surfaces get a
// tight highlight, metallic ones a strong one.
func Specular(m shape.Material) (power, strength float32) {
	power = 4 + 96*(1-clamp01(m.Roughness))
	strength = 0.15 + 0.6*clamp01(m.Metalness)
	return power, strength
}

// Shade returns the lit color of a surface with normal n seen from direction toView.
// Metallic surfaces tint their highlight with the base color and dim their diffuse term.
func Shade(base color.RGBA, n, toView shape.Vec3, light Light, m shape.Material) color.RGBA {
	n, v, l := normalize(n), normalize(toView), normalize(light.Dir)
	albedo := shape.Vec3{float32(base.R) / 255, float32(base.G) / 255, float32(base.B) / 255}
	metal := clamp01(m.Metalness)
	power, strength := Specular(m)

	ndotl := max(dot(n, l), 0)
	h := normalize(shape.Vec3{l[0] + v[0], l[1] + v[1], l[2] + v[2]})
	spec := float32(0)
	if ndotl > 0 {
		spec = math32.Pow(max(dot(n, h), 0), power) * strength
	}

	var out [3]uint8
	for i := range out {
		amb := light.Ambient[i] * albedo[i]
		diffuse := albedo[i] * ndotl * light.Color[i] * light.Intensity * (1 - 0.5*metal)
		specColor := light.Color[i]*(1-metal) + albedo[i]*metal
		out[i] = uint8(clamp01(amb+diffuse+specColor*spec)*255 + 0.5)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: base.A}
}

// ModelMatrix returns the raylib matrix that maps a point the way chain.Apply does.
// Columns are read off the images of the basis vectors, so it matches the shape
// package's rotation order exactly.
func ModelMatrix(chain shape.Chain) rl.Matrix {
	o := chain.Apply(shape.Vec3{})
	x := sub(chain.Apply(shape.Vec3{1, 0, 0}), o)
	y := sub(chain.Apply(shape.Vec3{0, 1, 0}), o)
	z := sub(chain.Apply(shape.Vec3{0, 0, 1}), o)
	return rl.Matrix{
		M0: x[0], M1: x[1], M2: x[2],
		M4: y[0], M5: y[1], M6: y[2],
		M8: z[0], M9: z[1], M10: z[2],
		M12: o[0], M13: o[1], M14: o[2], M15: 1,
	}
}

// Direction maps a direction (not a point) through chain and normalizes it.
func Direction(chain shape.Chain, d shape.Vec3) shape.Vec3 {
	return normalize(sub(chain.Apply(d), chain.Apply(shape.Vec3{})))
}

func sub(a, b shape.Vec3) shape.Vec3 {
	return shape.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b shape.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize(v shape.Vec3) shape.Vec3 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return shape.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
