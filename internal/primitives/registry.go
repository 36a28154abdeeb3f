package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/geometry"
	"emoji-creator/internal/shape"
)

// Mesh resolution for the generated GPU meshes.
const (
	sphereRings  = 32
	sphereSlices = 32
	roundSlices  = 32
)

// cached holds a unit mesh and its lit material. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry draws shape trees. GPU meshes are unit sized and created on first use, after
// the window and OpenGL context exist; node sizes are folded into the model matrix.
// Rings and extruded slabs are drawn as CPU-shaded triangles.
type Registry struct {
	cache   map[shape.Kind]cached
	tori    map[[2]float32]*geometry.Mesh
	viewPos shape.Vec3
	light   Light
}

// NewRegistry returns an empty registry lit by DefaultLight.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[shape.Kind]cached),
		tori:  make(map[[2]float32]*geometry.Mesh),
		light: DefaultLight,
	}
}

// SetView sets the camera position for this frame. Call before Draw.
func (r *Registry) SetView(viewPos shape.Vec3) {
	r.viewPos = viewPos
}

// BaseTransforms returns the transforms, innermost last, that turn the unit mesh used
// for n's kind into n's geometry in n's local space. Raylib cylinders and cones stand
// on y=0, so they are centered first; discs are then turned to face +Z.
func BaseTransforms(n *shape.Node) []shape.Transform {
	center := shape.At(0, -0.5, 0)
	switch n.Kind {
	case shape.Sphere:
		return []shape.Transform{shape.Identity.Scaled(n.Radius)}
	case shape.Disc:
		size := shape.Transform{Scale: shape.Vec3{n.Radius, n.Thickness, n.Radius}}.Rotated(math32.Pi/2, 0, 0)
		return []shape.Transform{size, center}
	case shape.Box:
		return []shape.Transform{{Scale: n.Size}}
	case shape.Cone:
		return []shape.Transform{{Scale: shape.Vec3{n.Radius, n.Height, n.Radius}}, center}
	}
	return nil
}

func (r *Registry) ensure(k shape.Kind) (cached, bool) {
	if c, ok := r.cache[k]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch k {
	case shape.Sphere:
		mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	case shape.Disc:
		mesh = rl.GenMeshCylinder(1, 1, roundSlices)
	case shape.Box:
		mesh = rl.GenMeshCube(1, 1, 1)
	case shape.Cone:
		mesh = rl.GenMeshCone(1, 1, roundSlices)
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[k] = c
	return c, true
}

func (r *Registry) torus(radius, tube float32) *geometry.Mesh {
	key := [2]float32{radius, tube}
	m, ok := r.tori[key]
	if !ok {
		m = geometry.Torus(radius, tube, geometry.TorusSegments, geometry.TorusSides)
		r.tori[key] = m
	}
	return m
}

// Draw draws the tree rooted at root. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(root *shape.Node) {
	shape.Walk(root, func(n *shape.Node, chain shape.Chain) {
		switch n.Kind {
		case shape.Group:
		case shape.Ring:
			r.drawTriangles(r.torus(n.Radius, n.Thickness), chain, n.Material)
		case shape.Extruded:
			if n.Mesh != nil {
				r.drawTriangles(n.Mesh, chain, n.Material)
			}
		default:
			r.drawMesh(n, chain)
		}
	})
}

func (r *Registry) drawMesh(n *shape.Node, chain shape.Chain) {
	c, ok := r.ensure(n.Kind)
	if !ok {
		return
	}
	full := make(shape.Chain, 0, len(chain)+2)
	full = append(append(full, chain...), BaseTransforms(n)...)

	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = n.Material.Color
	}
	r.setLitShaderUniforms(c.mtl.Shader, n.Material)
	rl.DrawMesh(c.mesh, c.mtl, ModelMatrix(full))
}

// drawTriangles draws m with one shaded color per triangle, transformed on the CPU.
func (r *Registry) drawTriangles(m *geometry.Mesh, chain shape.Chain, mat shape.Material) {
	for t := 0; t < m.TriangleCount(); t++ {
		idx := m.Triangle(t)
		var pts [3]rl.Vector3
		var n shape.Vec3
		for i, vi := range idx {
			p := chain.Apply(m.Vertex(vi))
			pts[i] = rl.NewVector3(p[0], p[1], p[2])
			vn := Direction(chain, m.Normal(vi))
			n = shape.Vec3{n[0] + vn[0], n[1] + vn[1], n[2] + vn[2]}
		}
		center := shape.Vec3{
			(pts[0].X + pts[1].X + pts[2].X) / 3,
			(pts[0].Y + pts[1].Y + pts[2].Y) / 3,
			(pts[0].Z + pts[1].Z + pts[2].Z) / 3,
		}
		col := Shade(mat.Color, n, sub(r.viewPos, center), r.light, mat)
		rl.DrawTriangle3D(pts[0], pts[1], pts[2], col)
	}
}

// setLitShaderUniforms sets the light, the camera and the material's specular terms
// (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader, m shape.Material) {
	if !rl.IsShaderValid(shader) {
		return
	}
	power, strength := Specular(m)
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.light.Dir[0], r.light.Dir[1], r.light.Dir[2]}
	amb := [4]float32{r.light.Ambient[0], r.light.Ambient[1], r.light.Ambient[2], 1}
	lightColor := [3]float32{r.light.Color[0], r.light.Color[1], r.light.Color[2]}
	set := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, typ, 1)
		}
	}
	set("viewPos", viewPos[:], rl.ShaderUniformVec3)
	set("lightDir", lightDir[:], rl.ShaderUniformVec3)
	set("ambient", amb[:], rl.ShaderUniformVec4)
	set("lightColor", lightColor[:], rl.ShaderUniformVec3)
	set("lightIntensity", []float32{r.light.Intensity}, rl.ShaderUniformFloat)
	set("specularPower", []float32{power}, rl.ShaderUniformFloat)
	set("specularStrength", []float32{strength}, rl.ShaderUniformFloat)
	set("metalness", []float32{clamp01(m.Metalness)}, rl.ShaderUniformFloat)
}

// Unload frees the GPU meshes and shaders. Call before closing the window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, k)
	}
}

