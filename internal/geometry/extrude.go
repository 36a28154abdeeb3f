package geometry

import (
	"sync"

	"github.com/chewxy/math32"
)

// Mesh is an indexed triangle mesh. Positions and Normals are flat xyz triples, one per
// vertex; Indices holds three entries per triangle, counter-clockwise when seen from
// outside.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) [3]float32 {
	return [3]float32{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]int {
	return [3]int{int(m.Indices[3*t]), int(m.Indices[3*t+1]), int(m.Indices[3*t+2])}
}

func (m *Mesh) add(p, n [3]float32) uint16 {
	i := uint16(m.VertexCount())
	m.Positions = append(m.Positions, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
	return i
}

func (m *Mesh) tri(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// Extrude sweeps o along Z into a slab of the given depth centered on z=0, without
// bevel. Curves are flattened with curveSteps pieces each. Caps are triangulated as a
// fan around the vertex centroid, so the outline must be star-shaped with respect to
// that point (true for every outline in this package). Side walls get flat normals.
func Extrude(o Outline, depth float32, curveSteps int) *Mesh {
	ring := openRing(o.Flatten(curveSteps))
	m := &Mesh{}
	if len(ring) < 3 {
		return m
	}
	if SignedArea(ring) < 0 {
		rev := make([]Point, len(ring))
		for i, p := range ring {
			rev[len(ring)-1-i] = p
		}
		ring = rev
	}
	var cx, cy float32
	for _, p := range ring {
		cx += p.X
		cy += p.Y
	}
	cx /= float32(len(ring))
	cy /= float32(len(ring))

	front, back := depth/2, -depth/2
	n := len(ring)

	// front cap, facing +Z
	fc := m.add([3]float32{cx, cy, front}, [3]float32{0, 0, 1})
	fs := uint16(m.VertexCount())
	for _, p := range ring {
		m.add([3]float32{p.X, p.Y, front}, [3]float32{0, 0, 1})
	}
	for i := 0; i < n; i++ {
		m.tri(fc, fs+uint16(i), fs+uint16((i+1)%n))
	}

	// back cap, facing -Z: same fan, reversed winding
	bc := m.add([3]float32{cx, cy, back}, [3]float32{0, 0, -1})
	bs := uint16(m.VertexCount())
	for _, p := range ring {
		m.add([3]float32{p.X, p.Y, back}, [3]float32{0, 0, -1})
	}
	for i := 0; i < n; i++ {
		m.tri(bc, bs+uint16((i+1)%n), bs+uint16(i))
	}

	// side walls, one quad per edge
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math32.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// outward normal of a CCW ring is the edge direction rotated clockwise
		nrm := [3]float32{dy / l, -dx / l, 0}
		v0 := m.add([3]float32{a.X, a.Y, back}, nrm)
		v1 := m.add([3]float32{b.X, b.Y, back}, nrm)
		v2 := m.add([3]float32{b.X, b.Y, front}, nrm)
		v3 := m.add([3]float32{a.X, a.Y, front}, nrm)
		m.tri(v0, v1, v2)
		m.tri(v0, v2, v3)
	}
	return m
}

// Fixed parameters of the shared slabs.
const (
	SlabDepth       = 0.1
	StarPoints      = 5
	StarOuterRadius = 1
	StarInnerRadius = 0.5
	HeartCurveSteps = 12
	HalfDiscRadius  = 1
	HalfDiscSteps   = 24
)

var shared struct {
	once     sync.Once
	star     *Mesh
	heart    *Mesh
	halfDisc *Mesh
}

func buildShared() {
	shared.star = Extrude(Star(StarPoints, StarOuterRadius, StarInnerRadius), SlabDepth, 1)
	shared.heart = Extrude(Heart(DefaultHeart), SlabDepth, HeartCurveSteps)
	shared.halfDisc = Extrude(Sector(HalfDiscRadius, math32.Pi, HalfDiscSteps), SlabDepth, 1)
}

// StarSlab returns the extruded five-point star (outer radius 1, inner 0.5). The mesh
// is built on first use and shared; callers must not modify it.
func StarSlab() *Mesh {
	shared.once.Do(buildShared)
	return shared.star
}

// HeartSlab returns the extruded DefaultHeart. Shared; do not modify.
func HeartSlab() *Mesh {
	shared.once.Do(buildShared)
	return shared.heart
}

// HalfDiscSlab returns an extruded unit half-disc, flat side on the X axis, round side
// up. Shared; do not modify.
func HalfDiscSlab() *Mesh {
	shared.once.Do(buildShared)
	return shared.halfDisc
}
