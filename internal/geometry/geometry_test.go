package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestStarVertices(t *testing.T) {
	v := Star(5, 1, 0.5).Vertices()
	require.Len(t, v, 10)

	assert.InDelta(t, 1, v[0].X, tol)
	assert.InDelta(t, 0, v[0].Y, tol)
	for i, p := range v {
		want := 1.0
		if i%2 == 1 {
			want = 0.5
		}
		r := math.Hypot(float64(p.X), float64(p.Y))
		assert.InDelta(t, want, r, tol, "vertex %d radius", i)

		a := math.Atan2(float64(p.Y), float64(p.X))
		if a < 0 {
			a += 2 * math.Pi
		}
		assert.InDelta(t, float64(i)*math.Pi/5, a, 1e-4, "vertex %d angle", i)
	}
}

func TestStarClosedAndCounterClockwise(t *testing.T) {
	o := Star(5, 1, 0.5)
	assert.True(t, o.Closed())
	flat := o.Flatten(1)
	require.Len(t, flat, 11)
	assert.Equal(t, flat[0], flat[len(flat)-1])
	assert.Greater(t, SignedArea(flat), float32(0))
}

func TestHeartStartsAndEndsAtCusp(t *testing.T) {
	o := Heart(DefaultHeart)
	assert.True(t, o.Closed())

	v := o.Vertices()
	assert.Equal(t, []Point{{0, 0}, {0, 1.5}, {0, 0}}, v)

	for _, steps := range []int{1, 4, 12} {
		flat := o.Flatten(steps)
		require.Len(t, flat, 1+2*steps)
		assert.Equal(t, Point{0, 0}, flat[0])
		assert.Equal(t, Point{0, 0}, flat[len(flat)-1])
		assert.Equal(t, Point{0, 1.5}, flat[steps])
	}
}

func TestHeartIsSymmetric(t *testing.T) {
	flat := Heart(DefaultHeart).Flatten(8)
	n := len(flat) - 1
	for i := 0; i <= n; i++ {
		a, b := flat[i], flat[n-i]
		assert.InDelta(t, a.X, -b.X, tol)
		assert.InDelta(t, a.Y, b.Y, tol)
	}
}

func TestSector(t *testing.T) {
	o := Sector(1, math.Pi, 4)
	v := o.Vertices()
	require.Len(t, v, 6)
	assert.Equal(t, Point{0, 0}, v[0])
	assert.InDelta(t, 1, v[1].X, tol)
	assert.InDelta(t, -1, v[5].X, tol)
	assert.InDelta(t, 0, v[5].Y, tol)
	for _, p := range v {
		assert.GreaterOrEqual(t, p.Y, float32(-tol))
	}
}

func TestExtrude(t *testing.T) {
	m := Extrude(Star(5, 1, 0.5), 0.1, 1)
	// caps: center + 10 rim each; sides: 4 per edge
	assert.Equal(t, 2*11+4*10, m.VertexCount())
	assert.Equal(t, 2*10+2*10, m.TriangleCount())
	assert.Len(t, m.Normals, len(m.Positions))

	for i := 0; i < m.VertexCount(); i++ {
		z := m.Vertex(i)[2]
		assert.True(t, z == 0.05 || z == -0.05, "vertex %d z=%v", i, z)
	}
	for tr := 0; tr < m.TriangleCount(); tr++ {
		for _, idx := range m.Triangle(tr) {
			assert.Less(t, idx, m.VertexCount())
		}
	}
}

func TestExtrudeWindingMatchesNormals(t *testing.T) {
	for name, m := range map[string]*Mesh{
		"star":  Extrude(Star(5, 1, 0.5), 0.1, 1),
		"heart": Extrude(Heart(DefaultHeart), 0.1, 12),
		"half":  Extrude(Sector(1, math.Pi, 12), 0.1, 1),
		"torus": Torus(0.15, 0.02, TorusSegments, TorusSides),
	} {
		for tr := 0; tr < m.TriangleCount(); tr++ {
			idx := m.Triangle(tr)
			a, b, c := m.Vertex(idx[0]), m.Vertex(idx[1]), m.Vertex(idx[2])
			u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
			v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
			cross := [3]float32{u[1]*v[2] - u[2]*v[1], u[2]*v[0] - u[0]*v[2], u[0]*v[1] - u[1]*v[0]}
			n := m.Normal(idx[0])
			dot := cross[0]*n[0] + cross[1]*n[1] + cross[2]*n[2]
			assert.GreaterOrEqual(t, dot, float32(-1e-6), "%s triangle %d faces inward", name, tr)
		}
	}
}

func TestSharedSlabsAreBuiltOnce(t *testing.T) {
	assert.Same(t, StarSlab(), StarSlab())
	assert.Same(t, HeartSlab(), HeartSlab())
	assert.Same(t, HalfDiscSlab(), HalfDiscSlab())
	assert.NotZero(t, HeartSlab().TriangleCount())
}

func TestBuildersAreDeterministic(t *testing.T) {
	assert.Equal(t, Star(5, 1, 0.5), Star(5, 1, 0.5))
	assert.Equal(t, Heart(DefaultHeart), Heart(DefaultHeart))
	assert.Equal(t, Extrude(Heart(DefaultHeart), 0.1, 6), Extrude(Heart(DefaultHeart), 0.1, 6))
}

func TestTorus(t *testing.T) {
	m := Torus(1, 0.25, 8, 4)
	assert.Equal(t, 32, m.VertexCount())
	assert.Equal(t, 64, m.TriangleCount())
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Vertex(i)
		// distance from the center circle is the tube radius
		ring := float32(math.Hypot(float64(p[0]), float64(p[1]))) - 1
		assert.InDelta(t, 0.25, math.Hypot(float64(ring), float64(p[2])), tol)
	}
	assert.Zero(t, Torus(1, 0.25, 2, 4).VertexCount())
}
