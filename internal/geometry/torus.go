package geometry

import "github.com/chewxy/math32"

// Default torus resolution: segments along the center circle and around the tube.
const (
	TorusSegments = 32
	TorusSides    = 16
)

// Torus returns a closed torus in the XY plane (axis +Z) with the given center-line
// radius and tube radius. Vertices on the seams are shared.
func Torus(radius, tube float32, segments, sides int) *Mesh {
	m := &Mesh{}
	if segments < 3 || sides < 3 {
		return m
	}
	for i := 0; i < segments; i++ {
		su, cu := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		for j := 0; j < sides; j++ {
			sv, cv := math32.Sincos(2 * math32.Pi * float32(j) / float32(sides))
			r := radius + tube*cv
			m.add([3]float32{r * cu, r * su, tube * sv}, [3]float32{cv * cu, cv * su, sv})
		}
	}
	at := func(i, j int) uint16 {
		return uint16((i%segments)*sides + j%sides)
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < sides; j++ {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			m.tri(a, b, c)
			m.tri(a, c, d)
		}
	}
	return m
}
