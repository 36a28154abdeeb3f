// Package shape describes a renderable scene as a tree of tagged primitives. It has no
// rendering dependency: the emoji package builds trees, the primitives package draws them.
package shape

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"emoji-creator/internal/geometry"
)

// Kind tags a node with the primitive it stands for.
type Kind int

const (
	Group    Kind = iota // no geometry, only children
	Sphere               // Radius
	Disc                 // flat cylinder facing +Z: Radius, Thickness
	Ring                 // torus facing +Z: Radius (center line), Thickness (tube radius)
	Box                  // Size
	Cone                 // apex up (+Y): Radius, Height
	Extruded             // Mesh
)

var kindNames = []string{"group", "sphere", "disc", "ring", "box", "cone", "extruded"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Vec3 is an xyz triple.
type Vec3 = [3]float32

// Transform places a node relative to its parent: scale, then rotate (Euler XYZ,
// radians), then translate. A zero Scale component is treated as 1.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity is the transform that changes nothing.
var Identity = Transform{Scale: Vec3{1, 1, 1}}

// At returns an unscaled, unrotated transform at p.
func At(x, y, z float32) Transform {
	return Transform{Position: Vec3{x, y, z}, Scale: Vec3{1, 1, 1}}
}

// Rotated returns t with rotation r.
func (t Transform) Rotated(x, y, z float32) Transform {
	t.Rotation = Vec3{x, y, z}
	return t
}

// Scaled returns t with a uniform scale s.
func (t Transform) Scaled(s float32) Transform {
	t.Scale = Vec3{s, s, s}
	return t
}

// EffectiveScale returns Scale with zero components replaced by 1.
func (t Transform) EffectiveScale() Vec3 {
	s := t.Scale
	for i := range s {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	return s
}

// Apply maps p from the node's local space into its parent's space.
func (t Transform) Apply(p Vec3) Vec3 {
	s := t.EffectiveScale()
	p = Vec3{p[0] * s[0], p[1] * s[1], p[2] * s[2]}
	p = rotateX(p, t.Rotation[0])
	p = rotateY(p, t.Rotation[1])
	p = rotateZ(p, t.Rotation[2])
	return Vec3{p[0] + t.Position[0], p[1] + t.Position[1], p[2] + t.Position[2]}
}

func rotateX(p Vec3, a float32) Vec3 {
	if a == 0 {
		return p
	}
	s, c := math32.Sincos(a)
	return Vec3{p[0], c*p[1] - s*p[2], s*p[1] + c*p[2]}
}

func rotateY(p Vec3, a float32) Vec3 {
	if a == 0 {
		return p
	}
	s, c := math32.Sincos(a)
	return Vec3{c*p[0] + s*p[2], p[1], -s*p[0] + c*p[2]}
}

func rotateZ(p Vec3, a float32) Vec3 {
	if a == 0 {
		return p
	}
	s, c := math32.Sincos(a)
	return Vec3{c*p[0] - s*p[1], s*p[0] + c*p[1], p[2]}
}

// Material is a physically based surface description. Metalness and Roughness are in [0, 1].
type Material struct {
	Color     color.RGBA
	Metalness float32
	Roughness float32
}

// Matte returns a non-metallic material of color c.
func Matte(c color.RGBA) Material {
	return Material{Color: c, Roughness: 0.8}
}

// Node is one element of the tree.
type Node struct {
	Name      string
	Kind      Kind
	Transform Transform
	Material  Material

	Radius    float32
	Thickness float32
	Height    float32
	Size      Vec3
	// Mesh is set for Extruded nodes. It is shared and read only.
	Mesh *geometry.Mesh

	Children []*Node
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node named name, depth first, or nil.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Chain is the list of transforms from the root down to a node, root first.
type Chain []Transform

// Apply maps p from the innermost node's local space to the root's parent space.
func (c Chain) Apply(p Vec3) Vec3 {
	for i := len(c) - 1; i >= 0; i-- {
		p = c[i].Apply(p)
	}
	return p
}

// Walk calls fn for n and every descendant, depth first, parents before children. chain
// holds the node's own transform last. fn must not retain chain.
func Walk(n *Node, fn func(n *Node, chain Chain)) {
	walk(n, nil, fn)
}

func walk(n *Node, chain Chain, fn func(*Node, Chain)) {
	if n == nil {
		return
	}
	chain = append(chain, n.Transform)
	fn(n, chain)
	for _, c := range n.Children {
		walk(c, chain, fn)
	}
}

// Count returns the number of nodes of kind k in the tree.
func Count(n *Node, k Kind) int {
	count := 0
	Walk(n, func(n *Node, _ Chain) {
		if n.Kind == k {
			count++
		}
	})
	return count
}
