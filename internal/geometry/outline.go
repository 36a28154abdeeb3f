// Package geometry builds the procedural outlines used for eye and mouth shapes (star,
// heart, circular sector) and extrudes them into thin slabs. Every builder is a pure
// function of its parameters; the slabs the emoji needs are built once and shared.
package geometry

import (
	"github.com/chewxy/math32"
)

// Point is a 2D outline coordinate, Y up.
type Point struct {
	X, Y float32
}

// Op is a path operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
	Close
)

// Segment is one path operation. LineTo and MoveTo use Pts[0]; CubicTo uses Pts[0] and
// Pts[1] as control points and Pts[2] as the end point. Close uses none.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// End returns the point the segment finishes on.
func (s Segment) End() Point {
	if s.Op == CubicTo {
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Outline is a single closed 2D path.
type Outline struct {
	Segments []Segment
}

// Vertices returns the anchor points of the outline: the MoveTo point followed by the
// end point of every LineTo and CubicTo. Control points are not included and the
// implicit closing edge adds nothing.
func (o Outline) Vertices() []Point {
	var out []Point
	for _, s := range o.Segments {
		if s.Op == Close {
			continue
		}
		out = append(out, s.End())
	}
	return out
}

// Flatten returns the outline as a polyline. Each cubic is replaced by steps straight
// pieces (steps < 1 is treated as 1). When the path is closed the result ends on its
// first point.
func (o Outline) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	var out []Point
	var start, cur Point
	for _, s := range o.Segments {
		switch s.Op {
		case MoveTo:
			start, cur = s.Pts[0], s.Pts[0]
			out = append(out, cur)
		case LineTo:
			cur = s.Pts[0]
			out = append(out, cur)
		case CubicTo:
			for i := 1; i <= steps; i++ {
				out = append(out, cubicAt(cur, s.Pts[0], s.Pts[1], s.Pts[2], float32(i)/float32(steps)))
			}
			// land exactly on the anchor, not on the rounded evaluation
			out[len(out)-1] = s.Pts[2]
			cur = s.Pts[2]
		case Close:
			if len(out) > 0 && out[len(out)-1] != start {
				out = append(out, start)
			}
			cur = start
		}
	}
	return out
}

// Closed reports whether the outline ends with a Close segment.
func (o Outline) Closed() bool {
	n := len(o.Segments)
	return n > 0 && o.Segments[n-1].Op == Close
}

func cubicAt(p0, p1, p2, p3 Point, t float32) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Star returns a closed star polygon with 2*points vertices alternating between the
// outer and inner radius. Vertex 0 sits at angle 0 (on +X) and vertices proceed
// counter-clockwise in equal angular steps.
func Star(points int, outer, inner float32) Outline {
	if points < 2 {
		points = 2
	}
	n := 2 * points
	step := 2 * math32.Pi / float32(n)
	segs := make([]Segment, 0, n+1)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float32(i) * step
		p := Point{X: r * math32.Cos(a), Y: r * math32.Sin(a)}
		op := LineTo
		if i == 0 {
			op = MoveTo
		}
		segs = append(segs, Segment{Op: op, Pts: [3]Point{p}})
	}
	segs = append(segs, Segment{Op: Close})
	return Outline{Segments: segs}
}

// HeartCurve holds the control coordinates of the left half of a heart. The right half
// mirrors it across the Y axis.
type HeartCurve struct {
	Cusp Point // bottom point, where the path starts and ends
	C1   Point // first control point of the left lobe
	C2   Point // second control point of the left lobe
	Top  Point // where the two halves meet
}

// DefaultHeart is the curve used for heart eyes.
var DefaultHeart = HeartCurve{
	Cusp: Point{0, 0},
	C1:   Point{-0.5, 0.5},
	C2:   Point{-1, 0.8},
	Top:  Point{0, 1.5},
}

// Heart returns a closed path of two symmetric cubic Béziers: from the cusp up to the
// top through the left controls, then back down to the cusp through their mirror images.
func Heart(h HeartCurve) Outline {
	mirror := func(p Point) Point { return Point{X: -p.X, Y: p.Y} }
	return Outline{Segments: []Segment{
		{Op: MoveTo, Pts: [3]Point{h.Cusp}},
		{Op: CubicTo, Pts: [3]Point{h.C1, h.C2, h.Top}},
		{Op: CubicTo, Pts: [3]Point{mirror(h.C2), mirror(h.C1), h.Cusp}},
		{Op: Close},
	}}
}

// Sector returns a circular sector (pie slice) of the given radius spanning arc radians,
// starting at angle 0 and running counter-clockwise, with the center as first vertex.
// The curved edge is approximated by segments straight pieces. Sector(r, π, n) is a
// half-disc with its flat side on the X axis.
func Sector(radius, arc float32, segments int) Outline {
	if segments < 1 {
		segments = 1
	}
	segs := make([]Segment, 0, segments+3)
	segs = append(segs, Segment{Op: MoveTo, Pts: [3]Point{{0, 0}}})
	for i := 0; i <= segments; i++ {
		a := arc * float32(i) / float32(segments)
		segs = append(segs, Segment{Op: LineTo, Pts: [3]Point{{radius * math32.Cos(a), radius * math32.Sin(a)}}})
	}
	segs = append(segs, Segment{Op: Close})
	return Outline{Segments: segs}
}

// SignedArea returns the shoelace area of a closed polyline; positive when the points
// run counter-clockwise.
func SignedArea(pts []Point) float32 {
	pts = openRing(pts)
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// openRing drops the repeated closing point, if present.
func openRing(pts []Point) []Point {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}
