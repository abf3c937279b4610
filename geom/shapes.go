package geom

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownShape = errors.New("geom: unknown shape")

// Edge is one wireframe segment in local space.
type Edge struct {
	A, B Vec3
}

// ShapeSpec selects a wireframe generator and its dimensions. Unused fields
// are ignored by the chosen shape.
type ShapeSpec struct {
	Kind     string
	Width    float64
	Height   float64
	Depth    float64
	Radius   float64
	Tube     float64
	Segments int
	Rings    int
	Size     int
	Step     float64
}

// BuildShape generates the edges of a named shape.
func BuildShape(s ShapeSpec) ([]Edge, error) {
	switch s.Kind {
	case "box":
		return Box(orOne(s.Width), orOne(s.Height), orOne(s.Depth)), nil
	case "sphere":
		return Sphere(orOne(s.Radius), orInt(s.Segments, 16), orInt(s.Rings, 8)), nil
	case "torus":
		return Torus(orOne(s.Radius), orFloat(s.Tube, 0.25), orInt(s.Segments, 24), orInt(s.Rings, 8)), nil
	case "cone":
		return Cone(orOne(s.Radius), orOne(s.Height), orInt(s.Segments, 3)), nil
	case "tetrahedron":
		return Tetrahedron(orOne(s.Radius)), nil
	case "octahedron":
		return Octahedron(orOne(s.Radius)), nil
	case "grid":
		return Grid(orInt(s.Size, 5), orOne(s.Step)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Kind)
	}
}

func orOne(v float64) float64 { return orFloat(v, 1) }

func orFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Box is an axis-aligned box centered on the origin.
func Box(w, h, d float64) []Edge {
	x, y, z := w/2, h/2, d/2
	c := [8]Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	idx := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	edges := make([]Edge, 0, len(idx))
	for _, p := range idx {
		edges = append(edges, Edge{c[p[0]], c[p[1]]})
	}
	return edges
}

// Sphere draws latitude rings and longitude meridians.
func Sphere(r float64, segments, rings int) []Edge {
	point := func(seg, ring int) Vec3 {
		theta := float64(seg) / float64(segments) * 2 * math.Pi
		phi := float64(ring) / float64(rings) * math.Pi
		return Vec3{
			r * math.Cos(theta) * math.Sin(phi),
			r * math.Cos(phi),
			r * math.Sin(theta) * math.Sin(phi),
		}
	}
	edges := make([]Edge, 0, segments*rings*2)
	for ring := 1; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			edges = append(edges, Edge{point(seg, ring), point(seg+1, ring)})
		}
	}
	for seg := 0; seg < segments; seg++ {
		for ring := 0; ring < rings; ring++ {
			edges = append(edges, Edge{point(seg, ring), point(seg, ring+1)})
		}
	}
	return edges
}

// Torus lies in the XY plane around the Z axis.
func Torus(radius, tube float64, radial, tubular int) []Edge {
	point := func(i, j int) Vec3 {
		u := float64(i) / float64(radial) * 2 * math.Pi
		v := float64(j) / float64(tubular) * 2 * math.Pi
		return Vec3{
			(radius + tube*math.Cos(v)) * math.Cos(u),
			(radius + tube*math.Cos(v)) * math.Sin(u),
			tube * math.Sin(v),
		}
	}
	edges := make([]Edge, 0, radial*tubular*2)
	for i := 0; i < radial; i++ {
		for j := 0; j < tubular; j++ {
			edges = append(edges, Edge{point(i, j), point(i+1, j)})
			edges = append(edges, Edge{point(i, j), point(i, j+1)})
		}
	}
	return edges
}

// Cone has its apex on +Y; three sides make the wireframe triangle.
func Cone(radius, height float64, sides int) []Edge {
	apex := Vec3{0, height / 2, 0}
	base := make([]Vec3, sides)
	for i := range base {
		a := float64(i) / float64(sides) * 2 * math.Pi
		base[i] = Vec3{radius * math.Sin(a), -height / 2, radius * math.Cos(a)}
	}
	edges := make([]Edge, 0, sides*2)
	for i := range base {
		edges = append(edges, Edge{base[i], base[(i+1)%sides]})
		edges = append(edges, Edge{base[i], apex})
	}
	return edges
}

func Tetrahedron(r float64) []Edge {
	s := r / math.Sqrt(3)
	v := [4]Vec3{{s, s, s}, {-s, -s, s}, {-s, s, -s}, {s, -s, -s}}
	return complete(v[:])
}

func Octahedron(r float64) []Edge {
	v := []Vec3{{r, 0, 0}, {-r, 0, 0}, {0, r, 0}, {0, -r, 0}, {0, 0, r}, {0, 0, -r}}
	edges := make([]Edge, 0, 12)
	for i := 0; i < len(v); i++ {
		for j := i + 1; j < len(v); j++ {
			// opposite vertices are not connected
			if v[i].Add(v[j]).Len() < 1e-9 {
				continue
			}
			edges = append(edges, Edge{v[i], v[j]})
		}
	}
	return edges
}

// Grid is a square of lines on the XY plane, size lines either side of 0.
func Grid(size int, step float64) []Edge {
	ext := float64(size) * step
	edges := make([]Edge, 0, (2*size+1)*2)
	for i := -size; i <= size; i++ {
		o := float64(i) * step
		edges = append(edges, Edge{Vec3{-ext, o, 0}, Vec3{ext, o, 0}})
		edges = append(edges, Edge{Vec3{o, -ext, 0}, Vec3{o, ext, 0}})
	}
	return edges
}

func complete(v []Vec3) []Edge {
	edges := make([]Edge, 0, len(v)*(len(v)-1)/2)
	for i := 0; i < len(v); i++ {
		for j := i + 1; j < len(v); j++ {
			edges = append(edges, Edge{v[i], v[j]})
		}
	}
	return edges
}
