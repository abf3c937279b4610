package geom

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp blends v toward o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Rotate applies Euler angles in XYZ order: Z first, then Y, then X, so the
// result equals Rx·Ry·Rz·v.
func (v Vec3) Rotate(euler Vec3) Vec3 {
	out := v
	if euler.Z != 0 {
		s, c := math.Sincos(euler.Z)
		out = Vec3{out.X*c - out.Y*s, out.X*s + out.Y*c, out.Z}
	}
	if euler.Y != 0 {
		s, c := math.Sincos(euler.Y)
		out = Vec3{out.X*c + out.Z*s, out.Y, -out.X*s + out.Z*c}
	}
	if euler.X != 0 {
		s, c := math.Sincos(euler.X)
		out = Vec3{out.X, out.Y*c - out.Z*s, out.Y*s + out.Z*c}
	}
	return out
}

// Pose places local geometry in its parent's space.
type Pose struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
}

// Identity is the pose that leaves points unchanged.
func Identity() Pose {
	return Pose{Scale: 1}
}

// Apply scales, rotates then translates p.
func (p Pose) Apply(v Vec3) Vec3 {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return v.Scale(s).Rotate(p.Rotation).Add(p.Position)
}
