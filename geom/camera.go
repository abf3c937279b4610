package geom

import "math"

// Camera is a perspective camera looking down -Z.
type Camera struct {
	Position Vec3
	FOV      float64 // vertical, degrees
	Near     float64
	FogNear  float64
	FogFar   float64
}

func DefaultCamera() Camera {
	return Camera{
		Position: V(0, 0, 10),
		FOV:      75,
		Near:     0.1,
		FogNear:  10,
		FogFar:   30,
	}
}

// Focal returns the pixel distance to the image plane for a viewport height.
func (c Camera) Focal(viewportHeight float64) float64 {
	fov := c.FOV
	if fov <= 0 || fov >= 180 {
		fov = 75
	}
	return (viewportHeight / 2) / math.Tan(fov*math.Pi/360)
}

// Projected is a point on screen.
type Projected struct {
	X, Y  float64
	Depth float64
	// PixelsPerUnit converts a world length at this depth into pixels.
	PixelsPerUnit float64
}

// Project maps a world point into screen pixels. ok is false behind the near
// plane.
func (c Camera) Project(p Vec3, width, height float64) (Projected, bool) {
	rel := p.Sub(c.Position)
	depth := -rel.Z
	near := c.Near
	if near <= 0 {
		near = 0.1
	}
	if depth <= near {
		return Projected{}, false
	}
	ppu := c.Focal(height) / depth
	return Projected{
		X:             width/2 + rel.X*ppu,
		Y:             height/2 - rel.Y*ppu,
		Depth:         depth,
		PixelsPerUnit: ppu,
	}, true
}

// Fog returns how much of a color survives at depth: 1 up to FogNear, falling
// linearly to 0 at FogFar.
func (c Camera) Fog(depth float64) float64 {
	if c.FogFar <= c.FogNear {
		return 1
	}
	if depth <= c.FogNear {
		return 1
	}
	if depth >= c.FogFar {
		return 0
	}
	return (c.FogFar - depth) / (c.FogFar - c.FogNear)
}
