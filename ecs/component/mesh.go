package component

import (
	"image/color"

	"github.com/milk9111/folio/geom"
)

// Mesh is a wireframe in local space.
type Mesh struct {
	Shape   string
	Edges   []geom.Edge
	Color   color.Color
	Opacity float64
	Width   float32
}

var MeshComponent = NewComponent[Mesh]()

// ParticleCloud is a point set in local space. Size is the point radius in
// world units.
type ParticleCloud struct {
	Positions []geom.Vec3
	Color     color.Color
	Size      float64
	Opacity   float64
}

var ParticleCloudComponent = NewComponent[ParticleCloud]()
