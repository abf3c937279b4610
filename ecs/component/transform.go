package component

import "github.com/milk9111/folio/geom"

// Transform places an entity in its parent's space (world space when it has
// no Parent). Rotation is Euler XYZ in radians.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Vec3
	Scale    float64
}

func (t *Transform) Pose() geom.Pose {
	if t == nil {
		return geom.Identity()
	}
	return geom.Pose{Position: t.Position, Rotation: t.Rotation, Scale: t.Scale}
}

var TransformComponent = NewComponent[Transform]()
