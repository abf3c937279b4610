package system

import (
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
)

// PointerTiltSystem turns an entity toward the pointer: yaw follows X and
// pitch follows Y, both around the pose it was built with.
type PointerTiltSystem struct{}

func NewPointerTiltSystem() *PointerTiltSystem {
	return &PointerTiltSystem{}
}

func (p *PointerTiltSystem) Update(w *ecs.World) {
	px, py := pointer(w)

	ecs.ForEach2(w, component.PointerTiltComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tilt *component.PointerTilt, transform *component.Transform) {
		transform.Rotation = tilt.BaseRotation.Add(geom.Vec3{X: py * tilt.Pitch, Y: px * tilt.Yaw})
		transform.Position = tilt.BasePosition.Add(tilt.Shift.Mul(geom.Vec3{X: px, Y: py}))
	})
}
