package system

import (
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
)

type SpinSystem struct{}

func NewSpinSystem() *SpinSystem {
	return &SpinSystem{}
}

func (s *SpinSystem) Update(w *ecs.World) {
	graph := newSceneGraph(w)
	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, spin *component.Spin, transform *component.Transform) {
		rate := spin.Rate
		if spin.HoverRate > 0 && graph.hovered(e) {
			rate = rate.Scale(spin.HoverRate)
		}
		transform.Rotation = transform.Rotation.Add(rate.Scale(tickSeconds))
	})
}
