package system

import (
	"math"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
)

type DriftSystem struct{}

func NewDriftSystem() *DriftSystem {
	return &DriftSystem{}
}

func (d *DriftSystem) Update(w *ecs.World) {
	t := elapsed(w)

	ecs.ForEach2(w, component.DriftComponent.Kind(), component.ParticleCloudComponent.Kind(), func(e ecs.Entity, drift *component.Drift, cloud *component.ParticleCloud) {
		if len(drift.Rest) != len(cloud.Positions) {
			drift.Rest = append([]geom.Vec3(nil), cloud.Positions...)
		}
		speed := drift.Speed
		if speed <= 0 {
			speed = 1
		}
		phase := t * speed
		for i, rest := range drift.Rest {
			fi := float64(i)
			cloud.Positions[i] = rest.Add(geom.Vec3{
				X: math.Sin(phase+fi) * drift.Amplitude.X,
				Y: math.Cos(phase+fi*0.7) * drift.Amplitude.Y,
				Z: math.Sin(phase*0.5+fi*1.3) * drift.Amplitude.Z,
			})
		}
	})
}
