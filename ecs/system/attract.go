package system

import (
	"math"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/scroll"
)

// AttractSystem pulls each particle a fixed fraction of the way to its target
// every tick. The pointer shifts all targets.
type AttractSystem struct{}

func NewAttractSystem() *AttractSystem {
	return &AttractSystem{}
}

func (a *AttractSystem) Update(w *ecs.World) {
	px, py := pointer(w)
	t := elapsed(w)

	ecs.ForEach2(w, component.AttractComponent.Kind(), component.ParticleCloudComponent.Kind(), func(e ecs.Entity, attract *component.Attract, cloud *component.ParticleCloud) {
		n := min(len(attract.Target), len(cloud.Positions))
		shiftX := px * attract.Pointer.X
		shiftY := py * attract.Pointer.Y

		for i := 0; i < n; i++ {
			target := attract.Target[i]
			p := cloud.Positions[i]
			p.X = scroll.Approach(p.X, target.X+shiftX, attract.Rate)
			p.Y = scroll.Approach(p.Y, target.Y+shiftY, attract.Rate)
			p.Z = scroll.Approach(p.Z, target.Z, attract.Rate)
			p.Y += math.Sin(t+float64(i)*0.1) * attract.Bob
			cloud.Positions[i] = p
		}
	})
}
