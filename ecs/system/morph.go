package system

import (
	"math"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
)

// MorphSystem blends particle clouds between formations along their scroll
// timeline.
type MorphSystem struct{}

func NewMorphSystem() *MorphSystem {
	return &MorphSystem{}
}

func (m *MorphSystem) Update(w *ecs.World) {
	global := globalProgress(w)
	t := elapsed(w)

	ecs.ForEach2(w, component.MorphComponent.Kind(), component.ParticleCloudComponent.Kind(), func(e ecs.Entity, morph *component.Morph, cloud *component.ParticleCloud) {
		step := morph.Timeline.At(global)
		morph.Step = step

		from := morph.Formations[step.Phase.From]
		to := morph.Formations[step.Phase.To]
		if len(from) < len(cloud.Positions) || len(to) < len(cloud.Positions) {
			return
		}

		for i := range cloud.Positions {
			p := from[i].Lerp(to[i], step.Eased)
			p.Y += math.Sin(t+float64(i)*0.1) * morph.Bob
			cloud.Positions[i] = p
		}

		if step.Transition {
			cloud.Opacity = morph.TransitionOpacity + math.Sin(t*2)*morph.Flicker
		} else {
			cloud.Opacity = morph.Opacity
		}
	})
}
