package system

import (
	"log"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/scroll"
)

// BandSystem maps the page progress through every entity's scroll band into
// its Visual.
type BandSystem struct {
	Trace bool
}

func NewBandSystem(trace bool) *BandSystem {
	return &BandSystem{Trace: trace}
}

func (b *BandSystem) Update(w *ecs.World) {
	global := globalProgress(w)

	ecs.ForEach(w, component.ScrollBandComponent.Kind(), func(e ecs.Entity, band *component.ScrollBand) {
		v := scroll.Derive(global, band.Band)

		visual, ok := ecs.Get(w, e, component.VisualComponent.Kind())
		if !ok {
			visual = &component.Visual{}
			if err := ecs.Add(w, e, component.VisualComponent.Kind(), visual); err != nil {
				log.Printf("band: add visual to %s: %v", e, err)
				return
			}
		}
		visual.Normalized = v.Normalized
		visual.Progress = v.Progress
		visual.Scale = v.Scale
		visual.Opacity = v.Opacity
		visual.Visible = v.Visible

		if b.Trace {
			log.Printf("band: %s scroll=%.3f normalized=%.3f progress=%.3f scale=%.3f opacity=%.3f",
				EntityLabel(w, e), global, v.Normalized, v.Progress, v.Scale, v.Opacity)
		}
	})
}

// EntityLabel is the entity's Name, or its handle when it has none.
func EntityLabel(w *ecs.World, e ecs.Entity) string {
	if name, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && name.Value != "" {
		return name.Value
	}
	return e.String()
}
