package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
)

// tickSeconds is the fixed step of one Update.
const tickSeconds = 1.0 / float64(ebiten.DefaultTPS)

type ClockSystem struct {
	now func() time.Time
}

func NewClockSystem(now func() time.Time) *ClockSystem {
	if now == nil {
		now = time.Now
	}
	return &ClockSystem{now: now}
}

func (c *ClockSystem) Update(w *ecs.World) {
	clock, ok := ecs.Single(w, component.ClockComponent.Kind())
	if !ok {
		return
	}
	clock.Tick++
	clock.Elapsed += tickSeconds
	clock.Now = c.now()
}

func elapsed(w *ecs.World) float64 {
	clock, ok := ecs.Single(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Elapsed
}

func pointer(w *ecs.World) (float64, float64) {
	ps, ok := ecs.Single(w, component.PointerStateComponent.Kind())
	if !ok {
		return 0, 0
	}
	return ps.Pointer.X, ps.Pointer.Y
}

func globalProgress(w *ecs.World) float64 {
	ps, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return 0
	}
	return ps.Sample.Progress
}
