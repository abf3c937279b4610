package system

import (
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/scroll"
)

type PointerSystem struct {
	input InputSource
}

func NewPointerSystem(input InputSource) *PointerSystem {
	return &PointerSystem{input: inputOrDefault(input)}
}

func (p *PointerSystem) Update(w *ecs.World) {
	state, ok := ecs.Single(w, component.PointerStateComponent.Kind())
	if !ok {
		return
	}
	page, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return
	}

	x, y := p.input.Cursor()
	state.ScreenX = float64(x)
	state.ScreenY = float64(y)
	state.Pointer = scroll.NormalizePointer(state.ScreenX, state.ScreenY, page.ViewportWidth, page.ViewportHeight)
}
