package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/scroll"
)

const (
	defaultWheelSpeed = 60.0
	arrowStep         = 40.0
	pageFraction      = 0.9
)

// ScrollSystem turns wheel and key input into the document offset and samples
// the page progress every tick.
type ScrollSystem struct {
	input InputSource
}

func NewScrollSystem(input InputSource) *ScrollSystem {
	return &ScrollSystem{input: inputOrDefault(input)}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	state, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return
	}
	page, ok := ecs.Single(w, component.PageComponent.Kind())
	if !ok {
		return
	}
	if state.Scroller == nil {
		state.Scroller = scroll.NewScroller(0)
	}

	vh := state.ViewportHeight
	state.ContentHeight = ContentHeight(page.Sections, vh)
	state.Scroller.SetBounds(state.ContentHeight, vh)

	speed := page.WheelSpeed
	if speed <= 0 {
		speed = defaultWheelSpeed
	}
	if _, dy := s.input.Wheel(); dy != 0 {
		state.Scroller.ScrollBy(-dy * speed)
	}

	switch {
	case s.input.KeyJustPressed(ebiten.KeyPageDown), s.input.KeyJustPressed(ebiten.KeySpace):
		state.Scroller.ScrollBy(vh * pageFraction)
	case s.input.KeyJustPressed(ebiten.KeyPageUp):
		state.Scroller.ScrollBy(-vh * pageFraction)
	case s.input.KeyJustPressed(ebiten.KeyHome):
		state.Scroller.ScrollTo(0)
	case s.input.KeyJustPressed(ebiten.KeyEnd):
		state.Scroller.ScrollTo(state.Scroller.Max())
	}
	if s.input.KeyPressed(ebiten.KeyArrowDown) {
		state.Scroller.ScrollBy(arrowStep)
	}
	if s.input.KeyPressed(ebiten.KeyArrowUp) {
		state.Scroller.ScrollBy(-arrowStep)
	}

	now := time.Now()
	if clock, ok := ecs.Single(w, component.ClockComponent.Kind()); ok && !clock.Now.IsZero() {
		now = clock.Now
	}
	offset := state.Scroller.Step()
	state.Sample = state.Tracker.Update(offset, state.ContentHeight, vh, now)
}

// ContentHeight is the document height in pixels. A section without a height
// fills one viewport.
func ContentHeight(sections []component.Section, viewportHeight float64) float64 {
	total := 0.0
	for _, sec := range sections {
		total += sectionHeight(sec) * viewportHeight
	}
	return total
}

// SectionTop returns the pixel offset where section i starts.
func SectionTop(sections []component.Section, i int, viewportHeight float64) float64 {
	if i <= 0 {
		return 0
	}
	if i > len(sections) {
		i = len(sections)
	}
	return ContentHeight(sections[:i], viewportHeight)
}
