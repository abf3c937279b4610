package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	pageMargin      = 48.0
	titleScale      = 3.0
	lineHeight      = 18.0
	toastTicks      = 120
	indicatorWidth  = 4.0
	indicatorMargin = 8.0
)

// PageSystem draws the document over the scene: one panel per section, a
// scroll indicator, the hovered project label and a toast after copying the
// contact address.
type PageSystem struct {
	face ebtext.Face

	toast      string
	toastLeft  int
	hoverLabel string
}

func NewPageSystem() *PageSystem {
	return &PageSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (p *PageSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventContactCopied:
			p.toast = fmt.Sprintf("Copied %v to the clipboard", evt.Data)
			p.toastLeft = toastTicks
		case ecs.EventHoverEnter:
			if h, ok := evt.Data.(ecs.HoverEvent); ok {
				p.hoverLabel = h.Name
			}
		case ecs.EventHoverLeave:
			p.hoverLabel = ""
		}
	}
	if p.toastLeft > 0 {
		p.toastLeft--
	}
}

func (p *PageSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	page, ok := ecs.Single(w, component.PageComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return
	}

	b := screen.Bounds()
	vw, vh := float64(b.Dx()), float64(b.Dy())
	offset := state.Sample.Offset
	textColor := colorOr(page.TextColor, colornames.Darkslategray)
	accent := colorOr(page.Accent, colornames.Royalblue)

	for i, sec := range page.Sections {
		top := SectionTop(page.Sections, i, vh) - offset
		height := sectionHeight(sec) * vh
		if top+height < 0 || top > vh {
			continue
		}

		blockH := lineHeight*titleScale + lineHeight*float64(len(sec.Body)+1)
		y := top + (height-blockH)/2
		if page.PanelColor != nil {
			vector.FillRect(screen, float32(pageMargin-16), float32(y-16), float32(vw*0.45), float32(blockH+32), page.PanelColor, false)
		}

		p.drawText(screen, sec.Title, pageMargin, y, titleScale, accent)
		y += lineHeight*titleScale + lineHeight
		for _, line := range sec.Body {
			p.drawText(screen, line, pageMargin, y, 1, textColor)
			y += lineHeight
		}
	}

	p.drawIndicator(screen, state, vw, vh, accent)

	if p.hoverLabel != "" {
		if ptr, ok := ecs.Single(w, component.PointerStateComponent.Kind()); ok {
			p.drawText(screen, p.hoverLabel, ptr.ScreenX+16, ptr.ScreenY+8, 1, accent)
		}
	}
	if p.toastLeft > 0 {
		p.drawText(screen, p.toast, pageMargin, vh-pageMargin, 1, textColor)
	}
}

func (p *PageSystem) drawIndicator(screen *ebiten.Image, state *component.PageState, vw, vh float64, clr color.Color) {
	if state.ContentHeight <= vh || vh <= 0 {
		return
	}
	x := float32(vw - indicatorMargin - indicatorWidth)
	track := vh - 2*indicatorMargin
	thumb := track * vh / state.ContentHeight
	y := indicatorMargin + (track-thumb)*state.Sample.Progress

	vector.FillRect(screen, x, float32(indicatorMargin), indicatorWidth, float32(track), withAlpha(clr, 0.15), false)
	vector.FillRect(screen, x, float32(y), indicatorWidth, float32(thumb), clr, false)
}

func (p *PageSystem) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, p.face, op)
}

func sectionHeight(sec component.Section) float64 {
	if sec.Height <= 0 {
		return 1
	}
	return sec.Height
}

func colorOr(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
