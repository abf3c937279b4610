package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/ecs/system"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const inspectorBarWidth = 20

// Inspector is a debug overlay listing the page scroll sample and the live
// band values of every scroll-banded object.
type Inspector struct {
	UI *ebitenui.UI

	face   ebtext.Face
	panel  *widget.Container
	header *widget.Text
	rows   map[ecs.Entity]*widget.Text
	order  []ecs.Entity
}

func NewInspector() *Inspector {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 200})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	in := &Inspector{face: face, rows: map[ecs.Entity]*widget.Text{}}
	in.header = in.newRow(color.NRGBA{R: 0x66, G: 0x99, B: 0xff, A: 0xff})

	in.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	in.panel.AddChild(in.header)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(in.panel)

	in.UI = &ebitenui.UI{Container: root}
	return in
}

func (in *Inspector) newRow(clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text("", &in.face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)
}

// Reset drops every row, for after the world is rebuilt.
func (in *Inspector) Reset() {
	for _, e := range in.order {
		in.panel.RemoveChild(in.rows[e])
	}
	in.rows = map[ecs.Entity]*widget.Text{}
	in.order = nil
}

// Refresh rewrites the rows from the current world.
func (in *Inspector) Refresh(w *ecs.World) {
	in.header.Label = inspectorHeader(w)

	ecs.ForEach2(w, component.ScrollBandComponent.Kind(), component.VisualComponent.Kind(), func(e ecs.Entity, band *component.ScrollBand, v *component.Visual) {
		row, ok := in.rows[e]
		if !ok {
			row = in.newRow(color.White)
			in.rows[e] = row
			in.order = append(in.order, e)
			in.panel.AddChild(row)
		}
		row.Label = bandRow(system.EntityLabel(w, e), band, v)
	})
}

func inspectorHeader(w *ecs.World) string {
	state, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return "no page"
	}
	s := state.Sample
	header := fmt.Sprintf("scroll %.3f %s  %.2f px/ms  offset %.0f/%.0f  entities %d",
		s.Progress, s.Direction, s.Velocity, s.Offset, state.Scroller.Max(), len(ecs.Entities(w)))
	if morph, ok := ecs.Single(w, component.MorphComponent.Kind()); ok {
		header += fmt.Sprintf("\nphase %s %.2f", morph.Step.Phase.Name, morph.Step.Progress)
	}
	return header
}

func bandRow(name string, band *component.ScrollBand, v *component.Visual) string {
	filled := int(common.Lerp(0, inspectorBarWidth, float32(v.Progress)))
	bar := strings.Repeat("#", filled) + strings.Repeat(".", inspectorBarWidth-filled)
	state := "hidden"
	if v.Visible {
		state = "visible"
	}
	return fmt.Sprintf("%-16s [%.2f,%.2f] %s p=%.2f s=%.2f o=%.2f %s",
		name, band.Band.Range.Start, band.Band.Range.End, bar, v.Progress, v.Scale, v.Opacity, state)
}
