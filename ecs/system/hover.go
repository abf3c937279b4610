package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/scroll"
)

// HoverTarget is a hoverable entity's footprint on screen.
type HoverTarget struct {
	Entity ecs.Entity
	X, Y   float64
	Radius float64
}

// PickHover returns the target under (x, y). Targets become static circles in
// a throwaway chipmunk space; the one the point is deepest inside wins.
func PickHover(targets []HoverTarget, x, y float64) (ecs.Entity, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	space := cp.NewSpace()
	for _, t := range targets {
		if t.Radius <= 0 {
			continue
		}
		shape := cp.NewCircle(space.StaticBody, t.Radius, cp.Vector{X: t.X, Y: t.Y})
		shape.UserData = t.Entity
		space.AddShape(shape)
	}

	info := space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := info.Shape.UserData.(ecs.Entity)
	return e, ok
}

// HoverSystem tracks which hoverable mesh is under the pointer and eases each
// one's scale toward its hover or rest size.
type HoverSystem struct {
	hovered ecs.Entity
}

func NewHoverSystem() *HoverSystem {
	return &HoverSystem{}
}

func (h *HoverSystem) Update(w *ecs.World) {
	page, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Single(w, component.PointerStateComponent.Kind())
	if !ok {
		return
	}

	cam := sceneCamera(w).View
	graph := newSceneGraph(w)

	var targets []HoverTarget
	ecs.ForEach(w, component.HoverableComponent.Kind(), func(e ecs.Entity, hover *component.Hoverable) {
		if _, visible := graph.appearance(e, 1); !visible {
			return
		}
		chain := graph.chain(e)
		center := toWorld(chain, geom.Vec3{})
		proj, ok := cam.Project(center, page.ViewportWidth, page.ViewportHeight)
		if !ok {
			return
		}
		targets = append(targets, HoverTarget{
			Entity: e,
			X:      proj.X,
			Y:      proj.Y,
			Radius: hover.Radius * chainScale(chain) * proj.PixelsPerUnit,
		})
	})

	picked, _ := PickHover(targets, ptr.ScreenX, ptr.ScreenY)
	if picked != h.hovered {
		if h.hovered.Valid() && ecs.IsAlive(w, h.hovered) {
			w.Events().Push(ecs.Event{Type: ecs.EventHoverLeave, Data: ecs.HoverEvent{Entity: h.hovered, Name: hoverLabel(w, h.hovered)}})
		}
		if picked.Valid() {
			w.Events().Push(ecs.Event{Type: ecs.EventHoverEnter, Data: ecs.HoverEvent{Entity: picked, Name: hoverLabel(w, picked)}})
		}
		h.hovered = picked
	}

	ecs.ForEach(w, component.HoverableComponent.Kind(), func(e ecs.Entity, hover *component.Hoverable) {
		hover.Hovered = e == picked
		target := 1.0
		if hover.Hovered {
			target = hover.HoverScale
		}
		if hover.Scale == 0 {
			hover.Scale = 1
		}
		hover.Scale = scroll.Approach(hover.Scale, target, hover.Rate)
	})
}

func hoverLabel(w *ecs.World, e ecs.Entity) string {
	if hover, ok := ecs.Get(w, e, component.HoverableComponent.Kind()); ok && hover.Label != "" {
		return hover.Label
	}
	return EntityLabel(w, e)
}
