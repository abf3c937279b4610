package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/prefabs"
	"github.com/milk9111/folio/scroll"
	"golang.org/x/image/colornames"
)

const DefaultScene = "scene.yaml"

// BuildScene fills w from a scene spec: the camera, the page singletons and
// every listed entity prefab.
func BuildScene(w *ecs.World, sceneName string) (*prefabs.SceneSpec, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}
	if sceneName == "" {
		sceneName = DefaultScene
	}

	spec, err := prefabs.LoadSceneSpec(sceneName)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	if _, err := BuildCamera(w, spec.Camera); err != nil {
		return nil, fmt.Errorf("build scene: camera: %w", err)
	}
	if _, err := BuildPage(w, spec.Page); err != nil {
		return nil, fmt.Errorf("build scene: page: %w", err)
	}

	for _, path := range spec.Entities {
		if _, err := BuildEntity(w, path); err != nil {
			return nil, fmt.Errorf("build scene %q: %w", sceneName, err)
		}
	}

	if err := checkParents(w); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", sceneName, err)
	}
	return spec, nil
}

func BuildCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	view := geom.DefaultCamera()
	if spec.Position != (prefabs.Vec3Spec{}) {
		view.Position = spec.Position.Vec()
	}
	if spec.FOV > 0 {
		view.FOV = spec.FOV
	}
	if spec.FogNear > 0 || spec.FogFar > 0 {
		view.FogNear = spec.FogNear
		view.FogFar = spec.FogFar
	}

	e := ecs.CreateEntity(w)
	cam := &component.Camera{
		View:       view,
		Background: prefabs.ColorOr(spec.Background, colornames.White),
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), cam); err != nil {
		return 0, err
	}
	return e, nil
}

// BuildPage creates the single entity holding the document, its scroll
// state, the pointer and the clock.
func BuildPage(w *ecs.World, spec prefabs.PageSpec) (ecs.Entity, error) {
	sections := make([]component.Section, 0, len(spec.Sections))
	for _, s := range spec.Sections {
		sections = append(sections, component.Section{
			ID:     s.ID,
			Title:  s.Title,
			Body:   append([]string(nil), s.Body...),
			Height: s.Height,
		})
	}

	var panel color.Color
	if spec.PanelColor != nil {
		panel = spec.PanelColor.Color
	}

	e := ecs.CreateEntity(w)
	page := &component.Page{
		Sections:   sections,
		Contact:    spec.Contact,
		TextColor:  prefabs.ColorOr(spec.TextColor, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		PanelColor: panel,
		Accent:     prefabs.ColorOr(spec.Accent, color.NRGBA{R: 0x00, G: 0x55, B: 0xff, A: 0xff}),
		WheelSpeed: spec.WheelSpeed,
	}
	state := &component.PageState{
		Scroller:       scroll.NewScroller(spec.Smoothness),
		ViewportWidth:  common.BaseWidth,
		ViewportHeight: common.BaseHeight,
	}

	if err := ecs.Add(w, e, component.PageComponent.Kind(), page); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PageStateComponent.Kind(), state); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PointerStateComponent.Kind(), &component.PointerState{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, err
	}
	return e, nil
}

func checkParents(w *ecs.World) error {
	names := map[string]bool{}
	ecs.ForEach(w, component.NameComponent.Kind(), func(_ ecs.Entity, n *component.Name) {
		names[n.Value] = true
	})

	var err error
	ecs.ForEach(w, component.ParentComponent.Kind(), func(e ecs.Entity, p *component.Parent) {
		if err == nil && !names[p.Name] {
			err = fmt.Errorf("entity %s: unknown parent %q", e, p.Name)
		}
	})
	return err
}
