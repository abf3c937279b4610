package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/prefabs"
	"golang.org/x/image/colornames"
)

var ErrMissingDependency = errors.New("entity: missing component dependency")

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"parent":       addParent,
	"render_layer": addRenderLayer,
	"mesh":         addMesh,
	"particles":    addParticles,
	"scroll_band":  addScrollBand,
	"morph":        addMorph,
	"attract":      addAttract,
	"drift":        addDrift,
	"spin":         addSpin,
	"pointer_tilt": addPointerTilt,
	"script":       addScript,
	"hoverable":    addHoverable,
}

// componentBuildOrder runs transform before anything that captures a base
// pose and particles before the systems that reshape them.
var componentBuildOrder = []string{
	"transform",
	"parent",
	"render_layer",
	"mesh",
	"particles",
	"scroll_band",
	"morph",
	"attract",
	"drift",
	"spin",
	"pointer_tilt",
	"script",
	"hoverable",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec builds an already decoded prefab. The entity is
// destroyed again if any component fails.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", prefabPath, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Position.Vec(),
		Rotation: spec.Rotation.Vec(),
		Scale:    spec.Scale,
	})
}

type parentSpec = prefabs.ParentComponentSpec

func addParent(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[parentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode parent spec: %w", err)
	}
	if spec.Name == "" {
		return fmt.Errorf("parent name is required")
	}
	return ecs.Add(w, e, component.ParentComponent.Kind(), &component.Parent{Name: spec.Name})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type meshSpec = prefabs.MeshComponentSpec

func addMesh(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[meshSpec](raw)
	if err != nil {
		return fmt.Errorf("decode mesh spec: %w", err)
	}
	edges, err := geom.BuildShape(spec.Shape3D())
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{
		Shape:   spec.Shape,
		Edges:   edges,
		Color:   prefabs.ColorOr(spec.Color, colornames.Black),
		Opacity: floatOr(spec.Opacity, 1),
		Width:   spec.LineWidth,
	})
}

type particlesSpec = prefabs.ParticlesComponentSpec

func addParticles(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[particlesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode particles spec: %w", err)
	}
	positions, err := geom.BuildFormation(spec.Formation.Formation(0))
	if err != nil {
		return err
	}
	size := spec.Size
	if size <= 0 {
		size = 0.02
	}
	return ecs.Add(w, e, component.ParticleCloudComponent.Kind(), &component.ParticleCloud{
		Positions: positions,
		Color:     prefabs.ColorOr(spec.Color, colornames.Black),
		Size:      size,
		Opacity:   floatOr(spec.Opacity, 0.8),
	})
}

type scrollBandSpec = prefabs.ScrollBandComponentSpec

func addScrollBand(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[scrollBandSpec](raw)
	if err != nil {
		return fmt.Errorf("decode scroll band spec: %w", err)
	}
	band, err := spec.Band()
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ScrollBandComponent.Kind(), &component.ScrollBand{Band: band}); err != nil {
		return err
	}
	// Hidden until the first band update says otherwise.
	return ecs.Add(w, e, component.VisualComponent.Kind(), &component.Visual{Scale: band.ScaleMin})
}

type morphSpec = prefabs.MorphComponentSpec

func addMorph(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[morphSpec](raw)
	if err != nil {
		return fmt.Errorf("decode morph spec: %w", err)
	}
	cloud, ok := ecs.Get(w, e, component.ParticleCloudComponent.Kind())
	if !ok {
		return fmt.Errorf("morph: %w: particles", ErrMissingDependency)
	}
	timeline, err := spec.Phases()
	if err != nil {
		return err
	}

	count := len(cloud.Positions)
	formations := make(map[string][]geom.Vec3, len(spec.Formations))
	for name, f := range spec.Formations {
		positions, err := geom.BuildFormation(f.Formation(count))
		if err != nil {
			return fmt.Errorf("formation %q: %w", name, err)
		}
		if len(positions) != count {
			return fmt.Errorf("formation %q has %d points, cloud has %d", name, len(positions), count)
		}
		formations[name] = positions
	}
	for _, p := range timeline {
		for _, name := range []string{p.From, p.To} {
			if _, ok := formations[name]; !ok {
				return fmt.Errorf("phase %q uses undefined formation %q", p.Name, name)
			}
		}
	}

	opacity := spec.Opacity
	if opacity == 0 {
		opacity = cloud.Opacity
	}
	return ecs.Add(w, e, component.MorphComponent.Kind(), &component.Morph{
		Timeline:          timeline,
		Formations:        formations,
		Bob:               spec.Bob,
		Opacity:           opacity,
		TransitionOpacity: spec.TransitionOpacity,
		Flicker:           spec.Flicker,
	})
}

type attractSpec = prefabs.AttractComponentSpec

func addAttract(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[attractSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attract spec: %w", err)
	}
	cloud, ok := ecs.Get(w, e, component.ParticleCloudComponent.Kind())
	if !ok {
		return fmt.Errorf("attract: %w: particles", ErrMissingDependency)
	}
	target, err := geom.BuildFormation(spec.Target.Formation(len(cloud.Positions)))
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	rate := spec.Rate
	if rate <= 0 || rate > 1 {
		rate = 0.02
	}
	return ecs.Add(w, e, component.AttractComponent.Kind(), &component.Attract{
		Target:  target,
		Rate:    rate,
		Pointer: spec.Pointer.Vec(),
		Bob:     spec.Bob,
	})
}

type driftSpec = prefabs.DriftComponentSpec

func addDrift(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[driftSpec](raw)
	if err != nil {
		return fmt.Errorf("decode drift spec: %w", err)
	}
	if !ecs.Has(w, e, component.ParticleCloudComponent.Kind()) {
		return fmt.Errorf("drift: %w: particles", ErrMissingDependency)
	}
	return ecs.Add(w, e, component.DriftComponent.Kind(), &component.Drift{
		Amplitude: spec.Amplitude.Vec(),
		Speed:     spec.Speed,
	})
}

type spinSpec = prefabs.SpinComponentSpec

func addSpin(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spinSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spin spec: %w", err)
	}
	return ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Rate: spec.Rate.Vec(), HoverRate: spec.HoverRate})
}

type pointerTiltSpec = prefabs.PointerTiltComponentSpec

func addPointerTilt(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pointerTiltSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pointer tilt spec: %w", err)
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("pointer tilt: %w: transform", ErrMissingDependency)
	}
	return ecs.Add(w, e, component.PointerTiltComponent.Kind(), &component.PointerTilt{
		Yaw:          spec.Yaw,
		Pitch:        spec.Pitch,
		Shift:        spec.Shift.Vec(),
		BasePosition: transform.Position,
		BaseRotation: transform.Rotation,
	})
}

type scriptSpec = prefabs.ScriptComponentSpec

func addScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[scriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("script path is required")
	}
	if _, err := prefabs.LoadScript(spec.Path); err != nil {
		return fmt.Errorf("load script %q: %w", spec.Path, err)
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("script: %w: transform", ErrMissingDependency)
	}
	return ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{
		Path:   spec.Path,
		Params: spec.Params,
		Base:   transform.Pose(),
	})
}

type hoverableSpec = prefabs.HoverableComponentSpec

func addHoverable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hoverableSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hoverable spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 1
	}
	if spec.HoverScale <= 0 {
		spec.HoverScale = 1.2
	}
	if spec.Rate <= 0 || spec.Rate > 1 {
		spec.Rate = 0.1
	}
	hover := &component.Hoverable{
		Label:      spec.Label,
		Radius:     spec.Radius,
		HoverScale: spec.HoverScale,
		Rate:       spec.Rate,
		Scale:      1,
	}
	if spec.HoverColor != nil {
		hover.HoverColor = spec.HoverColor.Color
	}
	return ecs.Add(w, e, component.HoverableComponent.Kind(), hover)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
