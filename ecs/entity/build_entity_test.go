package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/prefabs"
	"github.com/milk9111/folio/scroll"
)

func TestBuildEntityFromSpecErrors(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]any
		wantErr    error
	}{
		{
			name: "degenerate band",
			components: map[string]any{
				"transform":   map[string]any{},
				"scroll_band": map[string]any{"start": 0.6, "end": 0.6},
			},
			wantErr: scroll.ErrDegenerateRange,
		},
		{
			name: "band outside page",
			components: map[string]any{
				"scroll_band": map[string]any{"start": 0.5, "end": 1.5},
			},
			wantErr: scroll.ErrRangeBounds,
		},
		{
			name: "morph without particles",
			components: map[string]any{
				"transform": map[string]any{},
				"morph":     map[string]any{},
			},
			wantErr: ErrMissingDependency,
		},
		{
			name: "unknown shape",
			components: map[string]any{
				"mesh": map[string]any{"shape": "teapot"},
			},
			wantErr: geom.ErrUnknownShape,
		},
		{
			name: "unknown formation",
			components: map[string]any{
				"particles": map[string]any{"formation": map[string]any{"kind": "swirl", "count": 4}},
			},
			wantErr: geom.ErrUnknownFormation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntityFromSpec(w, "test.yaml", prefabs.EntityBuildSpec{Name: "x", Components: tt.components})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build left %d entities behind", n)
			}
		})
	}
}

func TestBuildEntityRejectsUnknownComponent(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildEntityFromSpec(w, "test.yaml", prefabs.EntityBuildSpec{
		Components: map[string]any{"transform": map[string]any{}, "sprite": map[string]any{}},
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown component")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed build left %d entities behind", n)
	}
}

func TestBuildEntityBandedMesh(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntityFromSpec(w, "test.yaml", prefabs.EntityBuildSpec{
		Name: "about",
		Components: map[string]any{
			"transform": map[string]any{"position": map[string]any{"x": 2}},
			"mesh":      map[string]any{"shape": "box", "color": "#0055FF", "opacity": 0.7},
			"scroll_band": map[string]any{
				"start":       0.5,
				"end":         1.0,
				"opacity_max": 0.7,
			},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	name, _ := ecs.Get(w, e, component.NameComponent.Kind())
	if name == nil || name.Value != "about" {
		t.Fatalf("name = %+v", name)
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if transform.Position.X != 2 || transform.Scale != 1 {
		t.Fatalf("transform = %+v", transform)
	}
	mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
	if len(mesh.Edges) != 12 || mesh.Opacity != 0.7 {
		t.Fatalf("mesh edges=%d opacity=%v", len(mesh.Edges), mesh.Opacity)
	}
	band, _ := ecs.Get(w, e, component.ScrollBandComponent.Kind())
	want := scroll.Band{Range: scroll.Range{Start: 0.5, End: 1}, ScaleMin: 0.1, ScaleMax: 1, OpacityMax: 0.7}
	if band.Band != want {
		t.Fatalf("band = %+v, want %+v", band.Band, want)
	}
	visual, ok := ecs.Get(w, e, component.VisualComponent.Kind())
	if !ok || visual.Visible {
		t.Fatalf("banded mesh should start hidden, got %+v", visual)
	}
}

func TestBuildEntityParticlesMotion(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntityFromSpec(w, "test.yaml", prefabs.EntityBuildSpec{
		Name: "cloud",
		Components: map[string]any{
			"transform": map[string]any{"position": map[string]any{"z": -4}},
			"particles": map[string]any{"formation": map[string]any{"kind": "scattered", "count": 30, "seed": 1}},
			"morph": map[string]any{
				"formations": map[string]any{
					"scattered": map[string]any{"kind": "scattered", "seed": 1},
					"hero":      map[string]any{"kind": "hero"},
					"projects":  map[string]any{"kind": "projects"},
					"about":     map[string]any{"kind": "about"},
				},
				"transition_opacity": 0.6,
			},
			"pointer_tilt": map[string]any{"yaw": 0.1},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	morph, _ := ecs.Get(w, e, component.MorphComponent.Kind())
	if len(morph.Timeline) != len(scroll.DefaultTimeline()) {
		t.Fatalf("missing timeline should fall back to the default one")
	}
	for name, f := range morph.Formations {
		if len(f) != 30 {
			t.Fatalf("formation %q has %d points, want 30", name, len(f))
		}
	}
	if morph.Opacity != 0.8 {
		t.Fatalf("morph opacity should default to the cloud's, got %v", morph.Opacity)
	}

	tilt, _ := ecs.Get(w, e, component.PointerTiltComponent.Kind())
	if tilt.BasePosition.Z != -4 {
		t.Fatalf("tilt base = %+v, want the built transform", tilt.BasePosition)
	}
}

func TestBuildEntityMorphUndefinedFormation(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildEntityFromSpec(w, "test.yaml", prefabs.EntityBuildSpec{
		Components: map[string]any{
			"particles": map[string]any{"formation": map[string]any{"kind": "ring", "count": 8}},
			"morph": map[string]any{
				"formations": map[string]any{"ring": map[string]any{"kind": "ring"}},
			},
		},
	})
	if err == nil {
		t.Fatalf("default timeline names formations the morph does not define")
	}
}

func TestBuildScene(t *testing.T) {
	w := ecs.NewWorld()
	spec, err := BuildScene(w, "")
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	if _, ok := ecs.Single(w, component.CameraComponent.Kind()); !ok {
		t.Fatalf("scene has no camera")
	}
	page, ok := ecs.Single(w, component.PageComponent.Kind())
	if !ok || len(page.Sections) != len(spec.Page.Sections) {
		t.Fatalf("page sections not built")
	}
	state, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok || state.Scroller == nil || state.ViewportHeight == 0 {
		t.Fatalf("page state not initialised: %+v", state)
	}

	names := map[string]bool{}
	ecs.ForEach(w, component.NameComponent.Kind(), func(_ ecs.Entity, n *component.Name) {
		names[n.Value] = true
	})
	for _, want := range []string{"hero", "hero_particles", "about_sphere", "project_store", "morph_particles"} {
		if !names[want] {
			t.Errorf("scene is missing %q", want)
		}
	}

	bands := 0
	ecs.ForEach(w, component.ScrollBandComponent.Kind(), func(_ ecs.Entity, b *component.ScrollBand) {
		bands++
		if err := b.Band.Range.Validate(); err != nil {
			t.Errorf("invalid band: %v", err)
		}
	})
	if bands == 0 {
		t.Fatalf("scene has no banded objects")
	}
}

func TestCheckParentsRejectsUnknownParent(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildEntityFromSpec(w, "child.yaml", prefabs.EntityBuildSpec{
		Name:       "child",
		Components: map[string]any{"parent": map[string]any{"name": "ghost"}, "transform": map[string]any{}},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := checkParents(w); err == nil {
		t.Fatalf("expected unknown parent error")
	}
}
