package system

import (
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
)

// maxParentDepth bounds parent walks so a naming cycle cannot hang a frame.
const maxParentDepth = 8

// sceneGraph resolves Parent names to entities for one frame.
type sceneGraph struct {
	w     *ecs.World
	names map[string]ecs.Entity
}

func newSceneGraph(w *ecs.World) *sceneGraph {
	g := &sceneGraph{w: w, names: map[string]ecs.Entity{}}
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, name *component.Name) {
		if _, taken := g.names[name.Value]; !taken {
			g.names[name.Value] = e
		}
	})
	return g
}

func (g *sceneGraph) parent(e ecs.Entity) (ecs.Entity, bool) {
	p, ok := ecs.Get(g.w, e, component.ParentComponent.Kind())
	if !ok || p.Name == "" {
		return 0, false
	}
	parent, ok := g.names[p.Name]
	if !ok || parent == e {
		return 0, false
	}
	return parent, true
}

// localPose is the entity's transform with its band and hover scale folded in.
func (g *sceneGraph) localPose(e ecs.Entity) geom.Pose {
	transform, _ := ecs.Get(g.w, e, component.TransformComponent.Kind())
	pose := transform.Pose()
	if pose.Scale == 0 {
		pose.Scale = 1
	}
	if visual, ok := ecs.Get(g.w, e, component.VisualComponent.Kind()); ok {
		pose.Scale *= visual.Scale
	}
	if hover, ok := ecs.Get(g.w, e, component.HoverableComponent.Kind()); ok && hover.Scale > 0 {
		pose.Scale *= hover.Scale
	}
	return pose
}

// chain returns the poses from e up to its root.
func (g *sceneGraph) chain(e ecs.Entity) []geom.Pose {
	poses := []geom.Pose{g.localPose(e)}
	cur := e
	for i := 0; i < maxParentDepth; i++ {
		parent, ok := g.parent(cur)
		if !ok {
			break
		}
		poses = append(poses, g.localPose(parent))
		cur = parent
	}
	return poses
}

// hovered reports whether the nearest Hoverable at or above e is hovered.
func (g *sceneGraph) hovered(e ecs.Entity) bool {
	cur := e
	for i := 0; i <= maxParentDepth; i++ {
		if hover, ok := ecs.Get(g.w, cur, component.HoverableComponent.Kind()); ok {
			return hover.Hovered
		}
		parent, ok := g.parent(cur)
		if !ok {
			return false
		}
		cur = parent
	}
	return false
}

func toWorld(chain []geom.Pose, p geom.Vec3) geom.Vec3 {
	for _, pose := range chain {
		p = pose.Apply(p)
	}
	return p
}

// chainScale is the product of the scales along a chain.
func chainScale(chain []geom.Pose) float64 {
	s := 1.0
	for _, pose := range chain {
		s *= pose.Scale
	}
	return s
}

// appearance resolves how visible e is. An entity's own Visual replaces its
// material opacity; an ancestor's Visual multiplies it. Any hidden Visual in
// the chain hides the entity.
func (g *sceneGraph) appearance(e ecs.Entity, base float64) (float64, bool) {
	opacity := base
	if visual, ok := ecs.Get(g.w, e, component.VisualComponent.Kind()); ok {
		if !visual.Visible {
			return 0, false
		}
		opacity = visual.Opacity
	}
	cur := e
	for i := 0; i < maxParentDepth; i++ {
		parent, ok := g.parent(cur)
		if !ok {
			break
		}
		if visual, ok := ecs.Get(g.w, parent, component.VisualComponent.Kind()); ok {
			if !visual.Visible {
				return 0, false
			}
			opacity *= visual.Opacity
		}
		cur = parent
	}
	return opacity, opacity > 0
}

func sceneCamera(w *ecs.World) component.Camera {
	if cam, ok := ecs.Single(w, component.CameraComponent.Kind()); ok {
		return *cam
	}
	return component.Camera{View: geom.DefaultCamera()}
}
