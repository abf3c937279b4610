package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/prefabs"
)

// Motion scripts define `update := func(ctx) { ... }` and return a map of
// offsets from the entity's base pose: x, y, z add to the position, rx, ry, rz
// add to the rotation and scale multiplies the scale.
const motionDispatchScript = `
__out := update(__ctx)
`

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

// ScriptSystem runs tengo motion scripts. Compiled scripts are cached per
// entity; a script that fails to load, compile or run is logged once and then
// skipped until the world is rebuilt.
type ScriptSystem struct {
	load  func(path string) ([]byte, error)
	cache map[ecs.Entity]*scriptRuntime
}

func NewScriptSystem(load func(path string) ([]byte, error)) *ScriptSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &ScriptSystem{load: load, cache: map[ecs.Entity]*scriptRuntime{}}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	t := elapsed(w)
	px, py := pointer(w)
	progress := globalProgress(w)

	ecs.ForEach2(w, component.ScriptComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, script *component.Script, transform *component.Transform) {
		rt, err := s.runtime(e, script.Path)
		if err != nil {
			fmt.Printf("script: entity=%s load %s error: %v\n", e, script.Path, err)
			return
		}
		if rt.failed {
			return
		}

		ctx := map[string]any{
			"time":      t,
			"pointer_x": px,
			"pointer_y": py,
			"progress":  progress,
			"params":    numericParams(script.Params),
			"base": map[string]any{
				"x":  script.Base.Position.X,
				"y":  script.Base.Position.Y,
				"z":  script.Base.Position.Z,
				"rx": script.Base.Rotation.X,
				"ry": script.Base.Rotation.Y,
				"rz": script.Base.Rotation.Z,
			},
		}
		out, err := rt.run(ctx)
		if err != nil {
			rt.failed = true
			fmt.Printf("script: entity=%s %s update error: %v\n", e, script.Path, err)
			return
		}
		applyMotion(transform, script.Base, out)
	})
}

func (s *ScriptSystem) runtime(e ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt, nil
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}

	src, err := s.load(path)
	if err != nil {
		s.cache[e] = &scriptRuntime{path: path, failed: true}
		return nil, err
	}
	compiled, err := compileMotionScript(src)
	if err != nil {
		s.cache[e] = &scriptRuntime{path: path, failed: true}
		return nil, err
	}
	rt := &scriptRuntime{path: path, compiled: compiled}
	s.cache[e] = rt
	return rt, nil
}

func compileMotionScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + motionDispatchScript))
	_ = script.Add("__ctx", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (rt *scriptRuntime) run(ctx map[string]any) (map[string]any, error) {
	if err := rt.compiled.Set("__ctx", ctx); err != nil {
		return nil, err
	}
	if err := rt.compiled.Run(); err != nil {
		return nil, err
	}
	out := rt.compiled.Get("__out")
	if out.IsUndefined() {
		return nil, fmt.Errorf("update returned nothing")
	}
	m := out.Map()
	if m == nil {
		return nil, fmt.Errorf("update must return a map, got %s", out.ValueType())
	}
	return m, nil
}

func applyMotion(transform *component.Transform, base geom.Pose, out map[string]any) {
	offset := func(key string) float64 {
		v, _ := toFloat(out[key])
		return v
	}
	transform.Position = base.Position.Add(geom.Vec3{X: offset("x"), Y: offset("y"), Z: offset("z")})
	transform.Rotation = base.Rotation.Add(geom.Vec3{X: offset("rx"), Y: offset("ry"), Z: offset("rz")})

	scale := base.Scale
	if scale == 0 {
		scale = 1
	}
	if f, ok := toFloat(out["scale"]); ok {
		scale *= f
	}
	transform.Scale = scale
}

// numericParams widens YAML integers so scripts always do float math.
func numericParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if f, ok := toFloat(v); ok {
			out[k] = f
			continue
		}
		out[k] = v
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
