package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/scroll"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec lists everything that makes up the page: the camera, the
// document, and the entity prefabs to build.
type SceneSpec struct {
	Name     string     `yaml:"name"`
	Camera   CameraSpec `yaml:"camera"`
	Page     PageSpec   `yaml:"page"`
	Entities []string   `yaml:"entities"`
}

type CameraSpec struct {
	Position   Vec3Spec   `yaml:"position"`
	FOV        float64    `yaml:"fov"`
	FogNear    float64    `yaml:"fog_near"`
	FogFar     float64    `yaml:"fog_far"`
	Background *YAMLColor `yaml:"background"`
}

type PageSpec struct {
	Contact    string        `yaml:"contact"`
	WheelSpeed float64       `yaml:"wheel_speed"`
	Smoothness float64       `yaml:"smoothness"`
	TextColor  *YAMLColor    `yaml:"text_color"`
	PanelColor *YAMLColor    `yaml:"panel_color"`
	Accent     *YAMLColor    `yaml:"accent"`
	Sections   []SectionSpec `yaml:"sections"`
}

type SectionSpec struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Body   []string `yaml:"body"`
	Height float64  `yaml:"height"`
}

func LoadSceneSpec(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid scene %s: %w", name, err)
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	if len(s.Page.Sections) == 0 {
		return fmt.Errorf("page needs at least one section")
	}
	for i, sec := range s.Page.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section %d: id is required", i)
		}
		if sec.Height < 0 {
			return fmt.Errorf("section %q: height cannot be negative", sec.ID)
		}
	}
	if len(s.Entities) == 0 {
		return fmt.Errorf("scene lists no entities")
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() geom.Vec3 {
	return geom.V(v.X, v.Y, v.Z)
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns c's color, or def when c is unset.
func ColorOr(c *YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A), nil
}

// ParseHexColor reads #RRGGBB or #RRGGBBAA.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// EntityBuildSpec is one entity prefab: a name and a bag of component specs
// decoded lazily by the entity builder.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	Rotation Vec3Spec `yaml:"rotation"`
	Scale    float64  `yaml:"scale"`
}

type ParentComponentSpec struct {
	Name string `yaml:"name"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type ScrollBandComponentSpec struct {
	Start      float64  `yaml:"start"`
	End        float64  `yaml:"end"`
	ScaleMin   *float64 `yaml:"scale_min"`
	ScaleMax   *float64 `yaml:"scale_max"`
	OpacityMin *float64 `yaml:"opacity_min"`
	OpacityMax *float64 `yaml:"opacity_max"`
}

// Band fills unset fields from scroll.DefaultBand and validates the range.
func (s ScrollBandComponentSpec) Band() (scroll.Band, error) {
	r := scroll.Range{Start: s.Start, End: s.End}
	if err := r.Validate(); err != nil {
		return scroll.Band{}, err
	}
	b := scroll.DefaultBand(r, 1)
	if s.ScaleMin != nil {
		b.ScaleMin = *s.ScaleMin
	}
	if s.ScaleMax != nil {
		b.ScaleMax = *s.ScaleMax
	}
	if s.OpacityMin != nil {
		b.OpacityMin = *s.OpacityMin
	}
	if s.OpacityMax != nil {
		b.OpacityMax = *s.OpacityMax
	}
	return b, nil
}

type MeshComponentSpec struct {
	Shape     string     `yaml:"shape"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Depth     float64    `yaml:"depth"`
	Radius    float64    `yaml:"radius"`
	Tube      float64    `yaml:"tube"`
	Segments  int        `yaml:"segments"`
	Rings     int        `yaml:"rings"`
	Size      int        `yaml:"size"`
	Step      float64    `yaml:"step"`
	Color     *YAMLColor `yaml:"color"`
	Opacity   *float64   `yaml:"opacity"`
	LineWidth float32    `yaml:"line_width"`
}

func (s MeshComponentSpec) Shape3D() geom.ShapeSpec {
	return geom.ShapeSpec{
		Kind:     s.Shape,
		Width:    s.Width,
		Height:   s.Height,
		Depth:    s.Depth,
		Radius:   s.Radius,
		Tube:     s.Tube,
		Segments: s.Segments,
		Rings:    s.Rings,
		Size:     s.Size,
		Step:     s.Step,
	}
}

type FormationComponentSpec struct {
	Kind   string   `yaml:"kind"`
	Count  int      `yaml:"count"`
	Seed   int64    `yaml:"seed"`
	Spread Vec3Spec `yaml:"spread"`
	Radius float64  `yaml:"radius"`
	Jitter float64  `yaml:"jitter"`
}

// Formation builds the spec with count as the fallback particle count.
func (s FormationComponentSpec) Formation(count int) geom.FormationSpec {
	if s.Count > 0 {
		count = s.Count
	}
	return geom.FormationSpec{
		Kind:   s.Kind,
		Count:  count,
		Seed:   s.Seed,
		Spread: s.Spread.Vec(),
		Radius: s.Radius,
		Jitter: s.Jitter,
	}
}

type ParticlesComponentSpec struct {
	Formation FormationComponentSpec `yaml:"formation"`
	Color     *YAMLColor             `yaml:"color"`
	Size      float64                `yaml:"size"`
	Opacity   *float64               `yaml:"opacity"`
}

type PhaseSpec struct {
	Name  string  `yaml:"name"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
}

type MorphComponentSpec struct {
	Formations        map[string]FormationComponentSpec `yaml:"formations"`
	Timeline          []PhaseSpec                       `yaml:"timeline"`
	Bob               float64                           `yaml:"bob"`
	Opacity           float64                           `yaml:"opacity"`
	TransitionOpacity float64                           `yaml:"transition_opacity"`
	Flicker           float64                           `yaml:"flicker"`
}

// Phases converts the timeline, falling back to scroll.DefaultTimeline when
// none is given.
func (s MorphComponentSpec) Phases() (scroll.Timeline, error) {
	if len(s.Timeline) == 0 {
		return scroll.DefaultTimeline(), nil
	}
	tl := make(scroll.Timeline, 0, len(s.Timeline))
	for _, p := range s.Timeline {
		tl = append(tl, scroll.Phase{Name: p.Name, Start: p.Start, End: p.End, From: p.From, To: p.To})
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return tl, nil
}

type AttractComponentSpec struct {
	Target  FormationComponentSpec `yaml:"target"`
	Rate    float64                `yaml:"rate"`
	Pointer Vec3Spec               `yaml:"pointer"`
	Bob     float64                `yaml:"bob"`
}

type DriftComponentSpec struct {
	Amplitude Vec3Spec `yaml:"amplitude"`
	Speed     float64  `yaml:"speed"`
}

type SpinComponentSpec struct {
	Rate      Vec3Spec `yaml:"rate"`
	HoverRate float64  `yaml:"hover_rate"`
}

type PointerTiltComponentSpec struct {
	Yaw   float64  `yaml:"yaw"`
	Pitch float64  `yaml:"pitch"`
	Shift Vec3Spec `yaml:"shift"`
}

type ScriptComponentSpec struct {
	Path   string         `yaml:"path"`
	Params map[string]any `yaml:"params"`
}

type HoverableComponentSpec struct {
	Label      string     `yaml:"label"`
	Radius     float64    `yaml:"radius"`
	HoverScale float64    `yaml:"hover_scale"`
	Rate       float64    `yaml:"rate"`
	HoverColor *YAMLColor `yaml:"hover_color"`
}
