package prefabs

import (
	"errors"
	"image/color"
	"io/fs"
	"testing"

	"github.com/milk9111/folio/scroll"
	"gopkg.in/yaml.v3"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#0055FF", want: color.NRGBA{R: 0x00, G: 0x55, B: 0xff, A: 0xff}},
		{in: "ffffffcc", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}},
		{in: " #111111 ", want: color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#GG0000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestYAMLColorRoundTrip(t *testing.T) {
	var spec struct {
		Color *YAMLColor `yaml:"color"`
	}
	if err := yaml.Unmarshal([]byte(`color: "#0055FF"`), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if spec.Color == nil || spec.Color.Color != (color.NRGBA{G: 0x55, B: 0xff, A: 0xff}) {
		t.Fatalf("color = %+v", spec.Color)
	}

	// component specs pass through DecodeComponentSpec, which re-marshals them
	decoded, err := DecodeComponentSpec[MeshComponentSpec](map[string]any{"color": "#0055FF"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Color == nil || decoded.Color.Color != spec.Color.Color {
		t.Fatalf("decoded color = %+v", decoded.Color)
	}

	if got := ColorOr(nil, color.White); got != color.White {
		t.Fatalf("ColorOr(nil) = %v", got)
	}
}

func TestScrollBandSpec(t *testing.T) {
	half := 0.5
	tests := []struct {
		name    string
		spec    ScrollBandComponentSpec
		want    scroll.Band
		wantErr error
	}{
		{
			name: "defaults",
			spec: ScrollBandComponentSpec{Start: 0.2, End: 0.8},
			want: scroll.Band{Range: scroll.Range{Start: 0.2, End: 0.8}, ScaleMin: 0.1, ScaleMax: 1, OpacityMax: 1},
		},
		{
			name: "overrides",
			spec: ScrollBandComponentSpec{Start: 0, End: 1, ScaleMin: &half, OpacityMax: &half},
			want: scroll.Band{Range: scroll.Range{Start: 0, End: 1}, ScaleMin: 0.5, ScaleMax: 1, OpacityMax: 0.5},
		},
		{name: "degenerate", spec: ScrollBandComponentSpec{Start: 0.4, End: 0.4}, wantErr: scroll.ErrDegenerateRange},
		{name: "inverted", spec: ScrollBandComponentSpec{Start: 0.9, End: 0.1}, wantErr: scroll.ErrDegenerateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Band()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("band = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScrollBandSpecRejectsNonFinite(t *testing.T) {
	docs := []string{
		"start: .nan\nend: 0.5\n",
		"start: 0.2\nend: .inf\n",
		"start: -.inf\nend: 0.5\n",
	}
	for _, doc := range docs {
		var spec ScrollBandComponentSpec
		if err := yaml.Unmarshal([]byte(doc), &spec); err != nil {
			t.Fatalf("decode %q: %v", doc, err)
		}
		if _, err := spec.Band(); !errors.Is(err, scroll.ErrRangeBounds) {
			t.Fatalf("%q: err = %v, want ErrRangeBounds", doc, err)
		}
	}
}

func TestMorphPhases(t *testing.T) {
	tl, err := MorphComponentSpec{}.Phases()
	if err != nil || len(tl) != len(scroll.DefaultTimeline()) {
		t.Fatalf("empty timeline should default, got %v %v", tl, err)
	}

	_, err = MorphComponentSpec{Timeline: []PhaseSpec{
		{Name: "a", Start: 0, End: 0.4, From: "x", To: "x"},
		{Name: "b", Start: 0.5, End: 1, From: "x", To: "y"},
	}}.Phases()
	if !errors.Is(err, scroll.ErrTimelineGap) {
		t.Fatalf("err = %v, want ErrTimelineGap", err)
	}
}

func TestSceneSpecValidate(t *testing.T) {
	valid := SceneSpec{
		Page:     PageSpec{Sections: []SectionSpec{{ID: "home", Height: 1}}},
		Entities: []string{"entities/hero.yaml"},
	}
	tests := []struct {
		name    string
		mutate  func(s *SceneSpec)
		wantErr bool
	}{
		{name: "valid", mutate: func(*SceneSpec) {}},
		{name: "no sections", mutate: func(s *SceneSpec) { s.Page.Sections = nil }, wantErr: true},
		{name: "missing id", mutate: func(s *SceneSpec) { s.Page.Sections[0].ID = "" }, wantErr: true},
		{name: "negative height", mutate: func(s *SceneSpec) { s.Page.Sections[0].Height = -1 }, wantErr: true},
		{name: "no entities", mutate: func(s *SceneSpec) { s.Entities = nil }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Page.Sections = append([]SectionSpec(nil), valid.Page.Sections...)
			tt.mutate(&s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedSceneLoads(t *testing.T) {
	scene, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if scene.Page.Contact == "" {
		t.Fatalf("scene has no contact address")
	}
	for _, path := range scene.Entities {
		spec, err := LoadEntityBuildSpec(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if spec.Name == "" || len(spec.Components) == 0 {
			t.Fatalf("%s: empty prefab", path)
		}
	}
}

func TestEmbeddedScriptsLoad(t *testing.T) {
	matches, err := fs.Glob(ScriptsFS, "scripts/*.tengo")
	if err != nil || len(matches) == 0 {
		t.Fatalf("no embedded scripts: %v", err)
	}
	for _, m := range matches {
		if _, err := LoadScript(m); err != nil {
			t.Fatalf("LoadScript(%q): %v", m, err)
		}
	}
}

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{cleanScriptPath, "orbit.tengo", "scripts/orbit.tengo"},
		{cleanScriptPath, "prefabs/scripts/orbit.tengo", "scripts/orbit.tengo"},
		{cleanScriptPath, "scripts/orbit.tengo", "scripts/orbit.tengo"},
		{cleanPrefabPath, "./prefabs/entities/hero.yaml", "entities/hero.yaml"},
		{cleanPrefabPath, "scene.yaml", "scene.yaml"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/scene.yaml", ChangeSpec, true},
		{"prefabs/entities/hero.YML", ChangeSpec, true},
		{"prefabs/scripts/orbit.tengo", ChangeScript, true},
		{"prefabs/scene.yaml~", 0, false},
		{"prefabs/.scene.yaml.swp", 0, false},
	}
	for _, tt := range tests {
		kind, ok := classify(tt.path)
		if ok != tt.ok || kind != tt.kind {
			t.Errorf("classify(%q) = (%v, %v), want (%v, %v)", tt.path, kind, ok, tt.kind, tt.ok)
		}
	}
}
