package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/scroll"
	"golang.org/x/image/colornames"
)

const (
	defaultLineWidth = 1.5
	minParticlePx    = 0.75
)

type drawKind int

const (
	drawLine drawKind = iota
	drawPoint
)

// DrawItem is one projected primitive: a wireframe edge or a particle.
type DrawItem struct {
	Entity ecs.Entity
	Kind   drawKind
	Layer  int
	Depth  float64
	X0, Y0 float32
	X1, Y1 float32
	Size   float32
	Color  color.NRGBA
}

// RenderSystem projects every mesh and particle cloud and draws them far to
// near within each render layer.
type RenderSystem struct {
	items []DrawItem
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	cam := sceneCamera(w)
	bg := cam.Background
	if bg == nil {
		bg = colornames.White
	}
	screen.Fill(bg)

	b := screen.Bounds()
	r.items = AppendDrawList(r.items[:0], w, float64(b.Dx()), float64(b.Dy()))
	for _, item := range r.items {
		switch item.Kind {
		case drawLine:
			vector.StrokeLine(screen, item.X0, item.Y0, item.X1, item.Y1, item.Size, item.Color, true)
		case drawPoint:
			vector.FillCircle(screen, item.X0, item.Y0, item.Size, item.Color, true)
		}
	}
}

// AppendDrawList projects the scene for a viewport and appends it to dst in
// draw order.
func AppendDrawList(dst []DrawItem, w *ecs.World, width, height float64) []DrawItem {
	view := sceneCamera(w).View
	graph := newSceneGraph(w)
	start := len(dst)

	ecs.ForEach2(w, component.MeshComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mesh *component.Mesh, _ *component.Transform) {
		opacity, visible := graph.appearance(e, mesh.Opacity)
		if !visible {
			return
		}
		clr := mesh.Color
		if hover, ok := ecs.Get(w, e, component.HoverableComponent.Kind()); ok && hover.Hovered && hover.HoverColor != nil {
			clr = hover.HoverColor
		}
		lineWidth := mesh.Width
		if lineWidth <= 0 {
			lineWidth = defaultLineWidth
		}
		layer := renderLayer(w, e)
		chain := graph.chain(e)

		for _, edge := range mesh.Edges {
			a, okA := view.Project(toWorld(chain, edge.A), width, height)
			b, okB := view.Project(toWorld(chain, edge.B), width, height)
			if !okA || !okB {
				continue
			}
			depth := (a.Depth + b.Depth) / 2
			alpha := opacity * view.Fog(depth)
			if alpha <= 0 {
				continue
			}
			dst = append(dst, DrawItem{
				Entity: e,
				Kind:   drawLine,
				Layer:  layer,
				Depth:  depth,
				X0:     float32(a.X),
				Y0:     float32(a.Y),
				X1:     float32(b.X),
				Y1:     float32(b.Y),
				Size:   lineWidth,
				Color:  withAlpha(clr, alpha),
			})
		}
	})

	ecs.ForEach2(w, component.ParticleCloudComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cloud *component.ParticleCloud, _ *component.Transform) {
		opacity, visible := graph.appearance(e, cloud.Opacity)
		if !visible {
			return
		}
		layer := renderLayer(w, e)
		chain := graph.chain(e)
		scale := chainScale(chain)

		for _, p := range cloud.Positions {
			proj, ok := view.Project(toWorld(chain, p), width, height)
			if !ok {
				continue
			}
			alpha := opacity * view.Fog(proj.Depth)
			if alpha <= 0 {
				continue
			}
			size := max(float32(cloud.Size*scale*proj.PixelsPerUnit), minParticlePx)
			dst = append(dst, DrawItem{
				Entity: e,
				Kind:   drawPoint,
				Layer:  layer,
				Depth:  proj.Depth,
				X0:     float32(proj.X),
				Y0:     float32(proj.Y),
				Size:   size,
				Color:  withAlpha(cloud.Color, alpha),
			})
		}
	})

	items := dst[start:]
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Layer != items[j].Layer {
			return items[i].Layer < items[j].Layer
		}
		return items[i].Depth > items[j].Depth
	})
	return dst
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	if c == nil {
		c = colornames.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*scroll.Clamp(alpha, 0, 1) + 0.5)
	return n
}
