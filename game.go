package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/ecs/entity"
	"github.com/milk9111/folio/ecs/system"
	"github.com/milk9111/folio/prefabs"
)

type Game struct {
	sceneName string
	debug     bool
	trace     bool

	world     *ecs.World
	scheduler *ecs.Scheduler

	inspector     *Inspector
	showInspector bool
	watcher       *prefabs.Watcher

	width, height float64
}

func NewGame(sceneName string, debug, trace, watch bool) (*Game, error) {
	g := &Game{
		sceneName:     sceneName,
		debug:         debug,
		trace:         trace,
		inspector:     NewInspector(),
		showInspector: debug,
		width:         common.BaseWidth,
		height:        common.BaseHeight,
	}
	if err := g.reload(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func newScheduler(trace bool) *ecs.Scheduler {
	input := system.EbitenInput{}
	return ecs.NewScheduler(
		system.NewClockSystem(nil),
		system.NewScrollSystem(input),
		system.NewPointerSystem(input),
		system.NewBandSystem(trace),
		system.NewMorphSystem(),
		system.NewAttractSystem(),
		system.NewDriftSystem(),
		system.NewSpinSystem(),
		system.NewPointerTiltSystem(),
		system.NewScriptSystem(nil),
		system.NewHoverSystem(),
		system.NewContactSystem(input, nil),
		system.NewRenderSystem(),
		system.NewPageSystem(),
	)
}

// reload builds a fresh world from the scene spec. On failure the current
// world keeps running. The scroll offset survives so an edit does not jump
// back to the top.
func (g *Game) reload() error {
	w := ecs.NewWorld()
	if _, err := entity.BuildScene(w, g.sceneName); err != nil {
		return err
	}

	if g.world != nil {
		if old, ok := ecs.Single(g.world, component.PageStateComponent.Kind()); ok && old.Scroller != nil {
			if fresh, ok := ecs.Single(w, component.PageStateComponent.Kind()); ok {
				fresh.ViewportWidth, fresh.ViewportHeight = old.ViewportWidth, old.ViewportHeight
				fresh.Scroller.SetBounds(old.ContentHeight, old.ViewportHeight)
				fresh.Scroller.JumpTo(old.Scroller.Offset())
			}
		}
	}

	g.world = w
	g.scheduler = newScheduler(g.trace)
	g.inspector.Reset()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("watch: %s changed: %s", change.Kind, change.Path)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("watch: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}
	if err := g.reload(); err != nil {
		log.Printf("reload: %v", err)
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showInspector = !g.showInspector
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.reload(); err != nil {
			log.Printf("reload: %v", err)
		}
	}

	if state, ok := ecs.Single(g.world, component.PageStateComponent.Kind()); ok {
		state.ViewportWidth = g.width
		state.ViewportHeight = g.height
	}

	g.scheduler.Update(g.world)

	if g.showInspector {
		g.inspector.Refresh(g.world)
		g.inspector.UI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)

	if g.showInspector {
		g.inspector.UI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
