package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/ecs/entity"
	"github.com/milk9111/folio/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the band inspector and frame stats")
	trace := flag.Bool("trace", false, "log band values for every banded object each frame")
	sceneName := flag.String("scene", entity.DefaultScene, "scene spec in prefabs/")
	watch := flag.Bool("watch", false, "reload the scene when prefab files change")
	prefabDir := flag.String("prefabs", prefabs.DiskRoot, "directory checked for prefab overrides")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.DiskRoot = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("folio")

	game, err := NewGame(*sceneName, *debug, *trace, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
