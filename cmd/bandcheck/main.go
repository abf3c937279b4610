// Command bandcheck builds a scene without opening a window and prints every
// scroll band and the morph phase at evenly spaced scroll positions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/folio/ecs"
	"github.com/milk9111/folio/ecs/component"
	"github.com/milk9111/folio/ecs/entity"
	"github.com/milk9111/folio/ecs/system"
	"github.com/milk9111/folio/prefabs"
)

func main() {
	sceneName := flag.String("scene", entity.DefaultScene, "scene spec in prefabs/")
	steps := flag.Int("steps", 10, "number of scroll intervals to sample")
	prefabDir := flag.String("prefabs", prefabs.DiskRoot, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.DiskRoot = *prefabDir
	if *steps < 1 {
		log.Fatal("bandcheck: -steps must be at least 1")
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildScene(w, *sceneName); err != nil {
		log.Fatal(err)
	}
	state, ok := ecs.Single(w, component.PageStateComponent.Kind())
	if !ok {
		log.Fatal("bandcheck: scene has no page state")
	}

	band := system.NewBandSystem(false)
	morph := system.NewMorphSystem()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "scroll\tobject\tnormalized\tprogress\tscale\topacity\tvisible")
	for i := 0; i <= *steps; i++ {
		global := float64(i) / float64(*steps)
		state.Sample.Progress = global
		band.Update(w)
		morph.Update(w)

		ecs.ForEach(w, component.VisualComponent.Kind(), func(e ecs.Entity, v *component.Visual) {
			fmt.Fprintf(tw, "%.2f\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%v\n", global, system.EntityLabel(w, e), v.Normalized, v.Progress, v.Scale, v.Opacity, v.Visible)
		})
		ecs.ForEach(w, component.MorphComponent.Kind(), func(e ecs.Entity, m *component.Morph) {
			fmt.Fprintf(tw, "%.2f\tphase\t%s\t%.3f\t\t\t\n", global, m.Step.Phase.Name, m.Step.Eased)
		})
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
