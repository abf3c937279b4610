package component

// RenderLayer orders drawing; lower layers draw first, depth breaks ties.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
