package component

import "image/color"

// Hoverable grows an entity while the pointer is over it.
type Hoverable struct {
	Label      string
	Radius     float64
	HoverScale float64
	Rate       float64
	// HoverColor replaces the mesh color while hovered when set.
	HoverColor color.Color

	Hovered bool
	Scale   float64
}

var HoverableComponent = NewComponent[Hoverable]()
