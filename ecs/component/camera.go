package component

import (
	"image/color"

	"github.com/milk9111/folio/geom"
)

type Camera struct {
	View       geom.Camera
	Background color.Color
}

var CameraComponent = NewComponent[Camera]()
