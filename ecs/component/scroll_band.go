package component

import "github.com/milk9111/folio/scroll"

// ScrollBand ties an entity's scale and opacity to a slice of page scroll.
type ScrollBand struct {
	Band scroll.Band
}

var ScrollBandComponent = NewComponent[ScrollBand]()

// Visual is the per-frame output of the band mapping. The renderer multiplies
// Scale into the transform and uses Opacity in place of the material's.
type Visual struct {
	Normalized float64
	Progress   float64
	Scale      float64
	Opacity    float64
	Visible    bool
}

var VisualComponent = NewComponent[Visual]()
