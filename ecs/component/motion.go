package component

import (
	"github.com/milk9111/folio/geom"
	"github.com/milk9111/folio/scroll"
)

// Morph drives a particle cloud between named formations along a scroll
// timeline.
type Morph struct {
	Timeline   scroll.Timeline
	Formations map[string][]geom.Vec3
	// Bob is the amplitude of the vertical sine float added per particle.
	Bob float64
	// Opacity is used on hold phases; transitions flicker around
	// TransitionOpacity by Flicker.
	Opacity           float64
	TransitionOpacity float64
	Flicker           float64

	Step scroll.Step
}

var MorphComponent = NewComponent[Morph]()

// Attract eases each particle toward its target every tick, with the pointer
// offsetting the targets.
type Attract struct {
	Target  []geom.Vec3
	Rate    float64
	Pointer geom.Vec3
	Bob     float64
}

var AttractComponent = NewComponent[Attract]()

// Drift floats every particle around its rest position on a per-index sine
// wave. Rest is captured on the first tick.
type Drift struct {
	Amplitude geom.Vec3
	Speed     float64
	Rest      []geom.Vec3
}

var DriftComponent = NewComponent[Drift]()

// Spin rotates an entity at a constant rate in radians per second.
type Spin struct {
	Rate geom.Vec3
	// HoverRate multiplies Rate while the nearest Hoverable in the entity's
	// parent chain is hovered. Zero leaves the rate unchanged.
	HoverRate float64
}

var SpinComponent = NewComponent[Spin]()

// PointerTilt rotates and shifts an entity with the pointer around a base pose.
type PointerTilt struct {
	Yaw          float64
	Pitch        float64
	Shift        geom.Vec3
	BasePosition geom.Vec3
	BaseRotation geom.Vec3
}

var PointerTiltComponent = NewComponent[PointerTilt]()

// Script hands an entity's motion to a tengo script.
type Script struct {
	Path   string
	Params map[string]any
	Base   geom.Pose
}

var ScriptComponent = NewComponent[Script]()
