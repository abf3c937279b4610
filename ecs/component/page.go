package component

import (
	"image/color"
	"time"

	"github.com/milk9111/folio/scroll"
)

// Section is one screen-sized block of the document.
type Section struct {
	ID    string
	Title string
	Body  []string
	// Height is measured in viewport heights.
	Height float64
}

// Page is the scrollable document drawn over the scene.
type Page struct {
	Sections   []Section
	Contact    string
	TextColor  color.Color
	PanelColor color.Color
	Accent     color.Color
	WheelSpeed float64
}

var PageComponent = NewComponent[Page]()

// PageState is the shared scroll state. ScrollSystem is its only writer.
type PageState struct {
	Scroller       *scroll.Scroller
	Tracker        scroll.Tracker
	Sample         scroll.Sample
	ContentHeight  float64
	ViewportWidth  float64
	ViewportHeight float64
}

var PageStateComponent = NewComponent[PageState]()

// PointerState is the shared pointer state. PointerSystem is its only writer.
type PointerState struct {
	Pointer scroll.Pointer
	ScreenX float64
	ScreenY float64
}

var PointerStateComponent = NewComponent[PointerState]()

// Clock counts ticks and elapsed seconds of scene time.
type Clock struct {
	Tick    int
	Elapsed float64
	Now     time.Time
}

var ClockComponent = NewComponent[Clock]()
