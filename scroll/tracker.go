package scroll

import (
	"math"
	"time"
)

type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Sample is the page scroll state after one tracker update.
type Sample struct {
	Offset    float64
	Progress  float64
	Direction Direction
	// Velocity is the absolute scroll speed in pixels per millisecond.
	Velocity float64
}

// Tracker turns raw pixel offsets into progress samples. It is the only writer
// of the page scroll state; everything downstream reads its Sample.
type Tracker struct {
	last     Sample
	lastTime time.Time
	started  bool
}

// Progress maps a pixel offset to the fraction of the scrollable height.
func Progress(offset, contentHeight, viewportHeight float64) float64 {
	scrollable := contentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return Clamp(offset/scrollable, 0, 1)
}

// Update records a new offset observed at now.
func (t *Tracker) Update(offset, contentHeight, viewportHeight float64, now time.Time) Sample {
	prevOffset := 0.0
	velocity := 0.0
	if t.started {
		prevOffset = t.last.Offset
		velocity = t.last.Velocity
		if dt := now.Sub(t.lastTime).Milliseconds(); dt > 0 {
			velocity = math.Abs((offset - prevOffset) / float64(dt))
		}
	}

	dir := Up
	if offset > prevOffset {
		dir = Down
	}
	if !t.started {
		dir = Down
	}

	t.last = Sample{
		Offset:    offset,
		Progress:  Progress(offset, contentHeight, viewportHeight),
		Direction: dir,
		Velocity:  velocity,
	}
	t.lastTime = now
	t.started = true
	return t.last
}
