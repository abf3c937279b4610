package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is the frame's raw input. Systems read through it so tests can
// drive them without a window.
type InputSource interface {
	Wheel() (x, y float64)
	Cursor() (x, y int)
	KeyPressed(key ebiten.Key) bool
	KeyJustPressed(key ebiten.Key) bool
}

type EbitenInput struct{}

func (EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (EbitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// StaticInput replays fixed values.
type StaticInput struct {
	WheelY  float64
	X, Y    int
	Pressed map[ebiten.Key]bool
	Just    map[ebiten.Key]bool
}

func (s *StaticInput) Wheel() (float64, float64) { return 0, s.WheelY }
func (s *StaticInput) Cursor() (int, int)        { return s.X, s.Y }

func (s *StaticInput) KeyPressed(key ebiten.Key) bool {
	return s.Pressed[key]
}

func (s *StaticInput) KeyJustPressed(key ebiten.Key) bool {
	return s.Just[key]
}

func inputOrDefault(in InputSource) InputSource {
	if in == nil {
		return EbitenInput{}
	}
	return in
}
