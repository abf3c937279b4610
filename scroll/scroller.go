package scroll

// Scroller owns the document offset. Input moves the target, and the current
// offset eases toward it once per frame.
type Scroller struct {
	Smoothness float64

	target  float64
	current float64
	max     float64
}

func NewScroller(smoothness float64) *Scroller {
	if smoothness <= 0 || smoothness > 1 {
		smoothness = 0.2
	}
	return &Scroller{Smoothness: smoothness}
}

// SetBounds sets the largest reachable offset and clamps both offsets to it.
func (s *Scroller) SetBounds(contentHeight, viewportHeight float64) {
	s.max = contentHeight - viewportHeight
	if s.max < 0 {
		s.max = 0
	}
	s.target = Clamp(s.target, 0, s.max)
	s.current = Clamp(s.current, 0, s.max)
}

// ScrollBy moves the target offset by delta pixels.
func (s *Scroller) ScrollBy(delta float64) {
	s.target = Clamp(s.target+delta, 0, s.max)
}

// ScrollTo sets the target offset.
func (s *Scroller) ScrollTo(offset float64) {
	s.target = Clamp(offset, 0, s.max)
}

// JumpTo moves both offsets at once, skipping the ease.
func (s *Scroller) JumpTo(offset float64) {
	s.target = Clamp(offset, 0, s.max)
	s.current = s.target
}

// Step advances the current offset one frame and returns it.
func (s *Scroller) Step() float64 {
	s.current = Approach(s.current, s.target, s.Smoothness)
	if d := s.target - s.current; d < 0.5 && d > -0.5 {
		s.current = s.target
	}
	return s.current
}

func (s *Scroller) Offset() float64 { return s.current }
func (s *Scroller) Target() float64 { return s.target }
func (s *Scroller) Max() float64    { return s.max }
