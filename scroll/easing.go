package scroll

// Smoothstep is the cubic Hermite ease 3t²-2t³ over t clamped to [0,1].
func Smoothstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Approach moves current toward target by rate, the fraction of the remaining
// distance covered per frame.
func Approach(current, target, rate float64) float64 {
	return current + (target-current)*rate
}
