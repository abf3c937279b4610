package scroll

import "math"

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends a toward b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Normalize maps global progress onto r, clamped to [0,1]. A degenerate range
// yields 0.
func Normalize(global float64, r Range) float64 {
	span := r.End - r.Start
	if span <= 0 {
		return 0
	}
	return Clamp((global-r.Start)/span, 0, 1)
}

// Tent rises from 0 to 1 over the first half of n and falls back to 0 over the
// second half.
func Tent(n float64) float64 {
	if n < 0.5 {
		return n * 2
	}
	return (1 - n) * 2
}

// LocalProgress is the per-object animation progress for a global scroll
// position: 0 at both ends of r, 1 at its midpoint.
func LocalProgress(global float64, r Range) float64 {
	return Clamp(Tent(Normalize(global, r)), 0, 1)
}

// Band describes how an object's visuals follow its scroll range.
type Band struct {
	Range      Range
	ScaleMin   float64
	ScaleMax   float64
	OpacityMin float64
	OpacityMax float64
}

// DefaultBand grows from a tenth of full size and fades up to opacity.
func DefaultBand(r Range, opacity float64) Band {
	return Band{
		Range:      r,
		ScaleMin:   0.1,
		ScaleMax:   1,
		OpacityMin: 0,
		OpacityMax: opacity,
	}
}

// Visual is what the renderer needs from a band for one frame.
type Visual struct {
	Normalized float64
	Progress   float64
	Scale      float64
	Opacity    float64
	Visible    bool
}

// Derive computes the visual scalars of b at a global scroll position.
func Derive(global float64, b Band) Visual {
	n := Normalize(global, b.Range)
	p := LocalProgress(global, b.Range)
	return Visual{
		Normalized: n,
		Progress:   p,
		Scale:      Lerp(b.ScaleMin, b.ScaleMax, p),
		Opacity:    Lerp(b.OpacityMin, b.OpacityMax, p),
		Visible:    p > 0,
	}
}
