package geom

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrUnknownFormation = errors.New("geom: unknown formation")

// FormationSpec describes a particle arrangement. The same seed always yields
// the same points.
type FormationSpec struct {
	Kind   string
	Count  int
	Seed   int64
	Spread Vec3
	Radius float64
	Jitter float64
}

// BuildFormation generates Count particle positions.
func BuildFormation(s FormationSpec) ([]Vec3, error) {
	if s.Count <= 0 {
		return nil, fmt.Errorf("geom: formation %q: count must be positive", s.Kind)
	}
	rng := rand.New(rand.NewSource(s.Seed))
	switch s.Kind {
	case "scattered":
		spread := s.Spread
		if spread == (Vec3{}) {
			spread = V(20, 20, 10)
		}
		return Scattered(rng, s.Count, spread), nil
	case "ring":
		return Ring(rng, s.Count, orFloat(s.Radius, 3), s.Jitter), nil
	case "hero":
		return HeroWave(rng, s.Count), nil
	case "projects":
		return ProjectShapes(rng, s.Count), nil
	case "about":
		return AboutSpiral(s.Count, orFloat(s.Radius, 3)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormation, s.Kind)
	}
}

// Scattered fills a box of the given extent centered on the origin.
func Scattered(rng *rand.Rand, n int, spread Vec3) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		out[i] = Vec3{
			(rng.Float64() - 0.5) * spread.X,
			(rng.Float64() - 0.5) * spread.Y,
			(rng.Float64() - 0.5) * spread.Z,
		}
	}
	return out
}

// Ring is a flattened ellipse, squashed to a sixth of its width on Y.
func Ring(rng *rand.Rand, n int, radius, jitter float64) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		a := float64(i) / float64(n) * 2 * math.Pi
		out[i] = Vec3{
			math.Cos(a)*radius + (rng.Float64()-0.5)*jitter,
			math.Sin(a)*radius/6 + (rng.Float64()-0.5)*jitter,
			(rng.Float64() - 0.5) * jitter,
		}
	}
	return out
}

// HeroWave is a double loop with a slow vertical ripple.
func HeroWave(rng *rand.Rand, n int) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		fi := float64(i)
		a := fi / float64(n) * 4 * math.Pi
		r := 2 + math.Sin(fi*0.1)*0.5
		out[i] = Vec3{
			math.Cos(a) * r,
			math.Sin(a)*0.5 + math.Sin(fi*0.05)*0.2,
			(rng.Float64() - 0.5) * 0.5,
		}
	}
	return out
}

// ProjectShapes splits the particles between a cube on the left, a pyramid in
// the middle and a sphere shell on the right.
func ProjectShapes(rng *rand.Rand, n int) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		switch i % 3 {
		case 0:
			out[i] = Vec3{-2 + rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5}
		case 1:
			a := float64(i) / float64(n) * 2 * math.Pi
			h := rng.Float64()
			out[i] = Vec3{math.Cos(a) * (1 - h) * 0.5, h - 0.5, math.Sin(a) * (1 - h) * 0.5}
		default:
			a1 := rng.Float64() * 2 * math.Pi
			a2 := rng.Float64() * math.Pi
			const r = 0.8
			out[i] = Vec3{2 + math.Cos(a1)*math.Sin(a2)*r, math.Cos(a2) * r, math.Sin(a1) * math.Sin(a2) * r}
		}
	}
	return out
}

// AboutSpiral winds three turns outward while climbing from -1 to 1.
func AboutSpiral(n int, radius float64) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		f := float64(i) / float64(n)
		a := f * 6 * math.Pi
		out[i] = Vec3{math.Cos(a) * f * radius, (f - 0.5) * 2, math.Sin(a) * f * radius}
	}
	return out
}
