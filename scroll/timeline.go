package scroll

import (
	"errors"
	"fmt"
)

var ErrTimelineGap = errors.New("scroll: timeline phases must tile [0,1]")

// Phase is one stretch of the page during which a particle system moves from
// one formation to another. From == To holds a formation.
type Phase struct {
	Name  string
	Start float64
	End   float64
	From  string
	To    string
}

// Hold reports whether the phase keeps a single formation.
func (p Phase) Hold() bool {
	return p.From == p.To
}

// Step is the resolved state of a timeline at one scroll position.
type Step struct {
	Index      int
	Phase      Phase
	Progress   float64
	Eased      float64
	Transition bool
}

type Timeline []Phase

// DefaultTimeline assembles the hero, projects and about formations.
func DefaultTimeline() Timeline {
	return Timeline{
		{Name: "hero", Start: 0, End: 0.25, From: "scattered", To: "hero"},
		{Name: "transition-to-projects", Start: 0.25, End: 0.4, From: "hero", To: "projects"},
		{Name: "projects", Start: 0.4, End: 0.65, From: "projects", To: "projects"},
		{Name: "transition-to-about", Start: 0.65, End: 0.8, From: "projects", To: "about"},
		{Name: "about", Start: 0.8, End: 1, From: "about", To: "about"},
	}
}

// Validate checks that phases are ordered, non-empty and cover [0,1] without
// gaps or overlaps.
func (t Timeline) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no phases", ErrTimelineGap)
	}
	if t[0].Start != 0 {
		return fmt.Errorf("%w: first phase %q starts at %g", ErrTimelineGap, t[0].Name, t[0].Start)
	}
	for i, p := range t {
		if err := (Range{Start: p.Start, End: p.End}).Validate(); err != nil {
			return fmt.Errorf("phase %q: %w", p.Name, err)
		}
		if p.From == "" || p.To == "" {
			return fmt.Errorf("phase %q: from and to formations are required", p.Name)
		}
		if i > 0 && t[i-1].End != p.Start {
			return fmt.Errorf("%w: %q ends at %g but %q starts at %g", ErrTimelineGap, t[i-1].Name, t[i-1].End, p.Name, p.Start)
		}
	}
	if last := t[len(t)-1]; last.End != 1 {
		return fmt.Errorf("%w: last phase %q ends at %g", ErrTimelineGap, last.Name, last.End)
	}
	return nil
}

// At resolves the phase active at global progress. Values outside [0,1] are
// clamped; 1 belongs to the last phase.
func (t Timeline) At(global float64) Step {
	if len(t) == 0 {
		return Step{}
	}
	g := Clamp(global, 0, 1)
	idx := len(t) - 1
	for i, p := range t {
		if g < p.End {
			idx = i
			break
		}
	}
	p := t[idx]
	progress := 1.0
	if !p.Hold() {
		progress = Normalize(g, Range{Start: p.Start, End: p.End})
	}
	return Step{
		Index:      idx,
		Phase:      p,
		Progress:   progress,
		Eased:      Smoothstep(progress),
		Transition: !p.Hold() && idx > 0,
	}
}
