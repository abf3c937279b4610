package scroll

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDegenerateRange = errors.New("scroll: range start must be below end")
	ErrRangeBounds     = errors.New("scroll: range must lie within [0,1]")
)

// Range is the slice of page scroll progress during which an object is active.
type Range struct {
	Start float64
	End   float64
}

// Validate reports whether r can be used as a band.
func (r Range) Validate() error {
	if !finite(r.Start) || !finite(r.End) {
		return fmt.Errorf("%w: got (%g, %g)", ErrRangeBounds, r.Start, r.End)
	}
	if r.Start < 0 || r.Start > 1 || r.End < 0 || r.End > 1 {
		return fmt.Errorf("%w: got (%g, %g)", ErrRangeBounds, r.Start, r.End)
	}
	if r.Start >= r.End {
		return fmt.Errorf("%w: got (%g, %g)", ErrDegenerateRange, r.Start, r.End)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
