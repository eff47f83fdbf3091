package wavefield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spacing selects how trial values are distributed between their limits.
type Spacing int

const (
	SpacingLinear Spacing = iota
	SpacingLog
)

func (s Spacing) String() string {
	switch s {
	case SpacingLinear:
		return "linear"
	case SpacingLog:
		return "log"
	default:
		return "unknown"
	}
}

// ParseSpacing maps "linear" or "log" to a Spacing.
func ParseSpacing(name string) (Spacing, error) {
	switch name {
	case "linear", "lin", "":
		return SpacingLinear, nil
	case "log":
		return SpacingLog, nil
	}
	return SpacingLinear, fmt.Errorf("%w: unknown spacing %q", ErrInvalidGrid, name)
}

// Grid holds strictly increasing, strictly positive trial velocities.
type Grid struct {
	velocities []float64
}

// NewVelocityGrid spans n trial velocities over [minVel, maxVel].
func NewVelocityGrid(minVel, maxVel float64, n int, spacing Spacing) (Grid, error) {
	if err := checkLimits(minVel, maxVel, n); err != nil {
		return Grid{}, err
	}
	v := make([]float64, n)
	switch spacing {
	case SpacingLinear:
		floats.Span(v, minVel, maxVel)
	case SpacingLog:
		floats.LogSpan(v, minVel, maxVel)
	default:
		return Grid{}, fmt.Errorf("%w: unknown spacing %d", ErrInvalidGrid, spacing)
	}
	return Grid{velocities: v}, nil
}

// NewSlownessGrid spans n slownesses linearly over [minSlow, maxSlow]
// (s/m) and stores the corresponding velocities in increasing order.
func NewSlownessGrid(minSlow, maxSlow float64, n int) (Grid, error) {
	if err := checkLimits(minSlow, maxSlow, n); err != nil {
		return Grid{}, err
	}
	s := floats.Span(make([]float64, n), minSlow, maxSlow)
	v := make([]float64, n)
	for i := range s {
		v[n-1-i] = 1 / s[i]
	}
	return Grid{velocities: v}, nil
}

// GridFromVelocities validates an explicit list of trial velocities.
func GridFromVelocities(velocities []float64) (Grid, error) {
	if len(velocities) < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 trial velocities", ErrInvalidGrid)
	}
	for i, v := range velocities {
		if !(v > 0) || math.IsInf(v, 0) {
			return Grid{}, fmt.Errorf("%w: velocity %v at %d", ErrInvalidGrid, v, i)
		}
		if i > 0 && !(v > velocities[i-1]) {
			return Grid{}, fmt.Errorf("%w: velocities must strictly increase at %d", ErrInvalidGrid, i)
		}
	}
	return Grid{velocities: append([]float64(nil), velocities...)}, nil
}

func checkLimits(lo, hi float64, n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 trial values, got %d", ErrInvalidGrid, n)
	}
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: limits [%v, %v]", ErrInvalidGrid, lo, hi)
	}
	return nil
}

// Len returns the number of trial velocities.
func (g Grid) Len() int { return len(g.velocities) }

// Velocities returns a copy of the trial velocities.
func (g Grid) Velocities() []float64 { return append([]float64(nil), g.velocities...) }
