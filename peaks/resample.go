package peaks

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-masw/dsp/interp"
)

// Resample linearly interpolates velocity and power onto grid. Grid
// frequencies outside the curve's range are dropped rather than
// extrapolated; if none fall inside, the result is [ErrNoOverlap].
func (p *Peaks) Resample(grid []float64) (*Peaks, error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	vel, err := interp.Linear(p.Frequency, p.Velocity, grid)
	if err != nil {
		return nil, fmt.Errorf("peaks: resample %s: %w", p.ID, err)
	}
	pow, err := interp.Linear(p.Frequency, p.Power, grid)
	if err != nil {
		return nil, fmt.Errorf("peaks: resample %s: %w", p.ID, err)
	}

	out := &Peaks{ID: p.ID, Method: p.Method, Mode: p.Mode}
	for i, f := range grid {
		if math.IsNaN(vel[i]) {
			continue
		}
		out.Frequency = append(out.Frequency, f)
		out.Velocity = append(out.Velocity, vel[i])
		out.Power = append(out.Power, pow[i])
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: %s does not overlap the resampling grid", ErrNoOverlap, p.ID)
	}
	return out, nil
}

func checkGrid(grid []float64) error {
	if len(grid) == 0 {
		return fmt.Errorf("%w: empty frequency grid", ErrInvalid)
	}
	for i, f := range grid {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite grid frequency at %d", ErrInvalid, i)
		}
		if i > 0 && !(f > grid[i-1]) {
			return fmt.Errorf("%w: grid frequencies must strictly increase at %d", ErrInvalid, i)
		}
	}
	return nil
}
