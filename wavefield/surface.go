package wavefield

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-masw/dsp/core"
	"github.com/cwbudde/algo-masw/peaks"
)

// Surface is a dispersion image. Power[i][j] is the power at
// Frequencies[i] and Velocities[j]. It holds plain slices only, so plotting
// code can consume it directly.
type Surface struct {
	Method      string
	Frequencies []float64
	Velocities  []float64
	Power       [][]float64
}

// Clone returns a deep copy.
func (s *Surface) Clone() *Surface {
	out := &Surface{
		Method:      s.Method,
		Frequencies: core.Clone(s.Frequencies),
		Velocities:  core.Clone(s.Velocities),
		Power:       make([][]float64, len(s.Power)),
	}
	for i, row := range s.Power {
		out.Power[i] = core.Clone(row)
	}
	return out
}

// Normalized returns a copy with every frequency row scaled to a maximum
// of 1. Rows with no energy stay zero.
func (s *Surface) Normalized() *Surface {
	out := s.Clone()
	for _, row := range out.Power {
		if peak := floats.Max(row); peak > 0 {
			floats.Scale(1/peak, row)
		}
	}
	return out
}

// Decibels returns a copy of the power in dB (10*log10).
func (s *Surface) Decibels() [][]float64 {
	out := make([][]float64, len(s.Power))
	for i, row := range s.Power {
		out[i] = make([]float64, len(row))
		for j, p := range row {
			out[i][j] = core.LinearPowerToDB(p)
		}
	}
	return out
}

// Stack averages surfaces computed on identical axes, as in
// frequency-domain stacking of repeated shots.
func Stack(surfaces ...*Surface) (*Surface, error) {
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("%w: nothing to stack", ErrAxisMismatch)
	}
	out := surfaces[0].Clone()
	for i, s := range surfaces[1:] {
		if !sameAxes(out, s) {
			return nil, fmt.Errorf("%w: surface %d", ErrAxisMismatch, i+1)
		}
		for r, row := range s.Power {
			floats.Add(out.Power[r], row)
		}
	}
	inv := 1 / float64(len(surfaces))
	for _, row := range out.Power {
		floats.Scale(inv, row)
	}
	return out, nil
}

func sameAxes(a, b *Surface) bool {
	return floats.Equal(a.Frequencies, b.Frequencies) &&
		floats.Equal(a.Velocities, b.Velocities) &&
		len(a.Power) == len(b.Power)
}

// Peaks picks, per frequency, the trial velocity of maximum power. Ties
// go to the lowest velocity.
func (s *Surface) Peaks(id string) (*peaks.Peaks, error) {
	f := make([]float64, len(s.Frequencies))
	v := make([]float64, len(s.Frequencies))
	p := make([]float64, len(s.Frequencies))
	for i, row := range s.Power {
		j := floats.MaxIdx(row)
		f[i] = s.Frequencies[i]
		v[i] = s.Velocities[j]
		p[i] = row[j]
	}
	return peaks.New(id, s.Method, f, v, p)
}
