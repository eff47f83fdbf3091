package peaks

import (
	"fmt"
	"math"
)

// FilterFrequency keeps points with min <= frequency <= max.
func (p *Peaks) FilterFrequency(minFreq, maxFreq float64) (*Peaks, error) {
	if err := checkRange("frequency", minFreq, maxFreq); err != nil {
		return nil, err
	}
	return p.keep(func(i int) bool {
		return p.Frequency[i] >= minFreq && p.Frequency[i] <= maxFreq
	}, "frequency")
}

// FilterVelocity keeps points with min <= velocity <= max.
func (p *Peaks) FilterVelocity(minVel, maxVel float64) (*Peaks, error) {
	if err := checkRange("velocity", minVel, maxVel); err != nil {
		return nil, err
	}
	return p.keep(func(i int) bool {
		return p.Velocity[i] >= minVel && p.Velocity[i] <= maxVel
	}, "velocity")
}

// FilterPower drops points whose power is below minPower.
func (p *Peaks) FilterPower(minPower float64) (*Peaks, error) {
	if math.IsNaN(minPower) {
		return nil, fmt.Errorf("%w: power threshold is NaN", ErrInvalid)
	}
	return p.keep(func(i int) bool { return p.Power[i] >= minPower }, "power")
}

// FilterWavelength keeps points whose wavelength lies in [min, max]. It is
// typically fed the limits of [array.Array1D.WavelengthLimits].
func (p *Peaks) FilterWavelength(minWavelength, maxWavelength float64) (*Peaks, error) {
	if err := checkRange("wavelength", minWavelength, maxWavelength); err != nil {
		return nil, err
	}
	return p.keep(func(i int) bool {
		w := p.Velocity[i] / p.Frequency[i]
		return w >= minWavelength && w <= maxWavelength
	}, "wavelength")
}

func (p *Peaks) keep(pred func(i int) bool, what string) (*Peaks, error) {
	out := &Peaks{ID: p.ID, Method: p.Method, Mode: p.Mode}
	for i := range p.Frequency {
		if !pred(i) {
			continue
		}
		out.Frequency = append(out.Frequency, p.Frequency[i])
		out.Velocity = append(out.Velocity, p.Velocity[i])
		out.Power = append(out.Power, p.Power[i])
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: %s filter removed every point of %s", ErrNoOverlap, what, p.ID)
	}
	return out, nil
}

func checkRange(what string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return fmt.Errorf("%w: %s range [%v, %v]", ErrInvalid, what, lo, hi)
	}
	return nil
}
