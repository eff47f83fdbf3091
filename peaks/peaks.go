package peaks

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// Fundamental is the mode number of the fundamental ridge.
const Fundamental = 0

// Peaks is one raw dispersion curve. Frequencies strictly increase and
// every slice has the same length. Mode numbers the ridge the curve was
// picked from; curves of different modes are never combined.
type Peaks struct {
	ID        string
	Method    string
	Mode      int
	Frequency []float64
	Velocity  []float64
	Power     []float64
}

// New validates and copies the triples into a fundamental-mode curve.
func New(id, method string, frequency, velocity, power []float64) (*Peaks, error) {
	return NewMode(id, method, Fundamental, frequency, velocity, power)
}

// NewMode is [New] for a curve picked from ridge mode.
func NewMode(id, method string, mode int, frequency, velocity, power []float64) (*Peaks, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalid)
	}
	if mode < 0 {
		return nil, fmt.Errorf("%w: %s: negative mode %d", ErrInvalid, id, mode)
	}
	n := len(frequency)
	if len(velocity) != n || len(power) != n {
		return nil, fmt.Errorf("%w: %s: %d frequencies, %d velocities, %d powers",
			ErrInvalid, id, n, len(velocity), len(power))
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s: no points", ErrInvalid, id)
	}
	for i := 0; i < n; i++ {
		if !core.IsFinite(frequency[i]) || !core.IsFinite(velocity[i]) || !core.IsFinite(power[i]) {
			return nil, fmt.Errorf("%w: %s: non-finite value at point %d", ErrInvalid, id, i)
		}
		if frequency[i] <= 0 || velocity[i] <= 0 {
			return nil, fmt.Errorf("%w: %s: non-positive frequency or velocity at point %d", ErrInvalid, id, i)
		}
		if i > 0 && !(frequency[i] > frequency[i-1]) {
			return nil, fmt.Errorf("%w: %s: frequencies must strictly increase at point %d", ErrInvalid, id, i)
		}
	}
	return &Peaks{
		ID:        id,
		Method:    method,
		Mode:      mode,
		Frequency: core.Clone(frequency),
		Velocity:  core.Clone(velocity),
		Power:     core.Clone(power),
	}, nil
}

// Len returns the number of points.
func (p *Peaks) Len() int { return len(p.Frequency) }

// Wavelength returns velocity/frequency for every point.
func (p *Peaks) Wavelength() []float64 {
	out := make([]float64, len(p.Frequency))
	for i, f := range p.Frequency {
		out[i] = p.Velocity[i] / f
	}
	return out
}

// Slowness returns 1/velocity for every point.
func (p *Peaks) Slowness() []float64 {
	out := make([]float64, len(p.Velocity))
	for i, v := range p.Velocity {
		out[i] = 1 / v
	}
	return out
}

// Clone returns a deep copy.
func (p *Peaks) Clone() *Peaks {
	return &Peaks{
		ID:        p.ID,
		Method:    p.Method,
		Mode:      p.Mode,
		Frequency: core.Clone(p.Frequency),
		Velocity:  core.Clone(p.Velocity),
		Power:     core.Clone(p.Power),
	}
}

// Equal reports whether two curves carry the same tags and bit-identical
// triples.
func (p *Peaks) Equal(o *Peaks) bool {
	if p.ID != o.ID || p.Method != o.Method || p.Mode != o.Mode || p.Len() != o.Len() {
		return false
	}
	for i := range p.Frequency {
		if p.Frequency[i] != o.Frequency[i] || p.Velocity[i] != o.Velocity[i] || p.Power[i] != o.Power[i] {
			return false
		}
	}
	return true
}

func (p *Peaks) String() string {
	if p.Len() == 0 {
		return fmt.Sprintf("Peaks(%s, %s, mode %d, empty)", p.ID, p.Method, p.Mode)
	}
	return fmt.Sprintf("Peaks(%s, %s, mode %d, %d points, %.3g-%.3g Hz)",
		p.ID, p.Method, p.Mode, p.Len(), p.Frequency[0], p.Frequency[p.Len()-1])
}
