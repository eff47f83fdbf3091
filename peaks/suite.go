package peaks

import (
	"fmt"
	"sort"
)

// Suite is an ordered collection of curves with unique IDs.
type Suite struct {
	curves []*Peaks
	index  map[string]int
}

// NewSuite returns a suite holding curves in order.
func NewSuite(curves ...*Peaks) (*Suite, error) {
	s := &Suite{index: make(map[string]int, len(curves))}
	for _, p := range curves {
		if err := s.Append(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Append adds p to the end of the suite. IDs must be unique.
func (s *Suite) Append(p *Peaks) error {
	if p == nil || p.Len() == 0 {
		return fmt.Errorf("%w: empty curve", ErrInvalid)
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[p.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
	}
	s.index[p.ID] = len(s.curves)
	s.curves = append(s.curves, p)
	return nil
}

// Len returns the number of curves.
func (s *Suite) Len() int { return len(s.curves) }

// At returns the i-th curve.
func (s *Suite) At(i int) *Peaks { return s.curves[i] }

// Get returns the curve with the given ID.
func (s *Suite) Get(id string) (*Peaks, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.curves[i], true
}

// IDs returns the curve IDs in order.
func (s *Suite) IDs() []string {
	out := make([]string, len(s.curves))
	for i, p := range s.curves {
		out[i] = p.ID
	}
	return out
}

// Modes returns the distinct mode numbers present, ascending.
func (s *Suite) Modes() []int {
	seen := make(map[int]bool)
	var out []int
	for _, p := range s.curves {
		if !seen[p.Mode] {
			seen[p.Mode] = true
			out = append(out, p.Mode)
		}
	}
	sort.Ints(out)
	return out
}

// SelectMode returns the curves picked from ridge mode, in order. The
// result shares curves with s and may be empty.
func (s *Suite) SelectMode(mode int) *Suite {
	out := &Suite{index: make(map[string]int)}
	for _, p := range s.curves {
		if p.Mode == mode {
			out.index[p.ID] = len(out.curves)
			out.curves = append(out.curves, p)
		}
	}
	return out
}

// Equal reports whether both suites hold equal curves in the same order.
func (s *Suite) Equal(o *Suite) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := range s.curves {
		if !s.curves[i].Equal(o.curves[i]) {
			return false
		}
	}
	return true
}

// FilterFrequency applies [Peaks.FilterFrequency] to every curve.
func (s *Suite) FilterFrequency(minFreq, maxFreq float64) (*Suite, error) {
	return s.apply(func(p *Peaks) (*Peaks, error) { return p.FilterFrequency(minFreq, maxFreq) })
}

// FilterVelocity applies [Peaks.FilterVelocity] to every curve.
func (s *Suite) FilterVelocity(minVel, maxVel float64) (*Suite, error) {
	return s.apply(func(p *Peaks) (*Peaks, error) { return p.FilterVelocity(minVel, maxVel) })
}

// FilterPower applies [Peaks.FilterPower] to every curve.
func (s *Suite) FilterPower(minPower float64) (*Suite, error) {
	return s.apply(func(p *Peaks) (*Peaks, error) { return p.FilterPower(minPower) })
}

// FilterWavelength applies [Peaks.FilterWavelength] to every curve.
func (s *Suite) FilterWavelength(minWavelength, maxWavelength float64) (*Suite, error) {
	return s.apply(func(p *Peaks) (*Peaks, error) { return p.FilterWavelength(minWavelength, maxWavelength) })
}

// Resample applies [Peaks.Resample] to every curve.
func (s *Suite) Resample(grid []float64) (*Suite, error) {
	return s.apply(func(p *Peaks) (*Peaks, error) { return p.Resample(grid) })
}

func (s *Suite) apply(fn func(*Peaks) (*Peaks, error)) (*Suite, error) {
	out := &Suite{
		curves: make([]*Peaks, 0, len(s.curves)),
		index:  make(map[string]int, len(s.curves)),
	}
	for _, p := range s.curves {
		q, err := fn(p)
		if err != nil {
			return nil, err
		}
		out.index[q.ID] = len(out.curves)
		out.curves = append(out.curves, q)
	}
	return out, nil
}
