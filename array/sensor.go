package array

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-masw/dsp/core"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
)

// Component names the orientation of one recorded component of a receiver.
type Component string

const (
	Vertical   Component = "vertical"
	Radial     Component = "radial"
	Transverse Component = "transverse"
)

// Sensor is a physical receiver at position X (metres along the array
// line) holding one record per component. The vertical component is the
// one exposed to the array transforms.
type Sensor struct {
	X          float64
	components map[Component]*timeseries.TimeSeries
}

// NewSensor creates a receiver with a vertical component.
func NewSensor(x float64, vertical *timeseries.TimeSeries) (*Sensor, error) {
	if !core.IsFinite(x) {
		return nil, fmt.Errorf("%w: sensor position %v", ErrGeometry, x)
	}
	if vertical == nil {
		return nil, fmt.Errorf("%w: sensor at %v has no vertical record", ErrGeometry, x)
	}
	return &Sensor{
		X:          x,
		components: map[Component]*timeseries.TimeSeries{Vertical: vertical},
	}, nil
}

// AddComponent attaches another component. It must share the vertical
// record's sample interval and sample count.
func (s *Sensor) AddComponent(c Component, ts *timeseries.TimeSeries) error {
	if ts == nil {
		return fmt.Errorf("%w: nil %s record", ErrGeometry, c)
	}
	ref := s.Representative()
	if ts.NSamples() != ref.NSamples() || !core.NearlyEqual(ts.Dt(), ref.Dt(), 1e-9) {
		return fmt.Errorf("%w: %s record sampling differs from vertical", ErrGeometry, c)
	}
	s.components[c] = ts
	return nil
}

// Component returns the record of component c.
func (s *Sensor) Component(c Component) (*timeseries.TimeSeries, bool) {
	ts, ok := s.components[c]
	return ts, ok
}

// Components returns the recorded component names in sorted order.
func (s *Sensor) Components() []Component {
	out := make([]Component, 0, len(s.components))
	for c := range s.components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Representative returns the record used by the array transforms.
func (s *Sensor) Representative() *timeseries.TimeSeries {
	return s.components[Vertical]
}
