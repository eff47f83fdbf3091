package array

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-masw/dsp/core"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/dsp/window"
)

// positionTolerance is the distance (metres) below which a source counts
// as coincident with a receiver.
const positionTolerance = 1e-6

// Source is the impact position along the array line.
type Source struct {
	X float64
}

// Array1D is an ordered line of receivers and the source that excited
// them.
type Array1D struct {
	sensors []*Sensor
	source  Source
}

// New validates the geometry and sampling of sensors and returns the
// array. sensors must be ordered by strictly increasing position.
func New(sensors []*Sensor, source Source) (*Array1D, error) {
	if len(sensors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 sensors, got %d", ErrGeometry, len(sensors))
	}
	if !core.IsFinite(source.X) {
		return nil, fmt.Errorf("%w: source position %v", ErrGeometry, source.X)
	}
	for i, s := range sensors {
		if s == nil || s.Representative() == nil {
			return nil, fmt.Errorf("%w: sensor %d is empty", ErrGeometry, i)
		}
		if i > 0 && !(s.X > sensors[i-1].X) {
			return nil, fmt.Errorf("%w: positions must strictly increase (sensor %d at %v after %v)",
				ErrGeometry, i, s.X, sensors[i-1].X)
		}
		if math.Abs(s.X-source.X) < positionTolerance {
			return nil, fmt.Errorf("%w: source at %v coincides with sensor %d", ErrGeometry, source.X, i)
		}
	}

	arr := &Array1D{
		sensors: append([]*Sensor(nil), sensors...),
		source:  source,
	}
	if err := arr.checkSampling(); err != nil {
		return nil, err
	}
	return arr, nil
}

// FromRecords builds an array with one vertical sensor per record.
func FromRecords(records []*timeseries.TimeSeries, positions []float64, source Source) (*Array1D, error) {
	if len(records) != len(positions) {
		return nil, fmt.Errorf("%w: %d records for %d positions", ErrGeometry, len(records), len(positions))
	}
	sensors := make([]*Sensor, len(records))
	for i, r := range records {
		s, err := NewSensor(positions[i], r)
		if err != nil {
			return nil, err
		}
		sensors[i] = s
	}
	return New(sensors, source)
}

func (a *Array1D) checkSampling() error {
	ref := a.sensors[0].Representative()
	for i, s := range a.sensors[1:] {
		ts := s.Representative()
		if !core.NearlyEqual(ts.Dt(), ref.Dt(), 1e-9) {
			return fmt.Errorf("%w: sensor %d dt %v differs from %v", ErrGeometry, i+1, ts.Dt(), ref.Dt())
		}
		if ts.NSamples() != ref.NSamples() {
			return fmt.Errorf("%w: sensor %d has %d samples, want %d", ErrGeometry, i+1, ts.NSamples(), ref.NSamples())
		}
		if ts.Multiple() != ref.Multiple() {
			return fmt.Errorf("%w: sensor %d padding multiple %d differs from %d", ErrGeometry, i+1, ts.Multiple(), ref.Multiple())
		}
	}
	return nil
}

// NChannels returns the number of sensors.
func (a *Array1D) NChannels() int { return len(a.sensors) }

// Sensor returns the i-th sensor.
func (a *Array1D) Sensor(i int) *Sensor { return a.sensors[i] }

// Source returns the source.
func (a *Array1D) Source() Source { return a.source }

// Dt returns the common sample interval.
func (a *Array1D) Dt() float64 { return a.sensors[0].Representative().Dt() }

// NSamples returns the common sample count.
func (a *Array1D) NSamples() int { return a.sensors[0].Representative().NSamples() }

// Positions returns the receiver positions.
func (a *Array1D) Positions() []float64 {
	out := make([]float64, len(a.sensors))
	for i, s := range a.sensors {
		out[i] = s.X
	}
	return out
}

// Offsets returns the source-to-receiver distance of every channel.
func (a *Array1D) Offsets() []float64 {
	out := make([]float64, len(a.sensors))
	for i, s := range a.sensors {
		out[i] = math.Abs(s.X - a.source.X)
	}
	return out
}

// SourceInside reports whether the source lies between the first and last
// receivers.
func (a *Array1D) SourceInside() bool {
	return a.source.X > a.sensors[0].X && a.source.X < a.sensors[len(a.sensors)-1].X
}

// Length returns the distance between the first and last receivers.
func (a *Array1D) Length() float64 {
	return a.sensors[len(a.sensors)-1].X - a.sensors[0].X
}

// Spacing returns the smallest receiver spacing.
func (a *Array1D) Spacing() float64 {
	minSpacing := math.Inf(1)
	for i := 1; i < len(a.sensors); i++ {
		minSpacing = math.Min(minSpacing, a.sensors[i].X-a.sensors[i-1].X)
	}
	return minSpacing
}

// WavelengthLimits returns the shortest wavelength sampled without spatial
// aliasing (twice the minimum spacing) and the longest wavelength the
// array length resolves.
func (a *Array1D) WavelengthLimits() (minWavelength, maxWavelength float64) {
	return 2 * a.Spacing(), a.Length()
}

// Nyquist returns the temporal Nyquist frequency.
func (a *Array1D) Nyquist() float64 { return 1 / (2 * a.Dt()) }

// Trim applies [timeseries.TimeSeries.Trim] to every component. Every
// record is checked against the window first, so a failed trim leaves the
// array untouched.
func (a *Array1D) Trim(start, end float64) error {
	if err := a.checkSampling(); err != nil {
		return err
	}
	want := -1
	var err error
	a.each(func(s *Sensor, c Component, ts *timeseries.TimeSeries) {
		if err != nil {
			return
		}
		n, werr := ts.WindowLength(start, end)
		switch {
		case werr != nil:
			err = fmt.Errorf("sensor at %v, %s: %w", s.X, c, werr)
		case want < 0:
			want = n
		case n != want:
			err = fmt.Errorf("%w: sensor at %v, %s keeps %d samples of [%v, %v], want %d",
				ErrGeometry, s.X, c, n, start, end, want)
		}
	})
	if err != nil {
		return err
	}
	a.each(func(_ *Sensor, _ Component, ts *timeseries.TimeSeries) {
		// Cannot fail: the window was checked above.
		_ = ts.Trim(start, end)
	})
	return nil
}

// ZeroPad applies [timeseries.TimeSeries.ZeroPad] to every component.
func (a *Array1D) ZeroPad(df float64) error {
	if !(df > 0) || !core.IsFinite(df) {
		return fmt.Errorf("%w: df must be > 0, got %v", timeseries.ErrValue, df)
	}
	if err := a.checkSampling(); err != nil {
		return err
	}
	a.each(func(_ *Sensor, _ Component, ts *timeseries.TimeSeries) {
		_ = ts.ZeroPad(df)
	})
	return nil
}

// Taper applies [timeseries.TimeSeries.Taper] to every component.
func (a *Array1D) Taper(t window.Type, opts ...window.Option) {
	a.each(func(_ *Sensor, _ Component, ts *timeseries.TimeSeries) {
		ts.Taper(t, opts...)
	})
}

func (a *Array1D) each(fn func(*Sensor, Component, *timeseries.TimeSeries)) {
	for _, s := range a.sensors {
		for _, c := range s.Components() {
			fn(s, c, s.components[c])
		}
	}
}
