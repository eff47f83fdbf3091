package timeseries

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-masw/dsp/core"
	"github.com/cwbudde/algo-masw/dsp/window"
)

// sampleTolerance absorbs rounding when a window edge falls on a sample.
const sampleTolerance = 1e-9

// Trim keeps the samples that lie inside the window [start, end] (seconds
// relative to the trigger). A window extending past the record is clamped
// to it; a window holding no sample fails with [ErrOutOfRange] and leaves
// the record untouched. The delay becomes the time of the first kept
// sample, which may be positive, and the padding multiple resets to 1.
func (ts *TimeSeries) Trim(start, end float64) error {
	i0, i1, err := ts.span(start, end)
	if err != nil {
		return err
	}

	kept := make([]float64, i1-i0+1)
	copy(kept, ts.amp[i0:i1+1])
	ts.amp = kept

	// Snap to the sample grid so repeated trims do not accumulate drift.
	ts.delay = float64(core.SampleIndex(ts.delay, 0, ts.dt)+i0) * ts.dt
	ts.multiple = 1
	return nil
}

// WindowLength returns the number of samples [TimeSeries.Trim] would keep
// for the window, or the error it would fail with.
func (ts *TimeSeries) WindowLength(start, end float64) (int, error) {
	i0, i1, err := ts.span(start, end)
	if err != nil {
		return 0, err
	}
	return i1 - i0 + 1, nil
}

// span returns the inclusive sample range inside [start, end].
func (ts *TimeSeries) span(start, end float64) (i0, i1 int, err error) {
	if !core.IsFinite(start) || !core.IsFinite(end) || start > end {
		return 0, 0, fmt.Errorf("%w: invalid window [%v, %v]", ErrOutOfRange, start, end)
	}

	n := len(ts.amp)
	first := ts.delay
	pos := func(t float64) float64 { return (t - first) / ts.dt }
	i0 = int(core.Clamp(math.Ceil(pos(start)-sampleTolerance), 0, float64(n)))
	i1 = int(core.Clamp(math.Floor(pos(end)+sampleTolerance), -1, float64(n-1)))
	if i1 < i0 {
		last := first + ts.Duration()
		return 0, 0, fmt.Errorf("%w: window [%v, %v] holds no sample of record [%v, %v]",
			ErrOutOfRange, start, end, first, last)
	}
	return i0, i1, nil
}

// Taper multiplies the record in place by a window spanning its current
// length, typically applied after Trim to suppress edge effects.
func (ts *TimeSeries) Taper(t window.Type, opts ...window.Option) {
	window.Apply(t, ts.amp, opts...)
}
