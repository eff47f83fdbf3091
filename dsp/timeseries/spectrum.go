package timeseries

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/spectrum"
)

// Spectrum returns the one-sided spectrum of the record at step Df and the
// matching frequency axis. Bin 0 is DC.
func (ts *TimeSeries) Spectrum() (frequencies []float64, bins []complex128, err error) {
	full, err := spectrum.RealFFT(ts.amp)
	if err != nil {
		return nil, nil, fmt.Errorf("timeseries spectrum: %w", err)
	}
	bins, err = spectrum.Decimate(full, ts.multiple)
	if err != nil {
		return nil, nil, fmt.Errorf("timeseries spectrum: %w", err)
	}
	df, err := spectrum.Resolution(len(ts.amp), ts.dt)
	if err != nil {
		return nil, nil, fmt.Errorf("timeseries spectrum: %w", err)
	}
	return spectrum.Frequencies(len(bins), df*float64(ts.multiple)), bins, nil
}
