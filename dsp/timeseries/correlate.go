package timeseries

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/conv"
)

// Crosscorr returns the full linear cross-correlation of a against b,
// len(a)+len(b)-1 samples at the common sample interval. Index k holds lag
// k-(len(b)-1), so a copy of a delayed by d samples peaks at lag -d and a
// copy advanced by d samples peaks at lag +d.
func Crosscorr(a, b *TimeSeries) ([]float64, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	corr, err := conv.Correlate(a.amp, b.amp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return corr, nil
}

// CrosscorrShift returns the samples of b moved by the lag that maximizes
// Crosscorr(a, b), so that b lines up with a. Vacated samples are zero;
// samples moved past the end are dropped. The first maximum wins ties.
func CrosscorrShift(a, b *TimeSeries) ([]float64, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	lag, err := conv.BestLag(a.amp, b.amp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return conv.Shift(b.amp, lag), nil
}

func checkPair(a, b *TimeSeries) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil series", ErrType)
	}
	if !sameDt(a.dt, b.dt) {
		return fmt.Errorf("%w: dt %v != %v", ErrShapeMismatch, a.dt, b.dt)
	}
	return nil
}
