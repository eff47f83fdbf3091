package timeseries

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// ZeroPad appends zeros so that the record's spectrum has frequency step
// df.
//
// The required length is nreq = round(1/(df*dt)). When nreq exceeds the
// current sample count the record is padded to nreq and the multiple is 1.
// Otherwise the record is padded to nreq*m, with m the smallest power of
// two for which nreq*m covers the current samples, and [TimeSeries.Df]
// reports every m-th bin. Samples are never removed.
//
// The multiple is derived from the current, possibly already padded,
// length. Requesting a coarse step after a fine one therefore pads further
// instead of returning to the original length.
func (ts *TimeSeries) ZeroPad(df float64) error {
	if !(df > 0) || !core.IsFinite(df) {
		return fmt.Errorf("%w: df must be > 0, got %v", ErrValue, df)
	}

	n := len(ts.amp)
	nreq := int(math.Round(1 / (df * ts.dt)))
	if nreq < 1 {
		nreq = 1
	}

	if nreq > n {
		ts.amp = core.ZeroExtend(ts.amp, nreq)
		ts.multiple = 1
		return nil
	}

	m := core.NextPowerOfTwo((n + nreq - 1) / nreq)
	ts.amp = core.ZeroExtend(ts.amp, nreq*m)
	ts.multiple = m
	return nil
}
