package timeseries

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// delayTolerance is the allowed deviation, in samples, of delay from an
// integer multiple of dt.
const delayTolerance = 1e-6

// TimeSeries is one uniformly sampled channel of an active-source record.
//
// The zero value is not usable; construct with [New] or [FromTrace].
type TimeSeries struct {
	amp      []float64
	dt       float64
	delay    float64
	nstacks  int
	multiple int
}

// Option configures a TimeSeries at construction.
type Option func(*config)

type config struct {
	delay   float64
	nstacks int
}

func defaultConfig() config {
	return config{nstacks: 1}
}

// WithDelay sets the time of the first sample relative to the trigger.
func WithDelay(delay float64) Option {
	return func(c *config) {
		c.delay = delay
	}
}

// WithNStacks sets the number of impacts already summed into the record.
func WithNStacks(n int) Option {
	return func(c *config) {
		c.nstacks = n
	}
}

// New creates a TimeSeries from a copy of amplitude sampled every dt
// seconds.
func New(amplitude []float64, dt float64, opts ...Option) (*TimeSeries, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(amplitude) == 0 {
		return nil, fmt.Errorf("%w: amplitude must not be empty", ErrValue)
	}
	if !(dt > 0) || !core.IsFinite(dt) {
		return nil, fmt.Errorf("%w: dt must be > 0, got %v", ErrValue, dt)
	}
	if err := checkStacks(cfg.nstacks); err != nil {
		return nil, err
	}
	if err := checkDelay(cfg.delay); err != nil {
		return nil, err
	}
	if !core.IsMultiple(cfg.delay, dt, delayTolerance) {
		return nil, fmt.Errorf("%w: delay %v is not a multiple of dt %v", ErrValue, cfg.delay, dt)
	}

	return &TimeSeries{
		amp:      core.Clone(amplitude),
		dt:       dt,
		delay:    cfg.delay,
		nstacks:  cfg.nstacks,
		multiple: 1,
	}, nil
}

// Clone returns a deep copy of ts.
func (ts *TimeSeries) Clone() *TimeSeries {
	c := *ts
	c.amp = core.Clone(ts.amp)
	return &c
}

// Amplitude returns a copy of the samples.
func (ts *TimeSeries) Amplitude() []float64 { return core.Clone(ts.amp) }

// NSamples returns the number of samples, including zero padding.
func (ts *TimeSeries) NSamples() int { return len(ts.amp) }

// Dt returns the sample interval in seconds.
func (ts *TimeSeries) Dt() float64 { return ts.dt }

// Delay returns the time of the first sample relative to the trigger.
func (ts *TimeSeries) Delay() float64 { return ts.delay }

// NStacks returns the number of impacts in the record.
func (ts *TimeSeries) NStacks() int { return ts.nstacks }

// Multiple returns the spectral decimation factor set by the last ZeroPad.
func (ts *TimeSeries) Multiple() int { return ts.multiple }

// Df returns the frequency step of the record's spectrum,
// multiple/(nsamples*dt).
func (ts *TimeSeries) Df() float64 {
	return float64(ts.multiple) / (float64(len(ts.amp)) * ts.dt)
}

// Duration returns the time spanned from the first to the last sample.
func (ts *TimeSeries) Duration() float64 {
	return float64(len(ts.amp)-1) * ts.dt
}

// Time returns the absolute time of every sample.
func (ts *TimeSeries) Time() []float64 {
	out := make([]float64, len(ts.amp))
	for i := range out {
		out[i] = ts.delay + float64(i)*ts.dt
	}
	return out
}

// String implements fmt.Stringer.
func (ts *TimeSeries) String() string {
	return fmt.Sprintf("TimeSeries(nsamples=%d, dt=%g, delay=%g, nstacks=%d)",
		len(ts.amp), ts.dt, ts.delay, ts.nstacks)
}

func sameDt(a, b float64) bool {
	return core.NearlyEqual(a, b, 1e-9)
}
