package wavefield

import (
	"fmt"
	"math"
	"runtime"
)

// Option configures a transform.
type Option func(*config) error

type config struct {
	method    Method
	weighting Weighting
	steering  Steering
	normalize bool
	fmin      float64
	fmax      float64
	workers   int
}

func defaultConfig() config {
	return config{
		method:  PhaseShift,
		fmin:    0,
		fmax:    math.Inf(1),
		workers: runtime.GOMAXPROCS(0),
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithMethod selects the transform. The default is [PhaseShift].
func WithMethod(m Method) Option {
	return func(c *config) error {
		if m != PhaseShift && m != FDBF {
			return fmt.Errorf("%w: method %d", ErrInvalidOption, m)
		}
		c.method = m
		return nil
	}
}

// WithWeighting sets the FDBF channel weights.
func WithWeighting(w Weighting) Option {
	return func(c *config) error {
		if w < WeightNone || w > WeightInverseAmplitude {
			return fmt.Errorf("%w: weighting %d", ErrInvalidOption, w)
		}
		c.weighting = w
		return nil
	}
}

// WithSteering sets the FDBF steering vector.
func WithSteering(s Steering) Option {
	return func(c *config) error {
		if s != SteerPlane && s != SteerCylindrical {
			return fmt.Errorf("%w: steering %d", ErrInvalidOption, s)
		}
		c.steering = s
		return nil
	}
}

// WithAmplitudeNormalization scales each channel spectrum to unit
// magnitude before the phase-shift sum.
func WithAmplitudeNormalization(on bool) Option {
	return func(c *config) error {
		c.normalize = on
		return nil
	}
}

// WithFrequencyRange restricts the output to bins with fmin <= f <= fmax.
// Bins outside the band are left out of the surface, not zeroed.
func WithFrequencyRange(fmin, fmax float64) Option {
	return func(c *config) error {
		if math.IsNaN(fmin) || math.IsNaN(fmax) || fmin < 0 || fmax < fmin {
			return fmt.Errorf("%w: frequency range [%v, %v]", ErrInvalidOption, fmin, fmax)
		}
		c.fmin, c.fmax = fmin, fmax
		return nil
	}
}

// WithWorkers sets the number of goroutines evaluating frequency rows.
// The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: workers %d", ErrInvalidOption, n)
		}
		c.workers = n
		return nil
	}
}
