package spectrum

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by spectrum functions.
var (
	ErrEmptyInput   = errors.New("spectrum: empty input")
	ErrInvalidStep  = errors.New("spectrum: invalid decimation step")
	ErrInvalidDelta = errors.New("spectrum: sample interval must be > 0")
)

// fftCache keeps one gonum plan per transform length. gonum plans are not
// safe for concurrent use, so each entry is guarded.
type fftCache struct {
	mu    sync.Mutex
	plans map[int]*fourier.FFT
}

var plans = fftCache{plans: map[int]*fourier.FFT{}}

func (c *fftCache) coefficients(x []float64) []complex128 {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[len(x)]
	if !ok {
		p = fourier.NewFFT(len(x))
		c.plans[len(x)] = p
	}
	return p.Coefficients(nil, x)
}

// RealFFT returns the non-negative frequency half of the discrete Fourier
// transform of x: len(x)/2+1 bins, unnormalized, with the
// exp(-j*2*pi*k*n/N) sign convention.
func RealFFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return plans.coefficients(x), nil
}

// Frequencies returns the frequency axis of a one-sided spectrum with nbins
// bins spaced df apart.
func Frequencies(nbins int, df float64) []float64 {
	if nbins <= 0 {
		return nil
	}
	out := make([]float64, nbins)
	for i := range out {
		out[i] = float64(i) * df
	}
	return out
}

// Resolution returns the bin spacing 1/(n*dt) of an n-sample record.
func Resolution(n int, dt float64) (float64, error) {
	if n <= 0 {
		return 0, ErrEmptyInput
	}
	if dt <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	return 1 / (float64(n) * dt), nil
}

// Decimate returns every step-th bin of in, starting at bin 0.
func Decimate(in []complex128, step int) ([]complex128, error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]complex128, 0, (len(in)+step-1)/step)
	for i := 0; i < len(in); i += step {
		out = append(out, in[i])
	}
	return out, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Power(out, re, im)
	return out
}

func split(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re, im = buf[:len(in)], buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
