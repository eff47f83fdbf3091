package wavefield

import (
	"context"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-masw/array"
	"github.com/cwbudde/algo-masw/dsp/spectrum"
)

// Transform computes the dispersion image of arr over the trial grid.
// Every channel must already be padded to a common length.
func Transform(ctx context.Context, arr *array.Array1D, grid Grid, opts ...Option) (*Surface, error) {
	sp, err := arr.Spectra()
	if err != nil {
		return nil, err
	}
	return TransformSpectra(ctx, sp, grid, opts...)
}

// TransformSpectra is [Transform] on a precomputed spectra snapshot. sp is
// only read.
func TransformSpectra(ctx context.Context, sp *array.Spectra, grid Grid, opts ...Option) (*Surface, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if grid.Len() < 2 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}
	if len(sp.Bins) < 2 || len(sp.Offsets) != len(sp.Bins) {
		return nil, fmt.Errorf("%w: %d channels for %d offsets", array.ErrGeometry, len(sp.Bins), len(sp.Offsets))
	}
	for c, b := range sp.Bins {
		if len(b) != len(sp.Frequencies) {
			return nil, fmt.Errorf("%w: channel %d has %d bins, want %d", array.ErrGeometry, c, len(b), len(sp.Frequencies))
		}
	}

	bins := band(sp.Frequencies, cfg.fmin, cfg.fmax)
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w: [%v, %v] Hz", ErrEmptyBand, cfg.fmin, cfg.fmax)
	}

	surf := &Surface{
		Method:      cfg.method.String(),
		Frequencies: make([]float64, len(bins)),
		Velocities:  grid.Velocities(),
		Power:       make([][]float64, len(bins)),
	}
	for r, b := range bins {
		surf.Frequencies[r] = sp.Frequencies[b]
	}

	k := kernel{cfg: cfg, sp: sp, velocities: surf.Velocities}
	workers := min(cfg.workers, len(bins))
	rows := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			column := make([]complex128, len(sp.Bins))
			for r := range rows {
				if ctx.Err() != nil {
					continue
				}
				surf.Power[r] = k.row(bins[r], column)
			}
		}()
	}
	for r := range bins {
		if ctx.Err() != nil {
			break
		}
		rows <- r
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return surf, nil
}

// band returns the indices of the positive frequencies inside [fmin, fmax].
// DC is always excluded.
func band(freqs []float64, fmin, fmax float64) []int {
	var out []int
	for i, f := range freqs {
		if f > 0 && f >= fmin && f <= fmax {
			out = append(out, i)
		}
	}
	return out
}

type kernel struct {
	cfg        config
	sp         *array.Spectra
	velocities []float64
}

// row evaluates one frequency bin over every trial velocity. column is
// scratch space of one value per channel.
func (k *kernel) row(bin int, column []complex128) []float64 {
	f := k.sp.Frequencies[bin]
	offsets := k.sp.Offsets
	n := float64(len(offsets))

	for c := range column {
		column[c] = k.sp.Bins[c][bin]
	}
	k.weight(column)

	sums := make([]complex128, len(k.velocities))
	for j, v := range k.velocities {
		wavenumber := 2 * math.Pi * f / v
		var sum complex128
		for c, x := range offsets {
			sum += column[c] * k.steer(wavenumber*x)
		}
		sums[j] = sum
	}
	if k.cfg.method == FDBF {
		out := spectrum.Power(sums)
		floats.Scale(1/(n*n), out)
		return out
	}
	out := spectrum.Magnitude(sums)
	floats.Scale(1/n, out)
	return out
}

func (k *kernel) weight(column []complex128) {
	unit := (k.cfg.method == PhaseShift && k.cfg.normalize) ||
		(k.cfg.method == FDBF && k.cfg.weighting == WeightInverseAmplitude)
	if unit {
		mag := spectrum.Magnitude(column)
		for c, m := range mag {
			if m == 0 {
				column[c] = 0
				continue
			}
			column[c] /= complex(m, 0)
		}
		return
	}
	if k.cfg.method == FDBF && k.cfg.weighting == WeightSqrt {
		for c, x := range k.sp.Offsets {
			column[c] *= complex(math.Sqrt(x), 0)
		}
	}
}

// steer returns the steering coefficient for phase kx.
func (k *kernel) steer(kx float64) complex128 {
	if k.cfg.method == FDBF && k.cfg.steering == SteerCylindrical {
		// H0^(2)(z) = J0(z) - j*Y0(z); the steering vector undoes its phase.
		arg := math.Atan2(-math.Y0(kx), math.J0(kx))
		s, c := math.Sincos(arg)
		return complex(c, -s)
	}
	s, c := math.Sincos(kx)
	return complex(c, s)
}
