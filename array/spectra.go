package array

import (
	"fmt"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// Spectra is a snapshot of the per-channel spectra of an array at a common
// frequency step. Bins[c][k] is channel c at Frequencies[k]. The slices are
// owned by the snapshot; the array is not referenced.
type Spectra struct {
	Frequencies []float64
	Offsets     []float64
	Bins        [][]complex128
}

// NFrequencies returns the number of frequency bins.
func (s *Spectra) NFrequencies() int { return len(s.Frequencies) }

// Spectra transforms every channel's representative record. All channels
// must have been padded to the same length first.
func (a *Array1D) Spectra() (*Spectra, error) {
	if err := a.checkSampling(); err != nil {
		return nil, err
	}

	out := &Spectra{
		Offsets: a.Offsets(),
		Bins:    make([][]complex128, len(a.sensors)),
	}
	for c, s := range a.sensors {
		f, bins, err := s.Representative().Spectrum()
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
		if c == 0 {
			out.Frequencies = f
		} else if len(f) != len(out.Frequencies) || !core.NearlyEqual(f[len(f)-1], out.Frequencies[len(f)-1], 1e-9) {
			return nil, fmt.Errorf("%w: channel %d frequency axis differs", ErrGeometry, c)
		}
		out.Bins[c] = bins
	}
	return out, nil
}
