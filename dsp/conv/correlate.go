package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Short inputs are correlated directly; longer ones use [CorrelateFFT].
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a)*len(b) <= directThreshold {
		return CorrelateDirect(a, b)
	}
	return CorrelateFFT(a, b)
}

// CorrelateFFT computes cross-correlation as IFFT(FFT(a) * conj(FFT(b))),
// zero-padded to avoid circular wrap-around.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	fftSize := core.NextPowerOfTwo(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		aFreq[i] *= bConj
	}

	// aPadded is free again and receives the circular correlation.
	if err := plan.Inverse(aPadded, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to the end.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(aPadded[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(aPadded[fftSize-m+1+i])
	}

	return result, nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Ties resolve to the lowest index. Returns -1 for empty input.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation against a second signal of length lenB the lag at
// index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// BestLag returns the lag at which b best matches a.
func BestLag(a, b []float64) (int, error) {
	corr, err := Correlate(a, b)
	if err != nil {
		return 0, err
	}
	idx, _ := FindPeak(corr)
	return LagFromIndex(idx, len(b)), nil
}
