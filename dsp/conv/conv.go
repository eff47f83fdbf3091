package conv

import "errors"

// Errors returned by correlation functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// directThreshold is the product of input lengths below which Correlate
// stays in the time domain.
const directThreshold = 64 * 64

// CorrelateDirect computes the full cross-correlation of a and b with an
// O(N*M) time-domain sum.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]float64, len(a)+len(b)-1)
	if err := CorrelateDirectTo(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrelateDirectTo writes the full cross-correlation of a and b into dst,
// which must have length len(a)+len(b)-1.
func CorrelateDirectTo(dst, a, b []float64) error {
	n := len(a)
	m := len(b)
	if n == 0 || m == 0 {
		return ErrEmptyInput
	}
	if len(dst) != n+m-1 {
		return ErrLengthMismatch
	}

	for i := range dst {
		dst[i] = 0
	}

	// dst[j+m-1-i] accumulates a[j]*b[i], i.e. lag j-i.
	for i := 0; i < m; i++ {
		bi := b[i]
		if bi == 0 {
			continue
		}
		off := m - 1 - i
		for j := 0; j < n; j++ {
			dst[off+j] += a[j] * bi
		}
	}
	return nil
}
