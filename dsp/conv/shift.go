package conv

// Shift returns a copy of x moved by lag samples. Positive lags delay the
// signal (zeros enter at the start), negative lags advance it (zeros enter
// at the end). Samples pushed past either end are discarded.
func Shift(x []float64, lag int) []float64 {
	out := make([]float64, len(x))
	n := len(x)
	switch {
	case lag >= n || -lag >= n:
		return out
	case lag > 0:
		copy(out[lag:], x[:n-lag])
	case lag < 0:
		copy(out, x[-lag:])
	default:
		copy(out, x)
	}
	return out
}
