package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}
	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsMultiple reports whether x is an integer multiple of step, allowing a
// deviation of eps samples. step must be > 0.
func IsMultiple(x, step, eps float64) bool {
	if step <= 0 || !IsFinite(x) {
		return false
	}
	if eps <= 0 {
		eps = 1e-6
	}
	n := x / step
	return math.Abs(n-math.Round(n)) <= eps
}

// SampleIndex returns the index of the sample nearest to t for a uniformly
// sampled axis starting at t0 with spacing dt.
func SampleIndex(t, t0, dt float64) int {
	return int(math.Round((t - t0) / dt))
}

// NextPowerOfTwo returns the smallest power of two >= n. Values <= 1 give 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}
	if power == 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
