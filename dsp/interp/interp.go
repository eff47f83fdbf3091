package interp

import (
	"errors"
	"math"
	"sort"
)

// Errors returned by interpolation functions.
var (
	ErrLengthMismatch = errors.New("interp: x and y must have the same length")
	ErrTooShort       = errors.New("interp: at least one sample is required")
	ErrNotMonotonic   = errors.New("interp: x must be strictly increasing")
)

// Linear interpolates the curve (xs, ys) at each query point. xs must be
// strictly increasing. Queries outside [xs[0], xs[len-1]] yield NaN.
func Linear(xs, ys, query []float64) ([]float64, error) {
	if err := validate(xs, ys); err != nil {
		return nil, err
	}
	out := make([]float64, len(query))
	for i, q := range query {
		out[i] = at(xs, ys, q)
	}
	return out, nil
}

func validate(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	if len(xs) == 0 {
		return ErrTooShort
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return ErrNotMonotonic
		}
	}
	return nil
}

func at(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x < xs[0] || x > xs[n-1] || math.IsNaN(x) {
		return math.NaN()
	}
	// First index with xs[j] >= x.
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	i := j - 1
	frac := (x - xs[i]) / (xs[j] - xs[i])
	return ys[i] + frac*(ys[j]-ys[i])
}
