package peaks

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-masw/dsp/interp"
)

// Combine selects how curves are reduced at each frequency.
type Combine int

const (
	// Mean reports the arithmetic mean with the sample standard deviation.
	Mean Combine = iota
	// Median reports the median with the interquartile range.
	Median
)

func (c Combine) String() string {
	switch c {
	case Mean:
		return "mean"
	case Median:
		return "median"
	default:
		return fmt.Sprintf("Combine(%d)", int(c))
	}
}

// Statistics is the reduced curve of one mode of a suite. Frequencies
// without data are omitted, so every slice has the same length and
// Count[i] >= 1.
type Statistics struct {
	Combine   Combine
	Mode      int
	Frequency []float64
	Center    []float64
	Spread    []float64
	Count     []int
}

// Len returns the number of frequencies.
func (st *Statistics) Len() int { return len(st.Frequency) }

// LinearGrid returns n frequencies evenly spaced over [fmin, fmax].
func LinearGrid(fmin, fmax float64, n int) ([]float64, error) {
	if err := checkGridBounds(fmin, fmax, n); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, n), fmin, fmax), nil
}

// LogGrid returns n frequencies logarithmically spaced over [fmin, fmax].
func LogGrid(fmin, fmax float64, n int) ([]float64, error) {
	if err := checkGridBounds(fmin, fmax, n); err != nil {
		return nil, err
	}
	return floats.LogSpan(make([]float64, n), fmin, fmax), nil
}

func checkGridBounds(fmin, fmax float64, n int) error {
	if n < 2 || !(fmin > 0) || !(fmax > fmin) || math.IsInf(fmax, 0) {
		return fmt.Errorf("%w: grid [%v, %v] with %d points", ErrInvalid, fmin, fmax, n)
	}
	return nil
}

// StatisticsOption configures [Suite.Statistics].
type StatisticsOption func(*statsConfig)

type statsConfig struct {
	mode int
}

// ForMode restricts the statistics to curves picked from ridge mode. The
// default is [Fundamental].
func ForMode(mode int) StatisticsOption {
	return func(c *statsConfig) { c.mode = mode }
}

// Statistics interpolates the velocity of every curve of one mode onto
// grid and reduces the values available at each frequency. Curves of
// other modes are ignored. Curves that do not cover a grid frequency do
// not contribute to it. If no grid frequency receives data the result is
// [ErrNoOverlap].
func (s *Suite) Statistics(grid []float64, combine Combine, opts ...StatisticsOption) (*Statistics, error) {
	cfg := statsConfig{mode: Fundamental}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	if combine != Mean && combine != Median {
		return nil, fmt.Errorf("%w: unknown combine %v", ErrInvalid, combine)
	}
	if cfg.mode < 0 {
		return nil, fmt.Errorf("%w: negative mode %d", ErrInvalid, cfg.mode)
	}

	columns := make([][]float64, len(grid))
	for _, p := range s.curves {
		if p.Mode != cfg.mode {
			continue
		}
		vel, err := interp.Linear(p.Frequency, p.Velocity, grid)
		if err != nil {
			return nil, fmt.Errorf("peaks: statistics %s: %w", p.ID, err)
		}
		for i, v := range vel {
			if !math.IsNaN(v) {
				columns[i] = append(columns[i], v)
			}
		}
	}

	out := &Statistics{Combine: combine, Mode: cfg.mode}
	for i, col := range columns {
		if len(col) == 0 {
			continue
		}
		center, spread := reduce(col, combine)
		out.Frequency = append(out.Frequency, grid[i])
		out.Center = append(out.Center, center)
		out.Spread = append(out.Spread, spread)
		out.Count = append(out.Count, len(col))
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: no mode %d curve overlaps the statistics grid", ErrNoOverlap, cfg.mode)
	}
	return out, nil
}

// reduce returns center and spread of x. The spread of a single value is 0.
func reduce(x []float64, combine Combine) (center, spread float64) {
	if combine == Mean {
		if len(x) < 2 {
			return x[0], 0
		}
		return stat.MeanStdDev(x, nil)
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		center = sorted[n/2]
	} else {
		center = 0.5 * (sorted[n/2-1] + sorted[n/2])
	}
	if n < 2 {
		return center, 0
	}
	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return center, q3 - q1
}
