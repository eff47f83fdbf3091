// Package window generates the edge tapers applied to trimmed records
// before they are transformed.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeTukey
	TypeCosine
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeTukey:       "tukey",
	TypeCosine:      "cosine",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseType maps a window name to its Type.
func ParseType(name string) (Type, bool) {
	for t, s := range typeNames {
		if s == name {
			return t, true
		}
	}
	return TypeRectangular, false
}

// Slope controls which edge(s) of the window are tapered.
type Slope int

const (
	SlopeSymmetric Slope = iota
	// SlopeLeft tapers only the start of the record.
	SlopeLeft
	// SlopeRight tapers only the end of the record.
	SlopeRight
)

var slopeNames = map[Slope]string{
	SlopeSymmetric: "both",
	SlopeLeft:      "left",
	SlopeRight:     "right",
}

func (s Slope) String() string {
	if n, ok := slopeNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSlope maps "both", "left" or "right" to its Slope.
func ParseSlope(name string) (Slope, bool) {
	for s, n := range slopeNames {
		if n == name {
			return s, true
		}
	}
	return SlopeSymmetric, false
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha float64
	slope Slope
}

func defaultConfig() config {
	return config{
		alpha: 0.1,
		slope: SlopeSymmetric,
	}
}

// WithAlpha sets the tapered fraction of a Tukey window. Values outside
// [0,1] are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 && v <= 1 {
			c.alpha = v
		}
	}
}

// WithSlope configures edge tapering mode.
func WithSlope(s Slope) Option {
	return func(c *config) {
		c.slope = s
	}
}

// Generate returns window coefficients of the requested length.
// A non-positive length yields nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length), cfg)
	}
	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 || t == TypeRectangular {
		return
	}
	// Lengths match by construction.
	_ = ApplyCoefficientsInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return ErrLengthMismatch
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

func samplePosition(i, length int) float64 {
	if length == 1 {
		return 0.5
	}
	return float64(i) / float64(length-1)
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch cfg.slope {
	case SlopeLeft:
		if x > 0.5 {
			return 1
		}
	case SlopeRight:
		if x < 0.5 {
			return 1
		}
	}

	switch t {
	case TypeHann:
		return 0.5 * (1 - math.Cos(2*math.Pi*x))
	case TypeCosine:
		return math.Sin(math.Pi * x)
	case TypeTukey:
		return tukey(x, cfg.alpha)
	default:
		return 1
	}
}

func tukey(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	half := alpha / 2
	switch {
	case x < half:
		return 0.5 * (1 - math.Cos(math.Pi*x/half))
	case x > 1-half:
		return 0.5 * (1 - math.Cos(math.Pi*(1-x)/half))
	default:
		return 1
	}
}
