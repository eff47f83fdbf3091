package timeseries

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-masw/internal/testutil"
)

func TestCrosscorr(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{name: "centered", a: []float64{0, 1, 0}, b: []float64{1}, want: []float64{0, 1, 0}},
		{name: "late", a: []float64{0, 0, 1, 0}, b: []float64{1}, want: []float64{0, 0, 1, 0}},
		{name: "two", a: []float64{0, 0, 1, 0}, b: []float64{1, 0}, want: []float64{0, 0, 0, 1, 0}},
		{name: "three", a: []float64{0, 0, 1, 0}, b: []float64{0, 1, 0}, want: []float64{0, 0, 0, 1, 0, 0}},
		{name: "negative", a: []float64{0, 0, -1, 0}, b: []float64{0, -1, 0, 0}, want: []float64{0, 0, 0, 0, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Crosscorr(mustNew(t, tt.a, 1), mustNew(t, tt.b, 1))
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceEqual(t, got, tt.want)
		})
	}
}

func TestCrosscorrDtMismatch(t *testing.T) {
	_, err := Crosscorr(mustNew(t, []float64{1}, 1), mustNew(t, []float64{1}, 2))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestCrosscorrShift(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		dt   float64
		want []float64
	}{
		{
			name: "simple pulse",
			a:    []float64{0, 0, 1, 0},
			b:    []float64{0, 1, 0, 0},
			dt:   1,
			want: []float64{0, 0, 1, 0},
		},
		{
			name: "ramp pulse",
			a:    []float64{0, 0, 2, 3, 4, 5, 0, 2, 3, 0},
			b:    []float64{0, 2, 3, 4, 5, 0, 0, 0, 0, 0},
			dt:   1,
			want: []float64{0, 0, 2, 3, 4, 5, 0, 0, 0, 0},
		},
		{
			name: "sinusoidal pulse",
			a:    []float64{0, -1, 0, 1, 0, -1, 0, 0},
			b:    []float64{0, 0, 0, -1, 0, 1, 0, 0},
			dt:   0.1,
			want: []float64{0, -1, 0, 1, 0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CrosscorrShift(mustNew(t, tt.a, tt.dt), mustNew(t, tt.b, tt.dt))
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceEqual(t, got, tt.want)
		})
	}
}

func TestCrosscorrShiftSinusoid(t *testing.T) {
	const (
		dt = 0.01
		f  = 5.0
	)
	sine := make([]float64, 200)
	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * f * float64(i) * dt)
	}
	a := append(make([]float64, 20), sine...)
	b := append(append([]float64{}, sine...), make([]float64, 20)...)

	got, err := CrosscorrShift(mustNew(t, a, dt), mustNew(t, b, dt))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, got, a)
}
