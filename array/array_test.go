package array

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/internal/testutil"
)

func records(t *testing.T, n, nsamples int, dt float64) []*timeseries.TimeSeries {
	t.Helper()
	out := make([]*timeseries.TimeSeries, n)
	for i := range out {
		ts, err := timeseries.New(testutil.DeterministicNoise(int64(i+1), 1, nsamples), dt)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = ts
	}
	return out
}

func TestFromRecords(t *testing.T) {
	arr, err := FromRecords(records(t, 4, 64, 0.001), []float64{0, 2, 4, 8}, Source{X: -5})
	if err != nil {
		t.Fatal(err)
	}
	if arr.NChannels() != 4 || arr.NSamples() != 64 || arr.Dt() != 0.001 {
		t.Fatalf("unexpected array shape")
	}
	testutil.RequireSliceEqual(t, arr.Offsets(), []float64{5, 7, 9, 13})
	if arr.Spacing() != 2 || arr.Length() != 8 {
		t.Fatalf("spacing/length = %v/%v, want 2/8", arr.Spacing(), arr.Length())
	}
	lmin, lmax := arr.WavelengthLimits()
	if lmin != 4 || lmax != 8 {
		t.Fatalf("wavelength limits = %v/%v, want 4/8", lmin, lmax)
	}
	if arr.SourceInside() {
		t.Fatal("source at -5 is outside the array")
	}
	if math.Abs(arr.Nyquist()-500) > 1e-9 {
		t.Fatalf("nyquist = %v, want 500", arr.Nyquist())
	}
}

func TestReverseShotOffsets(t *testing.T) {
	arr, err := FromRecords(records(t, 3, 16, 0.01), []float64{0, 1, 2}, Source{X: 4})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, arr.Offsets(), []float64{4, 3, 2})
}

func TestGeometryErrors(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		source    float64
	}{
		{name: "single sensor", positions: []float64{0}, source: -1},
		{name: "repeated position", positions: []float64{0, 1, 1}, source: -1},
		{name: "decreasing", positions: []float64{0, 2, 1}, source: -1},
		{name: "source on receiver", positions: []float64{0, 1, 2}, source: 1},
		{name: "nan source", positions: []float64{0, 1, 2}, source: math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := records(t, len(tt.positions), 16, 0.01)
			if _, err := FromRecords(recs, tt.positions, Source{X: tt.source}); !errors.Is(err, ErrGeometry) {
				t.Fatalf("err = %v, want ErrGeometry", err)
			}
		})
	}
}

func TestSamplingMismatch(t *testing.T) {
	recs := records(t, 2, 16, 0.01)
	short, _ := timeseries.New(make([]float64, 8), 0.01)
	if _, err := FromRecords([]*timeseries.TimeSeries{recs[0], short}, []float64{0, 1}, Source{X: -1}); !errors.Is(err, ErrGeometry) {
		t.Fatalf("nsamples err = %v, want ErrGeometry", err)
	}
	slow, _ := timeseries.New(make([]float64, 16), 0.02)
	if _, err := FromRecords([]*timeseries.TimeSeries{recs[0], slow}, []float64{0, 1}, Source{X: -1}); !errors.Is(err, ErrGeometry) {
		t.Fatalf("dt err = %v, want ErrGeometry", err)
	}
	if _, err := FromRecords(recs, []float64{0}, Source{X: -1}); !errors.Is(err, ErrGeometry) {
		t.Fatalf("count err = %v, want ErrGeometry", err)
	}
}

func TestArrayConditioning(t *testing.T) {
	arr, err := FromRecords(records(t, 3, 200, 0.01), []float64{0, 1, 2}, Source{X: -2})
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.Trim(0, 0.99); err != nil {
		t.Fatal(err)
	}
	if err := arr.ZeroPad(0.5); err != nil {
		t.Fatal(err)
	}
	if arr.NSamples() != 200 {
		t.Fatalf("nsamples = %d, want 200", arr.NSamples())
	}
	spec, err := arr.Spectra()
	if err != nil {
		t.Fatal(err)
	}
	if spec.NFrequencies() != 101 || len(spec.Bins) != 3 {
		t.Fatalf("spectra shape = %d x %d", len(spec.Bins), spec.NFrequencies())
	}
	if math.Abs(spec.Frequencies[1]-0.5) > 1e-9 {
		t.Fatalf("df = %v, want 0.5", spec.Frequencies[1])
	}
}

func TestSpectraDetectsUnevenPadding(t *testing.T) {
	arr, err := FromRecords(records(t, 2, 100, 0.01), []float64{0, 1}, Source{X: -2})
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.Sensor(1).Representative().ZeroPad(0.1); err != nil {
		t.Fatal(err)
	}
	if _, err := arr.Spectra(); !errors.Is(err, ErrGeometry) {
		t.Fatalf("err = %v, want ErrGeometry", err)
	}
}

func TestSpectraSnapshotIsIndependent(t *testing.T) {
	arr, err := FromRecords(records(t, 2, 32, 0.01), []float64{0, 1}, Source{X: -2})
	if err != nil {
		t.Fatal(err)
	}
	a, err := arr.Spectra()
	if err != nil {
		t.Fatal(err)
	}
	a.Bins[0][1] = 0
	a.Offsets[0] = 99
	b, err := arr.Spectra()
	if err != nil {
		t.Fatal(err)
	}
	if b.Bins[0][1] == 0 || b.Offsets[0] != 2 {
		t.Fatal("spectra snapshot shares state with the array")
	}
}

func TestTrimFailureLeavesArrayUntouched(t *testing.T) {
	tests := []struct {
		name       string
		delay      float64
		start, end float64
		want       error
	}{
		{name: "window misses second record", delay: 0.5, start: 0, end: 0.3, want: timeseries.ErrOutOfRange},
		{name: "uneven kept lengths", delay: -0.1, start: -0.05, end: 0.05, want: ErrGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, _ := timeseries.New(make([]float64, 100), 0.01)
			second, err := timeseries.New(make([]float64, 100), 0.01, timeseries.WithDelay(tt.delay))
			if err != nil {
				t.Fatal(err)
			}
			arr, err := FromRecords([]*timeseries.TimeSeries{first, second}, []float64{0, 1}, Source{X: -1})
			if err != nil {
				t.Fatal(err)
			}
			if err := arr.Trim(tt.start, tt.end); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if first.NSamples() != 100 || second.NSamples() != 100 || first.Delay() != 0 {
				t.Fatalf("records modified: %d/%d samples, delay %v", first.NSamples(), second.NSamples(), first.Delay())
			}
		})
	}
}

func TestZeroPadRejectsInvalidStep(t *testing.T) {
	arr, err := FromRecords(records(t, 2, 100, 0.01), []float64{0, 1}, Source{X: -1})
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.ZeroPad(0); !errors.Is(err, timeseries.ErrValue) {
		t.Fatalf("err = %v, want ErrValue", err)
	}
	if arr.NSamples() != 100 {
		t.Fatalf("nsamples = %d, want 100", arr.NSamples())
	}
}
