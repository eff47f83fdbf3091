package masw

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-masw/array"
	"github.com/cwbudde/algo-masw/config"
	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/internal/testutil"
	"github.com/cwbudde/algo-masw/peaks"
)

const (
	testDt     = 0.002
	testLength = 500
)

var testBins = []int{10, 20, 30}

func dispersive(f float64) float64 { return 300 - 5*f }

func testPositions() []float64 {
	positions := make([]float64, 24)
	for i := range positions {
		positions[i] = float64(2 * (i + 1))
	}
	return positions
}

func shot(t *testing.T) []*timeseries.TimeSeries {
	t.Helper()
	traces := testutil.PlaneWaveGather(testPositions(), testBins, dispersive, testDt, testLength)
	out := make([]*timeseries.TimeSeries, len(traces))
	for i, tr := range traces {
		ts, err := timeseries.New(tr, testDt)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = ts
	}
	return out
}

func testSettings() config.Settings {
	s := config.Default()
	s.Trim.Enabled = false
	s.Pad.Enabled = false
	s.Taper.Type = "rectangular"
	s.Transform.Steering = "plane"
	s.Transform.Weighting = "none"
	s.Transform.FMin = 5
	s.Transform.FMax = 40
	s.Transform.VMin = 100
	s.Transform.VMax = 400
	s.Transform.NVel = 301
	s.Peaks.MinPower = 1
	return s
}

func newProcessor(t *testing.T, s config.Settings, opts ...Option) *Processor {
	t.Helper()
	p, err := New(s, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// requireDispersion checks the picks at the synthetic frequencies. With
// exact set, no other frequency may carry a pick.
func requireDispersion(t *testing.T, curve *peaks.Peaks, exact bool) {
	t.Helper()
	if exact && curve.Len() != len(testBins) {
		t.Fatalf("got picks at %v, want only %v", curve.Frequency, testBins)
	}
	for _, k := range testBins {
		f := float64(k)
		found := false
		for i, cf := range curve.Frequency {
			if math.Abs(cf-f) < 1e-9 {
				found = true
				if curve.Velocity[i] != dispersive(f) {
					t.Errorf("%v Hz: picked %v m/s, want %v", f, curve.Velocity[i], dispersive(f))
				}
			}
		}
		if !found {
			t.Errorf("no pick at %v Hz", f)
		}
	}
}

func TestProcessWorkflows(t *testing.T) {
	tests := []struct {
		name     string
		workflow string
		align    bool
		pad      bool
	}{
		{name: "time domain aligned", workflow: config.TimeDomain, align: true},
		{name: "time domain plain", workflow: config.TimeDomain},
		{name: "time domain padded", workflow: config.TimeDomain, align: true, pad: true},
		{name: "frequency domain", workflow: config.FrequencyDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			s.Workflow = tt.workflow
			s.Stack.Align = tt.align
			if tt.pad {
				s.Pad = config.Pad{Enabled: true, Df: 0.5}
			}
			p := newProcessor(t, s)

			shots := [][]*timeseries.TimeSeries{shot(t), shot(t)}
			before := shots[1][5].Amplitude()
			res, err := p.Process(context.Background(), shots, testPositions(), array.Source{X: 0}, "line-1")
			if err != nil {
				t.Fatal(err)
			}
			requireDispersion(t, res.Peaks, !tt.pad)
			if res.Peaks.ID != "line-1" || res.Peaks.Method != "fdbf" {
				t.Fatalf("tags = %q/%q", res.Peaks.ID, res.Peaks.Method)
			}
			testutil.RequireSliceEqual(t, shots[1][5].Amplitude(), before)
			if shots[1][5].NSamples() != testLength {
				t.Fatal("input record was padded in place")
			}
			if tt.pad && math.Abs(res.Surface.Frequencies[1]-res.Surface.Frequencies[0]-0.5) > 1e-9 {
				t.Fatalf("padded frequency step = %v, want 0.5",
					res.Surface.Frequencies[1]-res.Surface.Frequencies[0])
			}
		})
	}
}

func TestProcessModes(t *testing.T) {
	s := testSettings()
	s.Peaks.Modes = 2
	p := newProcessor(t, s)
	res, err := p.Process(context.Background(), [][]*timeseries.TimeSeries{shot(t)}, testPositions(), array.Source{X: 0}, "m")
	if err != nil {
		t.Fatal(err)
	}
	requireDispersion(t, res.Peaks, true)
	for _, m := range res.Modes {
		if m.Mode < 1 || m.ID != fmt.Sprintf("m/%d", m.Mode) {
			t.Fatalf("unexpected higher-mode curve %v", m)
		}
	}
}

func TestProcessAllStatisticsIgnoreHigherModes(t *testing.T) {
	s := testSettings()
	s.Peaks.Modes = 2
	s.Peaks.MinPower = 0
	p := newProcessor(t, s)

	jobs := []Job{
		{ID: "forward", Shots: [][]*timeseries.TimeSeries{shot(t)}, Positions: testPositions(), Source: array.Source{X: 0}},
		{ID: "repeat", Shots: [][]*timeseries.TimeSeries{shot(t)}, Positions: testPositions(), Source: array.Source{X: 0}},
	}
	suite, _, err := p.ProcessAll(context.Background(), jobs)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range suite.IDs() {
		if id == "forward/0" || id == "repeat/0" {
			t.Fatalf("fundamental emitted twice: %v", suite.IDs())
		}
	}
	if got := suite.SelectMode(peaks.Fundamental).IDs(); len(got) != 2 || got[0] != "forward" || got[1] != "repeat" {
		t.Fatalf("fundamental curves = %v", got)
	}

	st, err := suite.Statistics([]float64{10, 20, 30}, peaks.Mean)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, st.Center, []float64{250, 200, 150})
	testutil.RequireSliceEqual(t, st.Spread, []float64{0, 0, 0})
	for i, c := range st.Count {
		if c != 2 {
			t.Fatalf("count[%d] = %d, want 2", i, c)
		}
	}
}

func TestProcessWavelengthFilter(t *testing.T) {
	s := testSettings()
	s.Peaks.MinPower = 0
	s.Peaks.Wavelength = true
	p := newProcessor(t, s)
	res, err := p.Process(context.Background(), [][]*timeseries.TimeSeries{shot(t)}, testPositions(), array.Source{X: 0}, "w")
	if err != nil {
		t.Fatal(err)
	}
	// Resolvable wavelengths are 4 m to 46 m.
	for i, w := range res.Peaks.Wavelength() {
		if w < 4 || w > 46 {
			t.Fatalf("pick %d has wavelength %v", i, w)
		}
	}
}

func TestProcessErrors(t *testing.T) {
	p := newProcessor(t, testSettings())
	ctx := context.Background()

	if _, err := p.Process(ctx, nil, testPositions(), array.Source{X: 0}, "x"); !errors.Is(err, ErrNoShots) {
		t.Fatalf("empty: err = %v, want ErrNoShots", err)
	}
	ragged := [][]*timeseries.TimeSeries{shot(t), shot(t)[:3]}
	if _, err := p.Process(ctx, ragged, testPositions(), array.Source{X: 0}, "x"); !errors.Is(err, ErrNoShots) {
		t.Fatalf("ragged: err = %v, want ErrNoShots", err)
	}
	onReceiver := array.Source{X: 4}
	if _, err := p.Process(ctx, [][]*timeseries.TimeSeries{shot(t)}, testPositions(), onReceiver, "x"); !errors.Is(err, array.ErrGeometry) {
		t.Fatalf("geometry: err = %v, want ErrGeometry", err)
	}
	short, _ := timeseries.New(make([]float64, 10), testDt)
	mixed := shot(t)
	other := shot(t)
	other[2] = short
	if _, err := p.Process(ctx, [][]*timeseries.TimeSeries{mixed, other}, testPositions(), array.Source{X: 0}, "x"); !errors.Is(err, timeseries.ErrShapeMismatch) {
		t.Fatalf("shape: err = %v, want ErrShapeMismatch", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := p.Process(cancelled, [][]*timeseries.TimeSeries{shot(t)}, testPositions(), array.Source{X: 0}, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancel: err = %v, want context.Canceled", err)
	}

	bad := testSettings()
	bad.Workflow = "both"
	if _, err := New(bad); !errors.Is(err, config.ErrInvalidSettings) {
		t.Fatalf("settings: err = %v, want ErrInvalidSettings", err)
	}
}

func TestProcessAll(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := newProcessor(t, testSettings(), WithLogger(zap.New(core)))

	jobs := []Job{
		{ID: "forward", Shots: [][]*timeseries.TimeSeries{shot(t)}, Positions: testPositions(), Source: array.Source{X: 0}},
		{ID: "repeat", Shots: [][]*timeseries.TimeSeries{shot(t), shot(t)}, Positions: testPositions(), Source: array.Source{X: 0}},
	}
	suite, results, err := p.ProcessAll(context.Background(), jobs)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || suite.Len() != 2 {
		t.Fatalf("got %d results and %d curves", len(results), suite.Len())
	}
	st, err := suite.Statistics([]float64{10, 20, 30}, peaks.Mean)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, st.Center, []float64{250, 200, 150})
	testutil.RequireSliceEqual(t, st.Spread, []float64{0, 0, 0})

	if n := logs.FilterMessage("done").Len(); n != 2 {
		t.Fatalf("got %d done entries, want 2", n)
	}
	if logs.FilterMessage("suite assembled").Len() != 1 {
		t.Fatal("missing suite log entry")
	}

	jobs[1].ID = "forward"
	if _, _, err := p.ProcessAll(context.Background(), jobs); !errors.Is(err, peaks.ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}
