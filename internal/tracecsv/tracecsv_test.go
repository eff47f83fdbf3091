package tracecsv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-masw/dsp/timeseries"
	"github.com/cwbudde/algo-masw/internal/testutil"
)

const sample = `# dt=0.5
# delay=-0.5
# stack=3
time,2,4,6
-0.5,1,0,0
0,0,1,0
0.5,0,0,1
`

func TestRead(t *testing.T) {
	g, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, g.Positions, []float64{2, 4, 6})
	if len(g.Traces) != 3 {
		t.Fatalf("got %d traces, want 3", len(g.Traces))
	}
	testutil.RequireSliceEqual(t, g.Traces[1].Samples(), []float64{0, 1, 0})

	series, err := g.Series()
	if err != nil {
		t.Fatal(err)
	}
	ts := series[2]
	if ts.Dt() != 0.5 || ts.Delay() != -0.5 || ts.NStacks() != 3 || ts.NSamples() != 3 {
		t.Fatalf("unexpected series %v", ts)
	}
}

func TestReadInfersFromTimeColumn(t *testing.T) {
	doc := "time,0,1\n0.25,1,2\n0.5,3,4\n0.75,5,6\n"
	g, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	series, err := g.Series()
	if err != nil {
		t.Fatal(err)
	}
	if series[0].Dt() != 0.25 || series[0].Delay() != 0.25 || series[0].NStacks() != 1 {
		t.Fatalf("unexpected series %v", series[0])
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "bad header", doc: "t,1,2\n0,1,2\n"},
		{name: "no channels", doc: "time\n0\n"},
		{name: "bad position", doc: "time,a\n0,1\n"},
		{name: "no samples", doc: "time,1,2\n"},
		{name: "bad value", doc: "time,1\n0,x\n"},
		{name: "ragged", doc: "time,1,2\n0,1\n"},
		{name: "bad dt", doc: "# dt=-1\ntime,1\n0,1\n"},
		{name: "single sample without dt", doc: "time,1\n0,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.doc)); !errors.Is(err, ErrFormat) {
				t.Fatalf("err = %v, want ErrFormat", err)
			}
		})
	}
}

func TestBadStackHeaderSurfacesValueError(t *testing.T) {
	g, err := Read(strings.NewReader("# stack=many\n# dt=0.1\ntime,1\n0,1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Series(); !errors.Is(err, timeseries.ErrValue) {
		t.Fatalf("err = %v, want ErrValue", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var recs []*timeseries.TimeSeries
	for i := 0; i < 3; i++ {
		ts, err := timeseries.New(testutil.DeterministicNoise(int64(i+7), 1, 32), 0.002,
			timeseries.WithDelay(-0.01), timeseries.WithNStacks(4))
		if err != nil {
			t.Fatal(err)
		}
		recs = append(recs, ts)
	}
	positions := []float64{1.5, 3, 4.5}

	var buf bytes.Buffer
	if err := Write(&buf, positions, recs); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "shot.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	g, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, g.Positions, positions)
	series, err := g.Series()
	if err != nil {
		t.Fatal(err)
	}
	for i, ts := range series {
		if ts.Dt() != 0.002 || ts.Delay() != -0.01 || ts.NStacks() != 4 {
			t.Fatalf("channel %d: %v", i, ts)
		}
		testutil.RequireSliceEqual(t, ts.Amplitude(), recs[i].Amplitude())
	}
}

func TestWriteRejectsMixedSampling(t *testing.T) {
	a, _ := timeseries.New([]float64{1, 2}, 0.1)
	b, _ := timeseries.New([]float64{1, 2, 3}, 0.1)
	if err := Write(&bytes.Buffer{}, []float64{0, 1}, []*timeseries.TimeSeries{a, b}); !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}
