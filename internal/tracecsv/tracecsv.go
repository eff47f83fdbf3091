// Package tracecsv reads and writes multichannel shot gathers stored as
// CSV.
//
// A gather file may start with "# key=value" lines (dt, delay, stack)
// followed by a header row "time,<x1>,<x2>,..." giving receiver positions
// in metres, then one row per sample. Without a dt line the interval is
// taken from the time column; without a delay line the delay is the first
// time value.
package tracecsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-masw/dsp/timeseries"
)

// ErrFormat reports a malformed gather file.
var ErrFormat = errors.New("tracecsv: malformed gather")

// Header keys recognised in comment lines.
const (
	KeyDt    = "dt"
	KeyDelay = "delay"
	KeyStack = "stack"
)

// Trace is one channel of a gather. It implements [timeseries.Trace];
// stack and delay are passed on exactly as written in the file.
type Trace struct {
	samples []float64
	dt      float64
	stack   any
	delay   any
}

// Samples implements timeseries.Trace.
func (t *Trace) Samples() []float64 { return t.samples }

// Delta implements timeseries.Trace.
func (t *Trace) Delta() float64 { return t.dt }

// Stack implements timeseries.Trace.
func (t *Trace) Stack() any { return t.stack }

// Delay implements timeseries.Trace.
func (t *Trace) Delay() any { return t.delay }

// Gather is one shot: receiver positions and one trace per receiver.
type Gather struct {
	Positions []float64
	Traces    []*Trace
}

// Series converts every trace to a TimeSeries.
func (g *Gather) Series() ([]*timeseries.TimeSeries, error) {
	out := make([]*timeseries.TimeSeries, len(g.Traces))
	for i, tr := range g.Traces {
		ts, err := timeseries.FromTrace(tr)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = ts
	}
	return out, nil
}

// ReadFile reads a gather from path.
func ReadFile(path string) (*Gather, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read parses a gather.
func Read(r io.Reader) (*Gather, error) {
	br := bufio.NewReader(r)
	meta, err := readComments(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "time" {
		return nil, fmt.Errorf("%w: header must be time,<x1>,...", ErrFormat)
	}
	g := &Gather{Positions: make([]float64, len(header)-1)}
	for i, h := range header[1:] {
		if g.Positions[i], err = strconv.ParseFloat(strings.TrimSpace(h), 64); err != nil {
			return nil, fmt.Errorf("%w: receiver position %q", ErrFormat, h)
		}
	}

	var times []float64
	channels := make([][]float64, len(g.Positions))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		vals, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrFormat, line, err)
		}
		times = append(times, vals[0])
		for c := range channels {
			channels[c] = append(channels[c], vals[c+1])
		}
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrFormat)
	}

	dt, err := interval(meta, times)
	if err != nil {
		return nil, err
	}
	var delay any = times[0]
	if v, ok := meta[KeyDelay]; ok {
		delay = v
	}
	var stack any = 1
	if v, ok := meta[KeyStack]; ok {
		stack = v
	}

	g.Traces = make([]*Trace, len(channels))
	for c, samples := range channels {
		g.Traces[c] = &Trace{samples: samples, dt: dt, stack: stack, delay: delay}
	}
	return g, nil
}

func readComments(br *bufio.Reader) (map[string]string, error) {
	meta := make(map[string]string)
	for {
		b, err := br.Peek(1)
		if err != nil || b[0] != '#' {
			return meta, nil
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), "=")
		if !ok {
			continue
		}
		meta[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
}

func parseRow(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %q", i, s)
		}
		out[i] = v
	}
	return out, nil
}

func interval(meta map[string]string, times []float64) (float64, error) {
	if v, ok := meta[KeyDt]; ok {
		dt, err := strconv.ParseFloat(v, 64)
		if err != nil || !(dt > 0) {
			return 0, fmt.Errorf("%w: dt %q", ErrFormat, v)
		}
		return dt, nil
	}
	n := len(times)
	if n < 2 {
		return 0, fmt.Errorf("%w: dt needs a header line or two samples", ErrFormat)
	}
	dt := (times[n-1] - times[0]) / float64(n-1)
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w: time column must increase", ErrFormat)
	}
	return dt, nil
}

// Write stores records as a gather. All records must share dt, delay and
// sample count.
func Write(w io.Writer, positions []float64, records []*timeseries.TimeSeries) error {
	if len(records) == 0 || len(records) != len(positions) {
		return fmt.Errorf("%w: %d records for %d positions", ErrFormat, len(records), len(positions))
	}
	ref := records[0]
	for i, r := range records[1:] {
		if r.NSamples() != ref.NSamples() || r.Dt() != ref.Dt() || r.Delay() != ref.Delay() {
			return fmt.Errorf("%w: record %d sampling differs from record 0", ErrFormat, i+1)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s=%s\n", KeyDt, formatFloat(ref.Dt()))
	fmt.Fprintf(bw, "# %s=%s\n", KeyDelay, formatFloat(ref.Delay()))
	fmt.Fprintf(bw, "# %s=%d\n", KeyStack, ref.NStacks())

	cw := csv.NewWriter(bw)
	row := make([]string, len(records)+1)
	row[0] = "time"
	for i, x := range positions {
		row[i+1] = formatFloat(x)
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	amps := make([][]float64, len(records))
	for i, r := range records {
		amps[i] = r.Amplitude()
	}
	times := ref.Time()
	for k, tk := range times {
		row[0] = formatFloat(tk)
		for c := range amps {
			row[c+1] = formatFloat(amps[c][k])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
