package timeseries

import "fmt"

// Trace is the narrow view of an instrument trace needed to build a
// TimeSeries. Header-backed fields are returned as raw values and checked
// with [CheckInput], so adapters can hand over header strings unchanged.
type Trace interface {
	Samples() []float64
	Delta() float64
	Stack() any
	Delay() any
}

// FromTrace builds a TimeSeries from an instrument trace. Options are
// applied after the header values and therefore override them.
func FromTrace(tr Trace, opts ...Option) (*TimeSeries, error) {
	if tr == nil {
		return nil, fmt.Errorf("%w: nil trace", ErrType)
	}
	nstacks, delay, err := CheckInput(tr.Stack(), tr.Delay())
	if err != nil {
		return nil, fmt.Errorf("trace header: %w", err)
	}
	all := append([]Option{WithNStacks(nstacks), WithDelay(delay)}, opts...)
	return New(tr.Samples(), tr.Delta(), all...)
}

// SEG2 header keys read by [SEG2Trace].
const (
	SEG2Stack = "STACK"
	SEG2Delay = "DELAY"
)

// SEG2Trace adapts a decoded SEG2 trace (samples, sample interval and the
// string-valued trace descriptor block) to [Trace].
type SEG2Trace struct {
	Data     []float64
	Interval float64
	Header   map[string]string
}

// Samples implements Trace.
func (t SEG2Trace) Samples() []float64 { return t.Data }

// Delta implements Trace.
func (t SEG2Trace) Delta() float64 { return t.Interval }

// Stack implements Trace. SEG2 defaults an absent STACK keyword to 1.
func (t SEG2Trace) Stack() any {
	if v, ok := t.Header[SEG2Stack]; ok {
		return v
	}
	return 1
}

// Delay implements Trace. SEG2 defaults an absent DELAY keyword to 0.
func (t SEG2Trace) Delay() any {
	if v, ok := t.Header[SEG2Delay]; ok {
		return v
	}
	return 0.0
}

// FromTraceSEG2 builds a TimeSeries from a decoded SEG2 trace.
func FromTraceSEG2(tr SEG2Trace, opts ...Option) (*TimeSeries, error) {
	return FromTrace(tr, opts...)
}
