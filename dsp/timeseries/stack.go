package timeseries

import "fmt"

// StackAppend folds other into ts as the stack-count weighted mean
//
//	amp[i] = (amp[i]*n + other[i]*m) / (n + m)
//
// and sets the stack count to n+m. Both records must have the same length
// and sample interval. ts keeps its delay.
func (ts *TimeSeries) StackAppend(other *TimeSeries) error {
	if other == nil {
		return fmt.Errorf("%w: nil series", ErrType)
	}
	if err := checkShape(ts, other); err != nil {
		return err
	}

	na := float64(ts.nstacks)
	nb := float64(other.nstacks)
	total := na + nb
	for i, b := range other.amp {
		ts.amp[i] = (ts.amp[i]*na + b*nb) / total
	}
	ts.nstacks += other.nstacks
	return nil
}

// Stack returns the weighted mean of all records without modifying them.
func Stack(series ...*TimeSeries) (*TimeSeries, error) {
	if len(series) == 0 || series[0] == nil {
		return nil, fmt.Errorf("%w: nothing to stack", ErrValue)
	}
	out := series[0].Clone()
	for i, s := range series[1:] {
		if err := out.StackAppend(s); err != nil {
			return nil, fmt.Errorf("stack record %d: %w", i+1, err)
		}
	}
	return out, nil
}

// FromCrossStack returns a new record holding a stacked with b after b has
// been aligned to a by cross-correlation. Neither input is modified.
func FromCrossStack(a, b *TimeSeries) (*TimeSeries, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil series", ErrType)
	}
	if err := checkShape(a, b); err != nil {
		return nil, err
	}
	shifted, err := CrosscorrShift(a, b)
	if err != nil {
		return nil, err
	}

	out := a.Clone()
	aligned := &TimeSeries{
		amp:      shifted,
		dt:       b.dt,
		delay:    a.delay,
		nstacks:  b.nstacks,
		multiple: 1,
	}
	if err := out.StackAppend(aligned); err != nil {
		return nil, err
	}
	return out, nil
}

// CrossStack aligns every record to the first by cross-correlation and
// returns their weighted mean.
func CrossStack(series ...*TimeSeries) (*TimeSeries, error) {
	if len(series) == 0 || series[0] == nil {
		return nil, fmt.Errorf("%w: nothing to stack", ErrValue)
	}
	ref := series[0]
	out := ref.Clone()
	for i, s := range series[1:] {
		if s == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrType, i+1)
		}
		if err := checkShape(ref, s); err != nil {
			return nil, fmt.Errorf("cross-stack record %d: %w", i+1, err)
		}
		shifted, err := CrosscorrShift(ref, s)
		if err != nil {
			return nil, fmt.Errorf("cross-stack record %d: %w", i+1, err)
		}
		aligned := &TimeSeries{amp: shifted, dt: s.dt, delay: ref.delay, nstacks: s.nstacks, multiple: 1}
		if err := out.StackAppend(aligned); err != nil {
			return nil, fmt.Errorf("cross-stack record %d: %w", i+1, err)
		}
	}
	return out, nil
}

func checkShape(a, b *TimeSeries) error {
	if len(a.amp) != len(b.amp) {
		return fmt.Errorf("%w: nsamples %d != %d", ErrShapeMismatch, len(a.amp), len(b.amp))
	}
	if !sameDt(a.dt, b.dt) {
		return fmt.Errorf("%w: dt %v != %v", ErrShapeMismatch, a.dt, b.dt)
	}
	return nil
}
