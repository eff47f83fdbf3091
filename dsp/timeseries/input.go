package timeseries

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-masw/dsp/core"
)

// CheckInput validates stack-count and delay values as they arrive from
// instrument headers and converts them to their numeric form.
//
// nstacks accepts any integer kind, an integral float or a string holding
// an integer. delay accepts any numeric kind or a string holding a number.
// Values of other types (slices, maps, bools, nil) fail with [ErrType];
// unparsable strings, stack counts below one and non-finite delays fail
// with [ErrValue].
func CheckInput(nstacks, delay any) (int, float64, error) {
	n, err := toStacks(nstacks)
	if err != nil {
		return 0, 0, err
	}
	d, err := toDelay(delay)
	if err != nil {
		return 0, 0, err
	}
	return n, d, nil
}

func toStacks(v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt32 {
			return 0, fmt.Errorf("%w: nstacks %d too large", ErrValue, x)
		}
		n = int64(x)
	case float32:
		return toStacks(float64(x))
	case float64:
		if x != math.Trunc(x) || !core.IsFinite(x) {
			return 0, fmt.Errorf("%w: nstacks must be an integer, got %v", ErrValue, x)
		}
		n = int64(x)
	case string:
		p, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: nstacks %q is not an integer", ErrValue, x)
		}
		n = p
	default:
		return 0, fmt.Errorf("%w: nstacks of type %T", ErrType, v)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: nstacks %d too large", ErrValue, n)
	}
	if err := checkStacks(int(n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

func toDelay(v any) (float64, error) {
	var d float64
	switch x := v.(type) {
	case float64:
		d = x
	case float32:
		d = float64(x)
	case int:
		d = float64(x)
	case int8:
		d = float64(x)
	case int16:
		d = float64(x)
	case int32:
		d = float64(x)
	case int64:
		d = float64(x)
	case uint:
		d = float64(x)
	case uint8:
		d = float64(x)
	case uint16:
		d = float64(x)
	case uint32:
		d = float64(x)
	case uint64:
		d = float64(x)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: delay %q is not numeric", ErrValue, x)
		}
		d = p
	default:
		return 0, fmt.Errorf("%w: delay of type %T", ErrType, v)
	}
	if err := checkDelay(d); err != nil {
		return 0, err
	}
	return d, nil
}

func checkStacks(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: nstacks must be a positive integer, got %d", ErrValue, n)
	}
	return nil
}

func checkDelay(d float64) error {
	if !core.IsFinite(d) {
		return fmt.Errorf("%w: delay must be finite, got %v", ErrValue, d)
	}
	return nil
}
