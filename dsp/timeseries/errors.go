package timeseries

import "errors"

// Error kinds returned by this package. Callers test with errors.Is.
var (
	// ErrType reports a value of the wrong type for a numeric field.
	ErrType = errors.New("timeseries: invalid type")
	// ErrValue reports a type-correct value outside its domain.
	ErrValue = errors.New("timeseries: invalid value")
	// ErrShapeMismatch reports records that cannot be combined because
	// their lengths or sample intervals differ.
	ErrShapeMismatch = errors.New("timeseries: shape mismatch")
	// ErrOutOfRange reports a time window outside the record.
	ErrOutOfRange = errors.New("timeseries: window out of range")
)
