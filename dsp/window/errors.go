package window

import "errors"

// ErrLengthMismatch is returned when samples and coefficients differ in
// length.
var ErrLengthMismatch = errors.New("window: samples and coefficients must have same length")
