package array

import "errors"

// ErrGeometry reports invalid receiver positions, a source on top of a
// receiver, or channels whose sampling is inconsistent.
var ErrGeometry = errors.New("array: invalid geometry")
