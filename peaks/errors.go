package peaks

import "errors"

// Errors returned by curve and suite operations.
var (
	ErrInvalid     = errors.New("peaks: invalid curve")
	ErrNoOverlap   = errors.New("peaks: no points remain")
	ErrDuplicateID = errors.New("peaks: duplicate curve id")
)
