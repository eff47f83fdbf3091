package wavefield

import "errors"

// Errors returned by grid construction, transforms and surface operations.
var (
	ErrInvalidGrid   = errors.New("wavefield: invalid trial grid")
	ErrInvalidOption = errors.New("wavefield: invalid option")
	ErrEmptyBand     = errors.New("wavefield: no frequencies in band")
	ErrAxisMismatch  = errors.New("wavefield: surface axes differ")
)
