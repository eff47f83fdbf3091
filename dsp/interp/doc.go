// Package interp provides piecewise-linear interpolation of sampled curves
// onto new abscissae.
//
// Interpolation never extrapolates: points outside the sampled range are
// reported as missing so callers can drop them instead of inventing data.
package interp
