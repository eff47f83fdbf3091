// Package wavefield converts the channel spectra of a linear array into a
// frequency-velocity dispersion image and picks ridges from it.
//
// # Methods
//
// [PhaseShift] sums the channel spectra after removing the phase delay
// 2*pi*f*x/v each trial velocity predicts:
//
//	P(f, v) = |sum_i U_i(f) * exp(+j*2*pi*f*x_i/v)| / N
//
// With [WithAmplitudeNormalization] each U_i is first scaled to unit
// magnitude, so near-source channels do not dominate.
//
// [FDBF] is frequency-domain beamforming. It weights each channel
// ([WeightNone], [WeightSqrt], [WeightInverseAmplitude]) and uses plane or
// cylindrical steering ([SteerPlane], [SteerCylindrical]):
//
//	P(f, v) = |sum_i w_i * U_i(f) * s_i(f, v)|^2 / N^2
//
// # Concurrency
//
// [Transform] evaluates each frequency row independently. Rows are spread
// over [WithWorkers] goroutines; each goroutine writes only its own rows
// and the input spectra are never modified. The context is checked before
// every row, so long transforms can be interrupted.
//
// # Picking
//
// [Surface.Peaks] returns the trial velocity of maximum power per
// frequency. [Surface.Modes] ranks local maxima so higher modes can be
// followed with [Surface.PeaksByMode].
package wavefield
