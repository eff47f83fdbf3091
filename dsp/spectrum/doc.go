// Package spectrum provides the one-sided spectra consumed by the wavefield
// transforms.
//
// [RealFFT] accepts any length, so zero-padded records of 200, 2000 or 3200
// samples transform without a further power-of-two extension. [Decimate]
// keeps every m-th bin, which is how a record padded by a power-of-two
// multiple reports the coarser resolution that was requested.
package spectrum
