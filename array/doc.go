// Package array assembles conditioned channel records into a linear
// receiver array with a known source position.
//
// An [Array1D] owns the geometry invariants needed by the wavefield
// transforms: receiver positions strictly increase, the source does not
// coincide with a receiver, and every channel shares the same sample
// interval and sample count. [Array1D.Spectra] hands the transforms a
// read-only snapshot of per-channel spectra and source offsets.
package array
