// Package peaks holds raw dispersion curves picked from wavefield surfaces
// and aggregates them across acquisition configurations.
//
// # Curves
//
// A [Peaks] value is one curve: an ordered list of (frequency, velocity,
// power) triples tagged with the configuration it came from (an ID such as
// the array or shot name, and the transform method). Filters return a new
// curve and never modify the receiver. A filter that removes every point
// fails with [ErrNoOverlap].
//
// # Suites
//
// A [Suite] is an ordered set of curves with unique IDs. Curves picked at
// different frequency resolutions are brought onto a common grid with
// [Suite.Resample]; [Suite.Statistics] then reduces them to a mean or
// median curve with a spread per frequency.
//
// # Persistence
//
// Suites round-trip losslessly through JSON ([Suite.WriteJSON],
// [ReadJSON]) and Parquet ([Suite.WriteParquet], [ReadParquet]).
package peaks
