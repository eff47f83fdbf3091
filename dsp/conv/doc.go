// Package conv provides the linear cross-correlation kernels used to align
// repeated shot records.
//
// All correlations follow the "full" convention: for inputs of length N and M
// the result has N+M-1 samples and output index k corresponds to lag
// k-(M-1). A copy of a delayed by d samples correlates with a at lag d:
//
//	corr, err := conv.Correlate(a, b)
//	idx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(idx, len(b))
//	aligned := conv.Shift(b, lag)
//
// # Algorithm Selection
//
// [Correlate] evaluates short inputs directly in the time domain and longer
// inputs through an FFT of the next power-of-two size. The direct path is
// exact for integer-valued inputs; the FFT path agrees within floating-point
// rounding.
package conv
