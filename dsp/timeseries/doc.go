// Package timeseries models a single recorded channel of an active-source
// seismic shot and the conditioning applied to it before a wavefield
// transform.
//
// A [TimeSeries] holds the amplitude samples, the sample interval dt, the
// pre-trigger delay (time of the first sample relative to the trigger,
// negative for pre-trigger data) and the number of impacts already stacked
// into the record.
//
// # Stacking
//
// [TimeSeries.StackAppend] forms the stack-count weighted mean of two
// records. [FromCrossStack] first aligns the second record to the first by
// cross-correlation, which compensates for trigger jitter between impacts.
//
// # Resolution
//
// [TimeSeries.ZeroPad] appends zeros so the spectrum reaches a requested
// frequency step. When the request is coarser than the record already
// supports, the record is padded to a power-of-two multiple of the
// requested length and [TimeSeries.Df] reports the decimated step. The
// multiple is computed from the current sample count, so repeated requests
// compound:
//
//	ts.ZeroPad(0.05) // 200 -> 2000 samples, multiple 1
//	ts.ZeroPad(1)    // 2000 -> 3200 samples, multiple 32
//
// # Trimming
//
// [TimeSeries.Trim] keeps the samples nearest to a time window and updates
// the delay so that every sample keeps its absolute time.
package timeseries
