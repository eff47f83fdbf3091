// Package masw runs the multichannel surface-wave processing chain on
// whole shot gathers:
//
//	records -> stack -> trim -> taper -> pad -> array -> transform -> peaks
//
// A [Processor] is built once from [config.Settings] and may be reused for
// any number of gathers. In the time-domain workflow the shots are stacked
// channel by channel before a single transform. In the frequency-domain
// workflow every shot is conditioned and transformed on its own and the
// resulting surfaces are averaged.
//
// [Processor.ProcessAll] runs several configurations and collects their
// picks in a [peaks.Suite] once all of them have finished.
//
// This is the only package below cmd that logs; pass a logger with
// [WithLogger].
package masw
