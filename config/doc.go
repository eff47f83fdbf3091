// Package config loads processing settings from YAML.
//
// Settings start from [Default] and any field present in the document
// overrides it. [Settings.Validate] checks every field eagerly so a bad
// file fails before any record is read. Helper methods translate the
// settings into the option values of the wavefield and window packages.
//
// # Example
//
//	workflow: time-domain
//	stack:
//	  align: true
//	trim:
//	  start: 0
//	  end: 1.0
//	pad:
//	  df: 0.2
//	transform:
//	  method: fdbf
//	  weighting: sqrt
//	  steering: cylindrical
//	  fmin: 5
//	  fmax: 80
//	  vmin: 80
//	  vmax: 600
//	  nvel: 400
package config
