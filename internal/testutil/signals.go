package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp returns start, start+step, ... with length samples.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Ricker generates a Ricker (Mexican hat) wavelet with peak frequency fc,
// centred at t0 and sampled every dt.
func Ricker(fc, t0, dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		a := math.Pi * fc * (float64(i)*dt - t0)
		a *= a
		out[i] = (1 - 2*a) * math.Exp(-a)
	}
	return out
}

// PlaneWaveGather synthesizes one trace per offset for a wavefield made of
// cosines at the DFT bins listed in bins. Each bin travels at the phase
// velocity returned by velocity(f). Because the content sits exactly on
// DFT bins, the spectra of the traces carry the phase delays exactly.
func PlaneWaveGather(offsets []float64, bins []int, velocity func(f float64) float64, dt float64, length int) [][]float64 {
	df := 1 / (float64(length) * dt)
	out := make([][]float64, len(offsets))
	for c, x := range offsets {
		trace := make([]float64, length)
		for _, k := range bins {
			f := float64(k) * df
			delay := x / velocity(f)
			for i := range trace {
				trace[i] += math.Cos(2 * math.Pi * f * (float64(i)*dt - delay))
			}
		}
		out[c] = trace
	}
	return out
}
