// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Waveform builds a buffer of n linear samples from a per-index
// generator. It is the building block for the other helpers and does
// not depend on the codec packages, to keep it usable from their tests.
func Waveform(n int, gen func(i int) int16) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = gen(i)
	}

	return samples
}

// Sine generates n samples of a sine tone at the given frequency and
// peak amplitude.
func Sine(sampleRate, n int, frequency float64, amplitude int16) []int16 {
	return Waveform(n, func(i int) int16 {
		t := float64(i) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// Constant generates n copies of value.
func Constant(n int, value int16) []int16 {
	return Waveform(n, func(int) int16 {
		return value
	})
}

// Ramp generates n samples rising linearly from zero toward peak.
func Ramp(n int, peak int16) []int16 {
	return Waveform(n, func(i int) int16 {
		if n <= 1 {
			return peak
		}
		return int16(float64(peak) * float64(i) / float64(n-1))
	})
}
