// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// ApplyVolume scales a single sample by a non-negative multiplier,
// truncating toward zero. Results outside the int16 range saturate.
func ApplyVolume(sample int16, volume float64) int16 {
	scaled := float64(sample) * volume
	if scaled >= math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(scaled)
}

// ApplyFade returns a copy of samples with linear fade envelopes applied:
// the first fadeInSamples ramp up from zero and the last fadeOutSamples
// ramp down to zero. Regions larger than the buffer are clipped to it,
// while the ramp slopes keep the requested counts as denominators. When
// the two regions overlap, both scalings apply in sequence.
func ApplyFade(samples []int16, fadeInSamples, fadeOutSamples int) []int16 {
	result := make([]int16, len(samples))
	copy(result, samples)

	if fadeInSamples <= 0 && fadeOutSamples <= 0 {
		return result
	}

	length := len(result)

	if fadeInSamples > 0 {
		fadeInEnd := min(fadeInSamples, length)
		for i := 0; i < fadeInEnd; i++ {
			result[i] = ApplyVolume(result[i], float64(i)/float64(fadeInSamples))
		}
	}

	if fadeOutSamples > 0 {
		fadeOutStart := max(length-fadeOutSamples, 0)
		for i := fadeOutStart; i < length; i++ {
			result[i] = ApplyVolume(result[i], float64(length-1-i)/float64(fadeOutSamples))
		}
	}

	return result
}

// Mix sums two sample buffers into one of length max(len(a), len(b)).
// An index past the end of one buffer contributes zero. Every sum is
// computed in int32 and clamped to the int16 range before narrowing;
// the clamp runs on every output sample, with no passthrough fast path.
func Mix(a, b []int16) []int16 {
	result := make([]int16, max(len(a), len(b)))

	for i := range result {
		var sa, sb int32
		if i < len(a) {
			sa = int32(a[i])
		}
		if i < len(b) {
			sb = int32(b[i])
		}

		sum := sa + sb
		if sum > math.MaxInt16 {
			sum = math.MaxInt16
		} else if sum < math.MinInt16 {
			sum = math.MinInt16
		}

		result[i] = int16(sum)
	}

	return result
}
