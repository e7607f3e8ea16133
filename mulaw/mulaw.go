// SPDX-License-Identifier: EPL-2.0

package mulaw

import "math"

const (
	muLawMax  = 0x1fff
	muLawBias = 33
)

// Silence is the mu-law code for a zero-amplitude sample.
// Silence buffers use this byte directly instead of running
// zero samples through Encode.
const Silence byte = 0xFF

// Decode converts one mu-law byte to a signed 16-bit linear sample.
// It is defined for every byte value and never fails.
func Decode(b byte) int16 {
	b = ^b
	sign := b & 0x80
	exponent := (b >> 4) & 0x07
	mantissa := b & 0x0f

	// The shift is carried out in int32 so an overflowing result can be
	// clamped instead of wrapping.
	shifted := (int32(mantissa)<<3 + 0x84) << exponent
	if shifted > math.MaxInt16 {
		shifted = math.MaxInt16
	}
	sample := shifted - 0x84

	if sign != 0 {
		if sample == math.MinInt16 {
			return math.MaxInt16
		}
		return int16(-sample)
	}

	return int16(sample)
}

// Encode converts one signed 16-bit linear sample to a mu-law byte.
// It is defined for every sample value and never fails.
func Encode(sample int16) byte {
	var sign byte
	if sample < 0 {
		sign = 0x80
	}

	magnitude := int32(sample)
	if magnitude < 0 {
		magnitude = -magnitude
	}
	// |MinInt16| is not representable as int16; use MaxInt16 instead.
	if magnitude > math.MaxInt16 {
		magnitude = math.MaxInt16
	}

	magnitude += muLawBias
	if magnitude > muLawMax {
		magnitude = muLawMax
	}

	exponent := byte(7)
	for mask := int32(0x1000); exponent > 0 && magnitude&mask == 0; mask >>= 1 {
		exponent--
	}
	mantissa := byte(magnitude>>(exponent+3)) & 0x0f

	return ^(sign | exponent<<4 | mantissa)
}

// DecodeBytes decodes a whole mu-law buffer to linear samples,
// preserving order and length.
func DecodeBytes(mu []byte) []int16 {
	samples := make([]int16, len(mu))
	for i, b := range mu {
		samples[i] = Decode(b)
	}

	return samples
}

// EncodeSamples encodes a whole linear sample buffer to mu-law bytes,
// preserving order and length.
func EncodeSamples(samples []int16) []byte {
	mu := make([]byte, len(samples))
	for i, s := range samples {
		mu[i] = Encode(s)
	}

	return mu
}
