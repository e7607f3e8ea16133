// SPDX-License-Identifier: EPL-2.0

// Package mixer provides stateless per-sample and per-buffer transforms
// on 16-bit linear PCM: volume scaling, linear fade envelopes, and
// two-buffer mixing with clipping protection.
//
// # Saturation
//
// All arithmetic that could leave the 16-bit range saturates to
// [-32768, 32767] instead of wrapping. Mix computes each sum in a wider
// integer and clamps it before narrowing:
//
//	mixed := mixer.Mix(a, b)
//	// every element of mixed is within the int16 range
//
// # Fades
//
// ApplyFade tapers the edges of a buffer with linear ramps. The first
// fade-in sample is scaled to zero and the last fade-out sample is
// scaled to zero:
//
//	faded := mixer.ApplyFade(samples, 80, 80)
//
// All functions operate on whole buffers, keep samples in order, and
// share no state between calls.
package mixer
