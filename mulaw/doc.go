// SPDX-License-Identifier: EPL-2.0

// Package mulaw converts between mu-law companded telephony bytes and
// 16-bit linear PCM samples.
//
// Mu-law is the companding scheme used on 8 kHz telephony trunks: one
// byte carries one sample, with higher resolution for quiet sounds at
// the cost of precision on loud ones.
//
// # Totality
//
// Both directions are total functions. Every byte value 0-255 decodes
// to a defined sample and every sample in [-32768, 32767] encodes to a
// defined byte; there are no error paths. Arithmetic that would leave
// the 16-bit range is clamped, never wrapped.
//
// # Lossiness
//
// Companding trades precision for dynamic range, so round trips are
// approximate:
//
//	sample := mulaw.Decode(mulaw.Encode(1000))
//	// sample is close to, but not exactly, 1000
//
// # Buffers
//
// Whole-buffer forms preserve order and length:
//
//	samples := mulaw.DecodeBytes(muLawBytes)
//	muLawBytes = mulaw.EncodeSamples(samples)
//
// The byte 0xFF (exported as Silence) is the mu-law code for a
// zero-amplitude sample.
package mulaw
