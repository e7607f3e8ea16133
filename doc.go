// SPDX-License-Identifier: EPL-2.0

// Package audmix mixes mu-law companded telephony audio streams.
//
// The package is built for narrowband voice pipelines (commonly 8 kHz
// telephony): a host hands it whole mu-law byte buffers and gets whole
// mu-law byte buffers back. Typical use is whispering an announcement
// into a live call leg.
//
// # Operations
//
// Three operations cover the pipeline:
//
//	// Overlay a whisper prompt on a call, 60% whisper volume,
//	// 80% original volume, 120ms fades, 8 kHz.
//	cfg := audmix.NewConfig(0.6, 0.8, 120, 120, 8000)
//	mixed := audmix.Mix(callAudio, whisperAudio, cfg)
//
//	// Attenuate a stream.
//	quieter := audmix.ReduceVolume(callAudio, 0.5)
//
//	// Synthesize half a second of silence.
//	pad := audmix.Silence(500, 8000)
//
// # Subpackages
//
// The numeric building blocks live in subpackages and can be used
// directly:
//   - mulaw: the mu-law byte <-> 16-bit linear sample codec
//   - mixer: volume scaling, fade envelopes, saturating mix
//   - boundary: base64 text encoding for host boundaries
//   - formats: file-format readers (WAV, MP3, Ogg Vorbis, AIFF) that
//     normalize file audio into mono mu-law buffers
//
// # Guarantees
//
// Every operation is a total function: there are no error returns and
// no panics anywhere in the numeric core. Arithmetic that would leave
// the 16-bit sample range saturates instead of wrapping. All calls are
// pure and reentrant; nothing is shared between calls, so no locking is
// needed under concurrent use.
package audmix
