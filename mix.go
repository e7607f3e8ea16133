// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/mulaw"
)

// Mix overlays a whisper stream on top of an original stream and returns
// the mixed audio. Both inputs and the result are mu-law byte buffers.
//
// The whisper stream is scaled by the configured whisper volume and
// wrapped in linear fade envelopes; the original stream is scaled by the
// original volume unless that volume is exactly 1.0, which is treated as
// a no-op to avoid needless truncation. The two streams are then summed
// with clipping protection, the shorter one padded with silence, and the
// result is re-encoded. The output length is the longer input's length.
func Mix(original, whisper []byte, cfg Config) []byte {
	fadeIn := fadeSamples(cfg.fadeInMS, cfg.sampleRate)
	fadeOut := fadeSamples(cfg.fadeOutMS, cfg.sampleRate)

	originalSamples := mulaw.DecodeBytes(original)
	whisperSamples := mulaw.DecodeBytes(whisper)

	// Volume and fade envelopes are applied to the whisper in a single
	// pass. A sample inside both fade windows gets only the fade-in
	// scaling: the window checks are mutually exclusive, fade-in first.
	whisperLen := len(whisperSamples)
	for i, s := range whisperSamples {
		scaled := mixer.ApplyVolume(s, cfg.whisperVolume)

		switch {
		case i < fadeIn:
			scaled = mixer.ApplyVolume(scaled, float64(i)/float64(fadeIn))
		case fadeOut > 0 && i >= whisperLen-fadeOut:
			scaled = mixer.ApplyVolume(scaled, float64(whisperLen-1-i)/float64(fadeOut))
		}

		whisperSamples[i] = scaled
	}

	if cfg.originalVolume != 1.0 {
		for i, s := range originalSamples {
			originalSamples[i] = mixer.ApplyVolume(s, cfg.originalVolume)
		}
	}

	return mulaw.EncodeSamples(mixer.Mix(originalSamples, whisperSamples))
}

// ReduceVolume scales every sample of a mu-law buffer by volume and
// returns the re-encoded result. Unlike Mix, a 1.0 volume still runs
// through the codec, so the output is always a fresh companding pass.
func ReduceVolume(audio []byte, volume float64) []byte {
	samples := mulaw.DecodeBytes(audio)
	for i, s := range samples {
		samples[i] = mixer.ApplyVolume(s, volume)
	}

	return mulaw.EncodeSamples(samples)
}

// Silence synthesizes durationMS milliseconds of mu-law silence at the
// given sample rate. Durations that floor to zero samples or below
// yield an empty buffer.
func Silence(durationMS, sampleRate float64) []byte {
	count := int((durationMS / 1000.0) * sampleRate)
	if count <= 0 {
		return nil
	}

	silence := make([]byte, count)
	for i := range silence {
		silence[i] = mulaw.Silence
	}

	return silence
}

// fadeSamples converts a fade duration to a whole sample count,
// truncating fractions and flooring negatives at zero.
func fadeSamples(durationMS, sampleRate float64) int {
	count := int((durationMS / 1000.0) * sampleRate)
	if count < 0 {
		return 0
	}

	return count
}
