// SPDX-License-Identifier: EPL-2.0

package boundary

import (
	"encoding/base64"

	"github.com/ik5/audmix"
)

// Encode wraps a raw mu-law buffer in the boundary text encoding
// (standard base64 alphabet with padding).
func Encode(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}

// Decode unwraps boundary-encoded text back to a raw mu-law buffer.
// Malformed text yields an empty buffer, never an error: hosts passing
// garbage get empty audio back from every operation built on this.
func Decode(text string) []byte {
	audio, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil
	}

	return audio
}

// Mix is the boundary-encoded form of audmix.Mix.
func Mix(original, whisper string, cfg audmix.Config) string {
	return Encode(audmix.Mix(Decode(original), Decode(whisper), cfg))
}

// ReduceVolume is the boundary-encoded form of audmix.ReduceVolume.
func ReduceVolume(audio string, volume float64) string {
	return Encode(audmix.ReduceVolume(Decode(audio), volume))
}

// Silence is the boundary-encoded form of audmix.Silence.
func Silence(durationMS, sampleRate float64) string {
	return Encode(audmix.Silence(durationMS, sampleRate))
}
