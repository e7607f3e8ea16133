// SPDX-License-Identifier: EPL-2.0

package audmix

// Config holds the parameters for mixing a whisper stream over an
// original call stream. All fields are fixed at construction.
type Config struct {
	whisperVolume  float64
	originalVolume float64
	fadeInMS       float64
	fadeOutMS      float64
	sampleRate     float64
}

// NewConfig builds a mixing configuration.
//
// whisperVolume and originalVolume are non-negative multipliers
// (typically 0.0-1.0). fadeInMS and fadeOutMS are the whisper fade
// durations in milliseconds. sampleRate is in samples per second.
func NewConfig(whisperVolume, originalVolume, fadeInMS, fadeOutMS, sampleRate float64) Config {
	return Config{
		whisperVolume:  whisperVolume,
		originalVolume: originalVolume,
		fadeInMS:       fadeInMS,
		fadeOutMS:      fadeOutMS,
		sampleRate:     sampleRate,
	}
}
