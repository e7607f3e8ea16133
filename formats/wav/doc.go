// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio for the mixing core.
//
// This package uses github.com/go-audio/wav for WAV file handling.
// Read ingests PCM 16-bit WAV files as mono mu-law bytes; Write exports
// mu-law audio back to a mono PCM 16-bit WAV file.
//
// # Reading WAV Files
//
//	file, _ := os.Open("prompt.wav")
//	mu, rate, err := wav.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	// mu is mono mu-law audio at the file's native rate
//
// Stereo and other multi-channel files are folded to mono by channel
// averaging before companding. The reader never resamples.
//
// # Writing WAV Files
//
//	out, _ := os.Create("recording.wav")
//	err := wav.Write(out, 8000, mixedAudio)
//
// Write needs an io.WriteSeeker because the encoder patches the header
// after the data chunk is known.
//
// # Error Handling
//
// The package defines two error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the file is valid but not PCM 16-bit
//
// Read errors from the underlying decoder are wrapped and can be
// unwrapped with errors.Is / errors.As.
package wav
