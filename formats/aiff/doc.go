// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF audio for the mixing core.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Only PCM 16-bit files are supported; multi-channel files are folded
// to mono by channel averaging before companding to mu-law.
//
// # Reading AIFF Files
//
//	file, _ := os.Open("prompt.aiff")
//	mu, rate, err := aiff.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	// mu is mono mu-law audio at the file's native rate
//
// # Error Handling
//
// The package defines three error values:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: the file is valid but not PCM 16-bit
//   - ErrUnsupportedAiffLayout: the file carries no usable format info
//
// The reader never resamples; the reported rate is the file's own.
package aiff
