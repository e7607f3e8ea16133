// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis audio for the mixing core.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Vorbis
// streams. Decoded float32 samples are averaged to mono, clamped to the
// int16 range, and companded to mu-law.
//
// # Reading Vorbis Files
//
//	file, _ := os.Open("prompt.ogg")
//	mu, rate, err := vorbis.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	// mu is mono mu-law audio at the stream's native rate
//
// The reader never resamples. Malformed streams return a wrapped error
// from the underlying decoder.
package vorbis
