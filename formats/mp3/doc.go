// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MP3 audio for the mixing core.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3
// streams. go-mp3 always outputs 16-bit little-endian stereo; the two
// channels are averaged to mono before companding to mu-law.
//
// # Reading MP3 Files
//
//	file, _ := os.Open("prompt.mp3")
//	mu, rate, err := mp3.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	// mu is mono mu-law audio at the stream's native rate
//
// The reader never resamples; the reported rate is the stream's own.
// Malformed streams return a wrapped error from the underlying decoder.
package mp3
