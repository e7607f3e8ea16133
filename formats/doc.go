// SPDX-License-Identifier: EPL-2.0

// Package formats feeds the mixing core from common audio file formats.
//
// Each subpackage reads one format and hands back mono mu-law bytes at
// the file's native sample rate:
//   - WAV (PCM 16-bit) via formats/wav, which can also export mu-law
//     audio back to WAV
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Multi-channel files are folded to mono by channel averaging before
// the audio enters the mono core. Readers never resample: they report
// the file's rate and leave rate agreement to the host.
//
// # Registry
//
// The Registry dispatches readers by format key:
//
//	reg := formats.NewRegistry()
//	reg.Register("wav", wav.Read)
//	reg.Register("mp3", mp3.Read)
//
//	read, ok := reg.Get("wav")
//	if ok {
//	    mu, rate, err := read(file)
//	    ...
//	}
package formats
