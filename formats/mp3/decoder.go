// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/mulaw"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Read decodes an MP3 stream into mono mu-law bytes and reports its
// sample rate. go-mp3 always emits 16-bit little-endian stereo, so the
// two channels are averaged before companding.
func Read(r io.Reader) ([]byte, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return readAll(dec)
}

func readAll(dec mp3Reader) ([]byte, int, error) {
	// One stereo frame: 2 channels * 2 bytes.
	const frameBytes = 4

	var mu []byte
	buf := make([]byte, 8192)
	carry := 0 // partial frame bytes kept between reads

	for {
		n, err := dec.Read(buf[carry:])

		total := carry + n
		frames := total / frameBytes
		for f := 0; f < frames; f++ {
			left := int16(binary.LittleEndian.Uint16(buf[f*frameBytes:]))
			right := int16(binary.LittleEndian.Uint16(buf[f*frameBytes+2:]))
			mono := int16((int32(left) + int32(right)) / 2)
			mu = append(mu, mulaw.Encode(mono))
		}

		carry = total - frames*frameBytes
		if carry > 0 {
			copy(buf, buf[frames*frameBytes:total])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding mp3 frames: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return mu, dec.SampleRate(), nil
}
