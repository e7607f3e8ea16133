package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/mulaw"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Read decodes an Ogg Vorbis stream into mono mu-law bytes and reports
// its sample rate. Multi-channel streams are averaged to mono, and the
// float32 samples are clamped to the int16 range before companding.
func Read(r io.Reader) ([]byte, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return readAll(dec)
}

func readAll(dec oggReader) ([]byte, int, error) {
	channels := dec.Channels()

	var mu []byte
	buf := make([]float32, 4096)
	carry := 0 // interleaved values of a partial frame kept between reads

	for {
		n, err := dec.Read(buf[carry:])

		total := carry + n
		frames := total / channels
		for f := 0; f < frames; f++ {
			var sum float32
			for c := 0; c < channels; c++ {
				sum += buf[f*channels+c]
			}
			mu = append(mu, mulaw.Encode(float32ToInt16(sum/float32(channels))))
		}

		carry = total - frames*channels
		if carry > 0 {
			copy(buf, buf[frames*channels:total])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding ogg vorbis frames: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return mu, dec.SampleRate(), nil
}

// float32ToInt16 clamps x to [-1, 1] and scales it to the int16 range,
// using 32767 on both sides to keep the conversion symmetric.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
