// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/formats"
	"github.com/ik5/audmix/mulaw"
)

// Read decodes a PCM 16-bit WAV file into mono mu-law bytes and reports
// the file's sample rate. Multi-channel files are folded to mono by
// channel averaging. The reader is buffered in memory when it cannot
// seek, as the go-audio decoder requires seeking.
func Read(r io.Reader) ([]byte, int, error) {
	rs, err := formats.ReadSeeker(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, 0, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav samples: %w", err)
	}

	samples := formats.Downmix(buf.Data, buf.Format.NumChannels)

	return mulaw.EncodeSamples(samples), buf.Format.SampleRate, nil
}

// Write exports mono mu-law audio as a PCM 16-bit WAV file at
// sampleRate, e.g. for recording a mixed call leg.
func Write(w io.WriteSeeker, sampleRate int, mu []byte) error {
	samples := mulaw.DecodeBytes(mu)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}
