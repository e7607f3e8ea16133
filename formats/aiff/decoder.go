package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/formats"
	"github.com/ik5/audmix/mulaw"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Read decodes a PCM 16-bit AIFF file into mono mu-law bytes and
// reports the file's sample rate. Multi-channel files are folded to
// mono by channel averaging. The reader is buffered in memory when it
// cannot seek, as the go-audio decoder requires seeking.
func Read(r io.Reader) ([]byte, int, error) {
	rs, err := formats.ReadSeeker(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, 0, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	return readAll(dec, format)
}

func readAll(dec aiffReader, format *goaudio.Format) ([]byte, int, error) {
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	var data []int
	for {
		n, err := dec.PCMBuffer(intBuf)
		if n > 0 {
			data = append(data, intBuf.Data[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	samples := formats.Downmix(data, format.NumChannels)

	return mulaw.EncodeSamples(samples), format.SampleRate, nil
}
