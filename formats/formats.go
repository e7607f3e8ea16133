// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
)

// ReadFunc decodes a complete audio file into mono mu-law bytes and
// reports the file's native sample rate. Readers never resample; rate
// agreement is left to the caller.
type ReadFunc func(r io.Reader) (mu []byte, sampleRate int, err error)

// Registry maps format keys (e.g. "wav", "mp3", "ogg") to readers, so
// hosts can dispatch loaders by file extension.
type Registry struct {
	readers map[string]ReadFunc

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]ReadFunc),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, fn ReadFunc) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.readers[format] = fn
}

func (r *Registry) Get(format string) (ReadFunc, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	fn, ok := r.readers[format]
	return fn, ok
}

// Downmix folds interleaved multi-channel integer samples to mono by
// channel averaging, clamping each result to the int16 range. Mono
// input is clamped and converted as-is. A trailing partial frame is
// dropped.
func Downmix(data []int, channels int) []int16 {
	if channels <= 1 {
		samples := make([]int16, len(data))
		for i, v := range data {
			samples[i] = clampInt(v)
		}
		return samples
	}

	frames := len(data) / channels
	samples := make([]int16, frames)
	for f := 0; f < frames; f++ {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += data[f*channels+c]
		}
		samples[f] = clampInt(sum / channels)
	}

	return samples
}

func clampInt(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// ReadSeeker returns r unchanged when it already seeks, otherwise it
// buffers the remaining data in memory. Some decoder libraries require
// seeking, while callers often hold plain readers.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering reader: %w", err)
	}

	return bytes.NewReader(data), nil
}
