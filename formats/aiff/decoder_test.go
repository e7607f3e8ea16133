// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/mulaw"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	chunkSamples int // cap per PCMBuffer call; 0 means fill the buffer
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := len(buf.Data)
	if m.chunkSamples > 0 && n > m.chunkSamples {
		n = m.chunkSamples
	}
	if avail := len(m.samples) - m.offset; n > avail {
		n = avail
	}

	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func TestRead_InvalidInput(t *testing.T) {
	t.Parallel()

	_, _, err := Read(bytes.NewReader([]byte("This is not AIFF data")))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Read() error = %v, want ErrNotAiffFile", err)
	}
}

func TestRead_EmptyInput(t *testing.T) {
	t.Parallel()

	_, _, err := Read(bytes.NewReader(nil))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Read() error = %v, want ErrNotAiffFile", err)
	}
}

func TestReadAll_Mono(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		sampleRate: 8000,
		channels:   1,
		samples:    []int{0, 100, -100, 5116, -5116},
	}

	mu, rate, err := readAll(mock, mock.Format())
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("readAll() rate = %d, want 8000", rate)
	}

	want := mulaw.EncodeSamples([]int16{0, 100, -100, 5116, -5116})
	if !bytes.Equal(mu, want) {
		t.Errorf("readAll() = %X, want %X", mu, want)
	}
}

func TestReadAll_DownmixesStereo(t *testing.T) {
	t.Parallel()

	// L/R pairs averaging to 200, -200, 150.
	mock := &mockAiffReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []int{100, 300, -100, -300, 100, 200},
	}

	mu, rate, err := readAll(mock, mock.Format())
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("readAll() rate = %d, want 44100", rate)
	}

	want := mulaw.EncodeSamples([]int16{200, -200, 150})
	if !bytes.Equal(mu, want) {
		t.Errorf("readAll() = %X, want %X", mu, want)
	}
}

// TestReadAll_ChunkedReads verifies samples collected across several
// PCMBuffer calls stay in order.
func TestReadAll_ChunkedReads(t *testing.T) {
	t.Parallel()

	samples := make([]int, 100)
	for i := range samples {
		samples[i] = i * 50
	}

	mock := &mockAiffReader{
		sampleRate:   8000,
		channels:     1,
		samples:      samples,
		chunkSamples: 7,
	}

	mu, _, err := readAll(mock, mock.Format())
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	want := make([]int16, len(samples))
	for i, v := range samples {
		want[i] = int16(v)
	}

	if !bytes.Equal(mu, mulaw.EncodeSamples(want)) {
		t.Error("readAll() with chunked reads differs from whole-buffer result")
	}
}

func TestReadAll_PropagatesErrors(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		sampleRate:   8000,
		channels:     1,
		samples:      make([]int, 100),
		returnErrors: true,
	}

	if _, _, err := readAll(mock, mock.Format()); err == nil {
		t.Error("readAll() error = nil, want decoder error")
	}
}

// BenchmarkReadAll measures ingesting one second of 8 kHz mono.
func BenchmarkReadAll(b *testing.B) {
	samples := make([]int, 8000)
	for i := range samples {
		samples[i] = i%2000 - 1000
	}

	b.ReportAllocs()

	for bi := 0; bi < b.N; bi++ {
		mock := &mockAiffReader{sampleRate: 8000, channels: 1, samples: samples}
		_, _, _ = readAll(mock, mock.Format())
	}
}
