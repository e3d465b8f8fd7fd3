// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing.
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// Whole 16-bit little-endian samples only.
	want := len(buf) / 2
	if avail := len(m.samples) - m.offset; want > avail {
		want = avail
	}

	for i := range want {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}
	m.offset += want

	if m.offset >= len(m.samples) {
		return want * 2, io.EOF
	}

	return want * 2, nil
}

func newMockSource(samples []int16) *source {
	return &source{
		dec: &mockMP3Reader{
			sampleRate: 44100,
			samples:    samples,
		},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not MP3 data")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(make([]int16, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamplesNormalizes(t *testing.T) {
	t.Parallel()

	src := newMockSource([]int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0})

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	want := []float32{0.0, 0.5, 32767.0 / 32768.0, -0.5, -1.0, 0.25, -0.25, 0.0}
	for i, w := range want {
		if math.Abs(float64(dst[i]-w)) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newMockSource(make([]int16, 100))

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource([]int16{100, 200, 300, 400})

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() after EOF error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() after EOF n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10)
	for i := range samples {
		samples[i] = int16(i * 1000)
	}
	src := newMockSource(samples)

	dst := make([]float32, 4)
	counts := []int{4, 4, 2}
	for step, want := range counts {
		n, err := src.ReadSamples(dst)
		if err != nil && err != io.EOF {
			t.Fatalf("ReadSamples() step %d error = %v", step, err)
		}
		if n != want {
			t.Errorf("ReadSamples() step %d n = %d, want %d", step, n, want)
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{returnErrors: true},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 10)
	_, err := src.ReadSamples(dst)

	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	src := newMockSource(make([]int16, 1000))
	src.buf = make([]byte, 100)

	dst := make([]float32, 1000)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if cap(src.buf) < 2000 {
		t.Errorf("buffer capacity = %d, want >= 2000", cap(src.buf))
	}
}

// BenchmarkSource_ReadSamples benchmarks decoding plus conversion.
func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mockReader := &mockMP3Reader{sampleRate: 44100, samples: samples}
	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		mockReader.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
