// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing. Like the
// real reader, Read returns a sample count that is always a multiple of the
// channel count.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := len(buf)
	if avail := len(m.samples) - m.offset; n > avail {
		n = avail
	}
	n = (n / m.channels) * m.channels

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))

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

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 44100,
			channels:   2,
			samples:    make([]float32, 100),
		},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   2,
			samples:    testSamples,
		},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	for i := 0; i < n; i++ {
		if dst[i] != testSamples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamplesWholeFrames(t *testing.T) {
	t.Parallel()

	// A dst that is not a frame multiple must still receive whole frames.
	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   2,
			samples:    testSamples,
		},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n%2 != 0 {
		t.Errorf("ReadSamples() n = %d, want a multiple of 2", n)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   1,
			samples:    make([]float32, 100),
		},
		sampleRate: 8000,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

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

	testSamples := []float32{0.1, 0.2, 0.3, 0.4}

	src := &source{
		dec: &mockOggVorbisReader{
			sampleRate: 8000,
			channels:   2,
			samples:    testSamples,
		},
		sampleRate: 8000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)

	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	// Subsequent reads report EOF with no data.
	n, err = src.ReadSamples(dst)
	if n != 0 {
		t.Errorf("ReadSamples() after EOF n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() after EOF error = %v, want io.EOF", err)
	}
}
