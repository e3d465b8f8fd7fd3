// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// Source is a stream of decoded PCM audio.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ReadAll drains src into the buffer, appending every sample in stream order.
// When the buffer's frame rate or channel count is unset, it adopts the
// source's metadata before reading. Returns ErrNilSource for a nil source;
// any source read error is returned wrapped, with the samples read so far
// already appended.
func (b *Buffer) ReadAll(src Source) error {
	if src == nil {
		return ErrNilSource
	}

	if b.frameRate == 0 && src.SampleRate() > 0 {
		b.SetFrameRate(uint(src.SampleRate()))
	}
	if b.channels == 0 && src.Channels() > 0 {
		b.SetChannels(uint(src.Channels()))
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			b.Append(buf[:n])
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}
