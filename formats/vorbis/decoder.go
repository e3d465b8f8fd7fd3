// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/keyfind/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads whole frames; size the scratch buffer to a frame
	// multiple so no frame is split. A destination smaller than one
	// frame cannot make progress.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	// Vorbis is float32 natively, no conversion needed.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
