// SPDX-License-Identifier: EPL-2.0

package keyfind

import (
	"github.com/ik5/keyfind/audio"
	"github.com/ik5/keyfind/engine"
)

// KeyFinder classifies the musical key of PCM audio held in an audio.Buffer.
// It keeps no buffer state between calls and builds a fresh analysis context
// for every classification, so one KeyFinder may be reused across independent
// inputs without cross-call contamination.
type KeyFinder struct {
	params engine.Params
}

// New returns a KeyFinder using the engine's default analysis parameters.
func New() *KeyFinder {
	return &KeyFinder{params: engine.DefaultParams()}
}

// NewWithParams returns a KeyFinder with custom analysis parameters.
func NewWithParams(params engine.Params) *KeyFinder {
	return &KeyFinder{params: params}
}

// KeyOfAudio classifies the buffer's contents and returns one of the 24 keys
// or KeySilence. The buffer is read, never mutated.
//
// The engine is only invoked with well-formed metadata: a nil buffer, a zero
// frame rate, a zero channel count, or a sample count not aligned to the
// channel count classifies as KeySilence without touching the engine.
func (kf *KeyFinder) KeyOfAudio(buf *audio.Buffer) Key {
	if buf == nil {
		return KeySilence
	}

	rate := buf.FrameRate()
	channels := buf.Channels()

	if rate == 0 || channels == 0 || buf.SampleCount()%channels != 0 {
		return KeySilence
	}

	eng := engine.NewWithParams(kf.params)

	return KeyFromCode(eng.KeyOfAudio(buf.Samples(), rate, channels))
}
