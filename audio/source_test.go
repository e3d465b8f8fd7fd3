// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/ik5/keyfind/internal/audiotest"
)

// stubDecoder returns a fixed source for registry tests.
type stubDecoder struct{}

func (stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(8000, 1, 10), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(\"wav\") not found after Register")
	}
	if dec == nil {
		t.Fatal("Get(\"wav\") returned nil decoder")
	}
}

func TestRegistry_UnknownFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(\"flac\") found a decoder in an empty registry")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{})
	reg.Register("wav", stubDecoder{})

	if _, ok := reg.Get("wav"); !ok {
		t.Error("Get(\"wav\") not found after re-registration")
	}
}
