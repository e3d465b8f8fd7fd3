// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer owns a growable sequence of interleaved float32 PCM samples together
// with the frame rate and channel count that produced them. Samples are laid
// out frame by frame (frame 0 channel 0, frame 0 channel 1, frame 1 channel 0,
// ...) and are expected, but not enforced, to lie in [-1.0, 1.0].
//
// A Buffer starts empty and unconfigured; callers set the metadata, append
// samples, and optionally reduce the data before classification. None of the
// operations fail or panic: inconsistent metadata (for example a zero channel
// count next to a non-empty sample sequence) is representable and only
// matters at the classification boundary.
//
// A Buffer is owned by a single caller at a time and performs no locking.
type Buffer struct {
	samples   []float32
	frameRate uint
	channels  uint
}

// NewBuffer returns an empty buffer with frame rate and channel count unset.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetFrameRate sets the samples-per-second-per-channel metadata. Zero is
// representable but meaningless; classification treats it as malformed.
func (b *Buffer) SetFrameRate(rate uint) { b.frameRate = rate }

// FrameRate returns the configured frame rate, 0 when unset.
func (b *Buffer) FrameRate() uint { return b.frameRate }

// SetChannels sets the channel count metadata.
func (b *Buffer) SetChannels(n uint) { b.channels = n }

// Channels returns the configured channel count, 0 when unset.
func (b *Buffer) Channels() uint { return b.channels }

// Append adds samples to the end of the buffer, preserving order. Calling it
// with an empty slice is a no-op. The append is a single bulk copy, so large
// batches carry no per-sample overhead.
func (b *Buffer) Append(samples []float32) {
	if len(samples) == 0 {
		return
	}

	b.samples = append(b.samples, samples...)
}

// SampleCount returns the total number of samples across all channels.
func (b *Buffer) SampleCount() uint {
	return uint(len(b.samples))
}

// FrameCount returns SampleCount divided by the channel count, or 0 when the
// channel count is unset. An unconfigured buffer has no meaningful frame
// count, so 0 is a defined fallback rather than an error.
func (b *Buffer) FrameCount() uint {
	if b.channels == 0 {
		return 0
	}

	return uint(len(b.samples)) / b.channels
}

// Samples exposes the underlying sample sequence. The slice aliases the
// buffer's storage; callers reading it must not hold it across mutations.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// ReduceToMono replaces every frame with the arithmetic mean of its
// per-channel samples and sets the channel count to 1. Frames are folded in
// strict order, so accumulation and rounding are deterministic across runs.
// Already-mono, unconfigured, and empty buffers are left untouched.
func (b *Buffer) ReduceToMono() {
	if b.channels <= 1 || len(b.samples) == 0 {
		return
	}

	channels := int(b.channels)
	frames := len(b.samples) / channels
	mono := b.samples[:frames]

	// Write position f never passes read position f*channels, so the fold
	// can reuse the buffer's own storage.
	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			idx := 2 * f
			mono[f] = (b.samples[idx] + b.samples[idx+1]) * 0.5
		}
	default:
		inv := 1.0 / float32(channels)
		for f := 0; f < frames; f++ {
			base := f * channels
			var sum float32
			for c := 0; c < channels; c++ {
				sum += b.samples[base+c]
			}
			mono[f] = sum * inv
		}
	}

	b.samples = mono
	b.channels = 1
}

// Downsample keeps the first frame and every factor-th frame after it,
// discarding the rest, and divides the frame rate by factor using integer
// division. This is plain decimation, not filtered resampling. Kept frames
// move as whole units; a frame is never split across the cut. A factor of 0
// or 1 is a no-op, as is an unconfigured channel count (no frame structure
// to decimate).
func (b *Buffer) Downsample(factor uint) {
	if factor <= 1 || b.channels == 0 {
		return
	}

	b.frameRate /= factor

	channels := int(b.channels)
	step := int(factor) * channels
	kept := 0

	for base := 0; base+channels <= len(b.samples); base += step {
		copy(b.samples[kept:kept+channels], b.samples[base:base+channels])
		kept += channels
	}

	b.samples = b.samples[:kept]
}
