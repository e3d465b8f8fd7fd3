// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM buffer and input primitives for key
// detection.
//
// This package contains the building blocks the classification core consumes:
//   - Buffer, a growable interleaved PCM sample sequence with frame-rate and
//     channel metadata, plus the in-place reductions analysis needs
//   - Source interface for streaming audio input
//   - Format registry for decoder registration
//
// # Buffer
//
// Buffer is the unit of work handed to the classifier. A caller fills it with
// decoded samples, then optionally shrinks it before analysis:
//
//	buf := audio.NewBuffer()
//	buf.SetFrameRate(44100)
//	buf.SetChannels(2)
//	buf.Append(samples)
//
//	buf.ReduceToMono() // average each frame's channels
//	buf.Downsample(2)  // keep every 2nd frame, frame rate becomes 22050
//
// Both reductions operate in place and in frame order. Downsampling is plain
// decimation (whole frames dropped, no anti-aliasing filter), which matches
// what the analysis stage expects.
//
// All Buffer operations are total: they do not return errors and do not
// panic, even on unconfigured metadata. A buffer with inconsistent metadata
// only becomes consequential when classified, where it degrades to a silence
// result.
//
// # Source Interface
//
// Source abstracts streaming PCM input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// The format decoders all return Sources; Buffer.ReadAll bridges a Source
// into a Buffer in one call.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that pick a decoder by file extension.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths.
//
// # Concurrency
//
// A Buffer is exclusively owned by one caller at a time; there is no internal
// locking and no atomicity guarantee beyond a single completed operation.
// Concurrent analyses must each use their own Buffer.
package audio
