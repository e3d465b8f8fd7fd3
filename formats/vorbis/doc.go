// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0]. Vorbis decodes to float
// natively, so no conversion loss occurs.
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples always returns a whole number of frames; a stereo source
// never splits a left/right pair across two reads.
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - Reading is frame-based (decode entire frames)
package vorbis
