// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM 16-bit (most common)
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
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
// values normalized to the range [-1.0, 1.0].
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is currently supported
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - Only 16-bit PCM is supported (no 8-bit, 24-bit, or compressed formats)
//   - AIFF-C (.aifc) compressed variants are rejected
package aiff
