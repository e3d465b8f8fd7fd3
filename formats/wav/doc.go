// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package uses github.com/go-audio/wav for WAV parsing and supports PCM
// input at 8, 16, 24, and 32 bits per sample, mono or multichannel, at any
// sample rate.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], normalized by the source bit depth.
// Seekable input is decoded in place; non-seekable readers are buffered
// into memory first, since the underlying parser needs to seek.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create mono 16-bit PCM files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: The file holds non-PCM audio (e.g. float, ADPCM)
//   - ErrUnsupportedBitDepth: PCM at a bit depth outside 8/16/24/32
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
package wav
