// SPDX-License-Identifier: EPL-2.0

// Package keyfind detects the musical key of PCM audio.
//
// The package classifies decoded audio into one of the 24 major/minor keys,
// or reports silence when the signal carries no detectable tonal energy.
//
// # Quick Start
//
// The simplest way to detect a key is DetectFromSource, which drains any
// audio.Source (for example a decoder from the formats subpackages) and
// classifies it:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("track.wav")
//	src, _ := decoder.Decode(file)
//
//	key, err := keyfind.DetectFromSource(src)
//	fmt.Println(key) // e.g. "D minor"
//
// # Working with Buffers Directly
//
// Callers that already hold decoded samples fill an audio.Buffer themselves:
//
//	buf := audio.NewBuffer()
//	buf.SetFrameRate(44100)
//	buf.SetChannels(2)
//	buf.Append(samples) // interleaved float32 in [-1.0, 1.0]
//
//	buf.ReduceToMono() // optional, cuts analysis work
//	buf.Downsample(2)  // optional, decimates to 22050 Hz
//
//	key := keyfind.New().KeyOfAudio(buf)
//
// Reducing to mono and decimating before classification is not required, but
// shrinks the engine workload considerably for high-rate multichannel input.
//
// # Results
//
// Classification yields a Key value: one of 24 keys (KeyAMajor through
// KeyAFlatMinor) or KeySilence. Keys can be printed in standard musical
// notation (String), Camelot wheel notation (Camelot), or Open Key notation
// (OpenKey).
//
// # Contract
//
// The buffer handed to KeyOfAudio must carry a positive frame rate, a positive
// channel count, and a sample count aligned to the channel count. Malformed
// metadata never panics: classification degrades to KeySilence instead of
// calling the analysis engine with garbage.
//
// # Supported Formats
//
// The formats subpackages decode common audio files into audio.Source values:
//   - WAV (PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// The key detection core itself never decodes files; it only consumes
// normalized PCM samples.
package keyfind
