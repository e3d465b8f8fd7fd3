// SPDX-License-Identifier: EPL-2.0

package keyfind

import (
	"fmt"

	"github.com/ik5/keyfind/audio"
)

// analysisRate is the frame rate the engine defaults are tuned for. Input at
// a higher rate is decimated down to at most this before classification.
const analysisRate = 22050

// DetectFromSource is a high-level convenience function that drains an audio
// source and classifies its musical key.
//
// The function builds the standard preprocessing pipeline:
//  1. Reads all samples from src into an audio.Buffer, adopting the source's
//     frame rate and channel count
//  2. Reduces the buffer to mono
//  3. Decimates the buffer so its frame rate does not exceed 22050 Hz
//  4. Classifies the buffer with a KeyFinder
//
// Steps 2 and 3 only shrink the engine workload; callers wanting full control
// over preprocessing should fill a Buffer themselves and use KeyFinder
// directly.
//
// The source is drained, not closed; closing remains the caller's job.
func DetectFromSource(src audio.Source) (Key, error) {
	buf := audio.NewBuffer()
	if err := buf.ReadAll(src); err != nil {
		return KeySilence, fmt.Errorf("%w", err)
	}

	buf.ReduceToMono()

	if factor := buf.FrameRate() / analysisRate; factor > 1 {
		buf.Downsample(factor)
	}

	return New().KeyOfAudio(buf), nil
}
