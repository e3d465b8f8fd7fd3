// SPDX-License-Identifier: EPL-2.0

// Package engine performs the spectral analysis behind key classification.
//
// The engine consumes a raw PCM triple (interleaved float32 samples, frame
// rate, channel count) and returns a small integer result code: 0 through 23
// identify the 24 major/minor keys, 24 means silence. Callers normally do not
// use this package directly; the keyfind root package wraps it behind a
// typed façade and guards the metadata contract.
//
// # Analysis
//
// Classification runs in three stages:
//
//  1. The input is mixed down to a mono float64 signal. Input whose RMS falls
//     below the silence floor short-circuits to the silence code.
//  2. A Hann-windowed short-time Fourier transform folds bin magnitudes into
//     a 12-bin chromagram covering the configured frequency range.
//  3. The chromagram is correlated against all 24 rotations of a major and a
//     minor tone profile; the best-scoring rotation wins.
//
// All stages are deterministic: frames are processed in order with a fixed
// window and hop, so repeated analysis of the same input yields the same code.
//
// # Tone Profiles
//
// Two profile sets are available: ProfileShaath (the default, tuned for
// recorded popular music) and ProfileKrumhansl (the classic probe-tone
// ratings). See Params to select one.
package engine
