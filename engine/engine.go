// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// CodeSilence is the result code for input with no detectable tonal energy.
// Key codes occupy 0 through 23.
const CodeSilence = 24

// Params control the spectral analysis.
type Params struct {
	WindowSize int     // FFT window size in samples (power of 2)
	HopSize    int     // samples between successive analysis frames
	MinFreq    float64 // lowest analysed frequency in Hz
	MaxFreq    float64 // highest analysed frequency in Hz
	SilenceRMS float64 // RMS floor below which input counts as silence
	Profile    Profile // tone-profile pair for key matching
}

// DefaultParams returns the analysis parameters the engine is tuned for:
// an 8192-sample Hann window with 50% overlap, covering A1 (55 Hz) up to
// A7 (3520 Hz).
func DefaultParams() Params {
	return Params{
		WindowSize: 8192,
		HopSize:    4096,
		MinFreq:    55.0,
		MaxFreq:    3520.0,
		SilenceRMS: 1e-4,
		Profile:    ProfileShaath,
	}
}

// Engine classifies the musical key of a raw PCM triple. An Engine holds no
// state between calls; each KeyOfAudio call builds a fresh analysis context,
// so one Engine may be reused for independent inputs.
type Engine struct {
	params Params
}

// New returns an engine with DefaultParams.
func New() *Engine {
	return NewWithParams(DefaultParams())
}

// NewWithParams returns an engine using the given analysis parameters.
// Non-positive window, hop, or frequency bounds are replaced with defaults.
func NewWithParams(p Params) *Engine {
	def := DefaultParams()
	if p.WindowSize <= 0 {
		p.WindowSize = def.WindowSize
	}
	if p.HopSize <= 0 {
		p.HopSize = def.HopSize
	}
	if p.MinFreq <= 0 {
		p.MinFreq = def.MinFreq
	}
	if p.MaxFreq <= p.MinFreq {
		p.MaxFreq = def.MaxFreq
	}
	if p.SilenceRMS <= 0 {
		p.SilenceRMS = def.SilenceRMS
	}

	return &Engine{params: p}
}

// KeyOfAudio analyses interleaved float32 samples at the given frame rate and
// channel count, returning a key code in 0..23 or CodeSilence. The triple is
// expected to be well formed (positive rate and channels, aligned sample
// count); a malformed or empty triple yields CodeSilence rather than a fault.
func (e *Engine) KeyOfAudio(samples []float32, frameRate, channels uint) int {
	if frameRate == 0 || channels == 0 || len(samples) < int(channels) {
		return CodeSilence
	}

	mono := mixdown(samples, int(channels))
	if rms(mono) < e.params.SilenceRMS {
		return CodeSilence
	}

	chroma, ok := e.chromagram(mono, frameRate)
	if !ok {
		return CodeSilence
	}

	return bestKeyCode(chroma, e.params.Profile)
}

// mixdown averages each frame's channels into a mono float64 signal,
// dropping any trailing partial frame.
func mixdown(samples []float32, channels int) []float64 {
	frames := len(samples) / channels
	mono := make([]float64, frames)

	if channels == 1 {
		for i := range mono {
			mono[i] = float64(samples[i])
		}
		return mono
	}

	inv := 1.0 / float64(channels)
	for f := 0; f < frames; f++ {
		base := f * channels
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(samples[base+c])
		}
		mono[f] = sum * inv
	}

	return mono
}

func rms(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range signal {
		sum += s * s
	}

	return math.Sqrt(sum / float64(len(signal)))
}

// chromagram folds STFT bin magnitudes into 12 pitch classes, index 0 = A.
// Reports ok=false when no analysable energy lands in the frequency range.
func (e *Engine) chromagram(mono []float64, frameRate uint) ([12]float64, bool) {
	var chroma [12]float64

	windowSize := e.params.WindowSize
	plan, err := algofft.NewPlanReal64(windowSize)
	if err != nil {
		return chroma, false
	}

	hann := make([]float64, windowSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(windowSize-1))
	}

	binHz := float64(frameRate) / float64(windowSize)
	nBins := windowSize/2 + 1

	loBin := int(math.Ceil(e.params.MinFreq / binHz))
	if loBin < 1 {
		loBin = 1
	}
	hiBin := int(math.Floor(e.params.MaxFreq / binHz))
	if hiBin > nBins-1 {
		hiBin = nBins - 1
	}
	if loBin > hiBin {
		return chroma, false
	}

	// Precompute the pitch class of each analysed bin: semitones above
	// A440, folded into an octave.
	pitchClass := make([]int, hiBin+1)
	for k := loBin; k <= hiBin; k++ {
		semis := int(math.Round(12 * math.Log2(float64(k)*binHz/440.0)))
		pitchClass[k] = ((semis % 12) + 12) % 12
	}

	spec := make([]complex128, nBins)
	buf := make([]float64, windowSize)

	// Frames run in input order with a fixed hop; the final short frame is
	// zero padded so inputs shorter than one window still get analysed.
	for pos := 0; pos == 0 || pos < len(mono); pos += e.params.HopSize {
		n := copy(buf, mono[pos:])
		for i := 0; i < n; i++ {
			buf[i] *= hann[i]
		}
		for i := n; i < windowSize; i++ {
			buf[i] = 0
		}

		plan.Forward(spec, buf)

		for k := loBin; k <= hiBin; k++ {
			chroma[pitchClass[k]] += cmplx.Abs(spec[k])
		}
	}

	total := 0.0
	for _, c := range chroma {
		total += c
	}

	return chroma, total > 0
}
