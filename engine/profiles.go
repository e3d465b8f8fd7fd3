// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

// Profile selects the tone-profile pair used for key matching.
type Profile int

const (
	// ProfileShaath is Ibrahim Sha'ath's profile set, derived for key
	// detection in recorded popular and electronic music.
	ProfileShaath Profile = iota
	// ProfileKrumhansl is the Krumhansl-Schmuckler profile set from
	// probe-tone listener experiments.
	ProfileKrumhansl
)

// Profile weights are indexed in semitones above the tonic.
var (
	shaathMajor = [12]float64{6.6, 2.0, 3.5, 2.3, 4.6, 4.0, 2.5, 5.2, 2.4, 3.7, 2.3, 3.4}
	shaathMinor = [12]float64{6.5, 2.7, 3.5, 5.4, 2.6, 3.5, 2.5, 4.7, 4.0, 2.7, 3.4, 3.2}

	krumhanslMajor = [12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	krumhanslMinor = [12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// templates returns the major and minor profile for p. Unknown values fall
// back to the Shaath set.
func (p Profile) templates() (major, minor [12]float64) {
	switch p {
	case ProfileKrumhansl:
		return krumhanslMajor, krumhanslMinor
	default:
		return shaathMajor, shaathMinor
	}
}

// correlate computes the Pearson correlation between a chromagram and the
// profile rotated so that the tonic sits at chroma index tonic. Zero-variance
// input correlates as 0 rather than NaN.
func correlate(chroma [12]float64, profile [12]float64, tonic int) float64 {
	var rotated [12]float64
	for i := range profile {
		rotated[(tonic+i)%12] = profile[i]
	}

	var meanX, meanY float64
	for i := range chroma {
		meanX += chroma[i]
		meanY += rotated[i]
	}
	meanX /= 12
	meanY /= 12

	var num, denX, denY float64
	for i := range chroma {
		dx := chroma[i] - meanX
		dy := rotated[i] - meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}

	if denX == 0 || denY == 0 {
		return 0
	}

	return num / (math.Sqrt(denX) * math.Sqrt(denY))
}

// bestKeyCode scores the chromagram against all 24 rotations of the profile
// pair and returns the engine code of the best match. Major and minor codes
// interleave: tonic t scores codes 2*t (major) and 2*t+1 (minor), with
// t counted in semitones above A.
func bestKeyCode(chroma [12]float64, p Profile) int {
	major, minor := p.templates()

	best := CodeSilence
	bestScore := 0.0

	for tonic := 0; tonic < 12; tonic++ {
		if score := correlate(chroma, major, tonic); score > bestScore {
			bestScore = score
			best = 2 * tonic
		}
		if score := correlate(chroma, minor, tonic); score > bestScore {
			bestScore = score
			best = 2*tonic + 1
		}
	}

	return best
}
