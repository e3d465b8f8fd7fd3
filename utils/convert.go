// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32
// in [-1.0, 1.0).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 converts a normalized float32 sample to 16-bit PCM,
// clamping input outside [-1.0, 1.0].
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow.
	return int16(x * 32767.0)
}
