// SPDX-License-Identifier: EPL-2.0

package keyfind

// Key identifies one of the 24 musical keys, or silence when no tonal
// content was detected. The numeric values follow the analysis engine's
// native code order: pitch classes ascend in semitones from A, with the
// major and minor mode of each pitch class interleaved.
type Key int

const (
	KeyAMajor Key = iota
	KeyAMinor
	KeyBFlatMajor
	KeyBFlatMinor
	KeyBMajor
	KeyBMinor
	KeyCMajor
	KeyCMinor
	KeyDFlatMajor
	KeyDFlatMinor
	KeyDMajor
	KeyDMinor
	KeyEFlatMajor
	KeyEFlatMinor
	KeyEMajor
	KeyEMinor
	KeyFMajor
	KeyFMinor
	KeyGFlatMajor
	KeyGFlatMinor
	KeyGMajor
	KeyGMinor
	KeyAFlatMajor
	KeyAFlatMinor
	KeySilence
)

// KeyFromCode maps an engine result code to a Key. Codes 0 through 23 map to
// their key by identity; 24, negative codes, and anything unrecognized map to
// KeySilence so an unexpected engine result degrades safely instead of
// producing an out-of-range Key.
func KeyFromCode(code int) Key {
	if code < 0 || code >= int(KeySilence) {
		return KeySilence
	}

	return Key(code)
}

var keyNames = [...]string{
	"A major", "A minor",
	"Bb major", "Bb minor",
	"B major", "B minor",
	"C major", "C minor",
	"Db major", "Db minor",
	"D major", "D minor",
	"Eb major", "Eb minor",
	"E major", "E minor",
	"F major", "F minor",
	"Gb major", "Gb minor",
	"G major", "G minor",
	"Ab major", "Ab minor",
	"silence",
}

// Camelot wheel positions, same order as the Key constants.
var camelotNames = [...]string{
	"11B", "8A",
	"6B", "3A",
	"1B", "10A",
	"8B", "5A",
	"3B", "12A",
	"10B", "7A",
	"5B", "2A",
	"12B", "9A",
	"7B", "4A",
	"2B", "11A",
	"9B", "6A",
	"4B", "1A",
	"",
}

// Open Key positions, same order as the Key constants.
var openKeyNames = [...]string{
	"4d", "1m",
	"11d", "8m",
	"6d", "3m",
	"1d", "10m",
	"8d", "5m",
	"3d", "12m",
	"10d", "7m",
	"5d", "2m",
	"12d", "9m",
	"7d", "4m",
	"2d", "11m",
	"9d", "6m",
	"",
}

// String returns the key in standard musical notation, e.g. "Eb minor",
// or "silence". Keys outside the enumeration print as "silence".
func (k Key) String() string {
	if k < 0 || k > KeySilence {
		return keyNames[KeySilence]
	}

	return keyNames[k]
}

// Camelot returns the key in Camelot wheel notation (e.g. "8B" for C major).
// Silence has no wheel position and returns the empty string.
func (k Key) Camelot() string {
	if k < 0 || k >= KeySilence {
		return ""
	}

	return camelotNames[k]
}

// OpenKey returns the key in Open Key notation (e.g. "1d" for C major).
// Silence has no position and returns the empty string.
func (k Key) OpenKey() string {
	if k < 0 || k >= KeySilence {
		return ""
	}

	return openKeyNames[k]
}

// IsMinor reports whether k is one of the twelve minor keys.
func (k Key) IsMinor() bool {
	return k >= 0 && k < KeySilence && k%2 == 1
}

// IsSilence reports whether k represents the absence of tonal content.
func (k Key) IsSilence() bool {
	return k < 0 || k >= KeySilence
}
