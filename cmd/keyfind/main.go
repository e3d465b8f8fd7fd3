// SPDX-License-Identifier: EPL-2.0

// Command keyfind reports the musical key of audio files.
//
// Usage:
//
//	keyfind [-notation standard|camelot|openkey] [-dump out.wav] file...
//
// Each file is decoded by extension (wav, mp3, ogg, aiff, aif), folded to
// mono, decimated to at most 22050 Hz and classified. One line per file is
// printed to stdout. With -dump, the preprocessed mono signal of the last
// file is written as a 16-bit WAV, which helps when a classification looks
// wrong.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/keyfind"
	"github.com/ik5/keyfind/audio"
	"github.com/ik5/keyfind/formats/aiff"
	"github.com/ik5/keyfind/formats/mp3"
	"github.com/ik5/keyfind/formats/vorbis"
	"github.com/ik5/keyfind/formats/wav"
	"github.com/ik5/keyfind/utils"
)

// analysisRate matches the frame rate the classifier defaults are tuned for.
const analysisRate = 22050

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// analyzeFile decodes path and returns its key along with the preprocessed
// mono buffer that was classified.
func analyzeFile(reg *audio.Registry, path string) (keyfind.Key, *audio.Buffer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := reg.Get(ext)
	if !ok {
		return keyfind.KeySilence, nil, fmt.Errorf("unsupported format: %q", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return keyfind.KeySilence, nil, err
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return keyfind.KeySilence, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf := audio.NewBuffer()
	if err := buf.ReadAll(src); err != nil {
		return keyfind.KeySilence, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	buf.ReduceToMono()
	if factor := buf.FrameRate() / analysisRate; factor > 1 {
		buf.Downsample(factor)
	}

	return keyfind.New().KeyOfAudio(buf), buf, nil
}

func dumpWAV(path string, buf *audio.Buffer) error {
	samples := buf.Samples()
	pcm16 := make([]int16, len(samples))
	for i, s := range samples {
		pcm16[i] = utils.Float32ToInt16(s)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return wav.WriteWAV16(out, int(buf.FrameRate()), pcm16)
}

func formatKey(k keyfind.Key, notation string) string {
	switch notation {
	case "camelot":
		return k.Camelot()
	case "openkey":
		return k.OpenKey()
	default:
		return k.String()
	}
}

func main() {
	notation := flag.String("notation", "standard", "key notation: standard, camelot or openkey")
	dump := flag.String("dump", "", "write the preprocessed mono signal as a 16-bit WAV")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: keyfind [-notation standard|camelot|openkey] [-dump out.wav] file...")
		os.Exit(2)
	}

	switch *notation {
	case "standard", "camelot", "openkey":
	default:
		fmt.Fprintf(os.Stderr, "keyfind: unknown notation %q\n", *notation)
		os.Exit(2)
	}

	reg := newRegistry()

	exitCode := 0
	for _, path := range flag.Args() {
		key, buf, err := analyzeFile(reg, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keyfind: %v\n", err)
			exitCode = 1

			continue
		}

		fmt.Printf("%s: %s\n", path, formatKey(key, *notation))

		if *dump != "" {
			if err := dumpWAV(*dump, buf); err != nil {
				fmt.Fprintf(os.Stderr, "keyfind: dumping %s: %v\n", *dump, err)
				exitCode = 1
			}
		}
	}

	os.Exit(exitCode)
}
