// SPDX-License-Identifier: EPL-2.0

// Package parameq applies Equalizer APO parametric equalizer presets to
// decoded audio.
//
// A preset is a text file of "Preamp:" and "Filter:" lines. Each filter
// becomes one biquad or gain stage per channel, run in file order on the
// 32-bit fixed-point rendition of every block.
//
// # Supported Formats
//
// Input is decoded by the formats subpackages:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is written as integer PCM WAV with wav.Writer.
//
// # Quick Start
//
// The simplest way to equalize a stream is Equalize:
//
//	file, _ := os.Open("song.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	samples, err := parameq.Equalize(src, "preset.txt", 4096)
//
// # Processing Pipeline
//
// For streaming, wrap a source with an eq.Processor:
//
//	rt := filter.NewRuntime()
//	p, _ := eq.Open(rt, eq.WithConfigPath("preset.txt"))
//	defer p.Close()
//
//	src := eq.NewSource(decoded, p)
//	n, err := src.ReadSamples(buf)
//
// A processor that cannot load its preset passes audio through unchanged
// and retries on the next block.
//
// See the individual subpackages for more detailed documentation.
package parameq
