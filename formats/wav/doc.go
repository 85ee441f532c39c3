// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use github.com/go-audio/wav and handle integer PCM of
// 16, 24 or 32 bits with any number of channels, so 5.1 and 7.1 files
// round-trip as well as mono and stereo.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// in [-1, 1], interleaved by channel.
//
// # Encoding WAV Files
//
// Writer needs an io.WriteSeeker because the header sizes are patched when
// it is closed:
//
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//
//	w, err := wav.NewWriter(out, 48000, 24, 2)
//	if err != nil {
//	    // Handle error
//	}
//	frames, err := w.WriteSource(source, 1024)
//	err = w.Close()
//
// Samples outside [-1, 1] are clamped to the range of the bit depth.
package wav
