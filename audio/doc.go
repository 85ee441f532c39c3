// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream plumbing shared by decoders and the
// equalizer.
//
// It contains:
//   - Source interface for audio input
//   - Decoder registry keyed by file extension
//   - Block transcoding between interleaved float and channel-major
//     fixed-point layouts
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders implement this interface, and eq.NewSource wraps one so a
// decoded stream is equalized as it is read.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("song.WAV")
//
// # Transcoding
//
// Hosts hand over interleaved float32 frames (L R L R ...). Filter engines
// want each channel contiguous and in the 32-bit fixed-point domain:
//
//	ibuf := make([]int32, frames*channels)
//	var clips uint64
//	err := audio.ToChannelMajor(ibuf, block, frames, channels, &clips)
//	// ... filter each channel's slice ibuf[c*frames:(c+1)*frames] ...
//	err = audio.FromChannelMajor(block, ibuf, frames, channels, &clips)
//
// Samples outside [-1, 1] saturate and are counted in clips; the same
// counter is meant to be shared by both directions of one block.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Multi-channel audio is interleaved: [L, R, L, R, ...] for stereo.
package audio
