// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/parameq/audio"
	"github.com/ik5/parameq/utils"
)

// maxEmptyReads bounds consecutive (0, nil) reads in WriteSource.
const maxEmptyReads = 100

// Writer encodes interleaved float32 samples as integer PCM WAV.
type Writer struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	bitDepth int
	frames   int
}

// NewWriter starts a WAV on w. w must be seekable so Close can patch the
// header sizes.
func NewWriter(w io.WriteSeeker, sampleRate, bitDepth, channels int) (*Writer, error) {
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		buf:      &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth},
		channels: channels,
		bitDepth: bitDepth,
	}, nil
}

// WriteSamples appends whole frames of interleaved samples.
func (w *Writer) WriteSamples(samples []float32) error {
	if len(samples)%w.channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidDstSize, len(samples), w.channels)
	}
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, s := range samples {
		w.buf.Data[i] = utils.Float32ToPCM(s, w.bitDepth)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}
	w.frames += len(samples) / w.channels

	return nil
}

// WriteSource copies src to w in reads of blockFrames frames until src is
// exhausted and returns the number of frames written. A blockFrames of 0
// uses the source's BufSize. It does not close src.
func (w *Writer) WriteSource(src audio.Source, blockFrames int) (int, error) {
	if src.Channels() != w.channels {
		return 0, fmt.Errorf("%w: source has %d channels, writer %d", ErrInvalidChannels, src.Channels(), w.channels)
	}

	size := blockFrames * w.channels
	if blockFrames <= 0 {
		size = max(src.BufSize(), w.channels)
	}
	buf := make([]float32, size-size%w.channels)
	start := w.frames
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.WriteSamples(buf[:n-n%w.channels]); werr != nil {
				return w.frames - start, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return w.frames - start, nil
		}
		if err != nil {
			return w.frames - start, err
		}
		if n > 0 {
			empty = 0
		} else if empty++; empty > maxEmptyReads {
			return w.frames - start, io.ErrNoProgress
		}
	}
}

// Frames returns how many frames were written.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the WAV header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}
	return nil
}
