// SPDX-License-Identifier: EPL-2.0

package parameq

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/parameq/audio"
	"github.com/ik5/parameq/eq"
	"github.com/ik5/parameq/filter"
	"github.com/ik5/parameq/preset"
)

// Equalize reads src to the end through the preset at presetPath and
// returns the interleaved result.
//
// Unlike a bare eq.Processor, which passes audio through when its preset is
// broken, Equalize parses the preset first and returns the parse error.
// bufferSize is the read size in samples and is rounded down to whole frames.
func Equalize(src audio.Source, presetPath string, bufferSize int) ([]float32, error) {
	channels := src.Channels()
	frames := bufferSize / max(channels, 1)
	if channels < 1 || frames < 1 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidBufferSize, bufferSize, channels)
	}

	if _, err := preset.Parse(presetPath); err != nil {
		return nil, err
	}

	rt := filter.NewRuntime()
	p, err := eq.Open(rt, eq.WithConfigPath(presetPath))
	if err != nil {
		return nil, err
	}
	defer p.Close()

	eqs := eq.NewSource(src, p)
	out := make([]float32, 0, src.SampleRate()*channels*2) // ~2 seconds
	buf := make([]float32, frames*channels)

	for {
		n, err := eqs.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("read: %w", err)
		}
	}

	return out, nil
}
