// SPDX-License-Identifier: EPL-2.0

package eq

import "github.com/ik5/parameq/audio"

// enginePrecision is the sample precision reported to engines for decoded
// streams, which reach the processor as float32.
const enginePrecision = 32

type source struct {
	audio.Source
	p *Processor
}

// NewSource returns a Source that equalizes src with p as it is read.
// Closing it closes src but not p, so one processor can serve several
// sources in turn.
func NewSource(src audio.Source, p *Processor) audio.Source {
	return &source{Source: src, p: p}
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	n, err := s.Source.ReadSamples(dst)

	channels := s.Channels()
	if n > 0 && channels > 0 {
		frames := n / channels
		s.p.Process(dst[:frames*channels], frames, Format{
			SampleRate: s.SampleRate(),
			Channels:   channels,
			BitDepth:   enginePrecision,
		})
	}

	return n, err
}
