// SPDX-License-Identifier: EPL-2.0

package chain

import (
	"errors"
	"fmt"

	"github.com/ik5/parameq/filter"
	"github.com/ik5/parameq/preset"
)

// Chain is a built filter table. Engines are stored channel-major:
// engines[c*len(specs)+s] is slot s of channel c.
type Chain struct {
	specs    []preset.FilterSpec
	channels int
	rate     float64
	engines  []filter.Engine
	scratch  []int32
}

// Build creates, configures and starts one engine for every channel and
// slot. Each engine sees a single channel of an unbounded stream. On any
// failure the engines created so far are closed and a *BuildError is
// returned.
func Build(f filter.Factory, specs []preset.FilterSpec, channels int, rate float64, precision int) (*Chain, error) {
	if channels <= 0 || rate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %g Hz", ErrInvalidFormat, channels, rate)
	}

	c := &Chain{
		specs:    specs,
		channels: channels,
		rate:     rate,
		engines:  make([]filter.Engine, 0, channels*len(specs)),
	}
	info := filter.SignalInfo{
		Rate:      rate,
		Channels:  1,
		Precision: precision,
		Length:    filter.UnknownLength,
	}

	for ch := range channels {
		for slot, spec := range specs {
			eng, err := f.NewEngine(spec.Kind)
			if err != nil {
				return nil, c.abort(slot, ch, spec, ErrEngineConstruction, err)
			}
			c.engines = append(c.engines, eng)

			if err := eng.Configure(spec.Args); err != nil {
				return nil, c.abort(slot, ch, spec, ErrOptionValidation, err)
			}
			if err := eng.Start(info); err != nil {
				return nil, c.abort(slot, ch, spec, ErrOptionValidation, err)
			}
		}
	}

	return c, nil
}

func (c *Chain) abort(slot, ch int, spec preset.FilterSpec, kind, err error) error {
	_ = c.Close()

	return &BuildError{
		Slot:    slot,
		Channel: ch,
		Spec:    spec.String(),
		Kind:    kind,
		Err:     err,
	}
}

// Run filters a channel-major block of frames samples per channel in
// place. Slots run in order; each slot's output is copied back into the
// channel's run before the next slot reads it.
func (c *Chain) Run(buf []int32, frames int) error {
	if frames < 0 || len(buf) < frames*c.channels {
		return fmt.Errorf("%w: need %d samples, have %d", ErrShortBuffer, frames*c.channels, len(buf))
	}
	if len(c.engines) == 0 || frames == 0 {
		return nil
	}

	if cap(c.scratch) < frames {
		c.scratch = make([]int32, frames)
	}
	out := c.scratch[:frames]

	slots := len(c.specs)
	for ch := range c.channels {
		run := buf[ch*frames : (ch+1)*frames]
		for _, eng := range c.engines[ch*slots : (ch+1)*slots] {
			_, produced := eng.Flow(run, out)
			copy(run, out[:produced])
		}
	}

	return nil
}

// Engine returns the engine of slot on channel.
func (c *Chain) Engine(channel, slot int) filter.Engine {
	return c.engines[channel*len(c.specs)+slot]
}

// Len returns the number of engines, channels*slots for a built chain.
func (c *Chain) Len() int { return len(c.engines) }

func (c *Chain) Channels() int { return c.channels }

func (c *Chain) Slots() int { return len(c.specs) }

func (c *Chain) Rate() float64 { return c.rate }

func (c *Chain) Specs() []preset.FilterSpec { return c.specs }

// Clips sums the saturated samples of every engine.
func (c *Chain) Clips() uint64 {
	var n uint64
	for _, eng := range c.engines {
		n += eng.Clips()
	}
	return n
}

// Close releases every engine. It is safe to call more than once.
func (c *Chain) Close() error {
	var errs []error
	for _, eng := range c.engines {
		if err := eng.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.engines = c.engines[:0]
	c.specs = nil
	c.channels = 0

	return errors.Join(errs...)
}
