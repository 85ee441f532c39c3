// SPDX-License-Identifier: EPL-2.0

package eq

import (
	"errors"
	"log/slog"

	"github.com/ik5/parameq/audio"
	"github.com/ik5/parameq/chain"
	"github.com/ik5/parameq/filter"
	"github.com/ik5/parameq/preset"
)

// Format is the stream format a host reports with every block.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithConfigPath sets the initial preset path.
func WithConfigPath(path string) Option {
	return func(p *Processor) {
		p.path = path
	}
}

// WithFactory replaces the runtime as the source of filter engines.
func WithFactory(f filter.Factory) Option {
	return func(p *Processor) {
		if f != nil {
			p.factory = f
		}
	}
}

// Processor equalizes interleaved float blocks with the chain described by
// a preset file. It is driven by a single caller; nothing in it is
// synchronized.
//
// The chain is built lazily on the first Process call and dropped by Reset
// or when the stream format changes. While no chain can be built the
// processor passes audio through untouched.
type Processor struct {
	rt      *filter.Runtime
	factory filter.Factory
	log     *slog.Logger
	path    string

	chain  *chain.Chain
	format Format
	ibuf   []int32

	clips    uint64
	lastErr  string
	blockErr string
	closed   bool
}

// Open creates a processor holding a reference on rt until Close.
func Open(rt *filter.Runtime, opts ...Option) (*Processor, error) {
	if rt == nil {
		return nil, ErrNilRuntime
	}

	p := &Processor{
		rt:      rt,
		factory: rt,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	rt.Acquire()

	return p, nil
}

// Close drops the chain and releases the runtime reference.
func (p *Processor) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.Reset()
	p.closed = true

	return p.rt.Release()
}

// Reset releases every filter engine and returns to the unbuilt state.
// The next Process call rebuilds from the current config path.
func (p *Processor) Reset() {
	p.lastErr = ""
	p.blockErr = ""
	if p.chain == nil {
		return
	}
	if err := p.chain.Close(); err != nil {
		p.log.Warn("closing equalizer chain", "error", err)
	}
	p.chain = nil
	p.format = Format{}
}

// SetConfigPath stores path. It takes effect on the next build, after a
// Reset or a format change.
func (p *Processor) SetConfigPath(path string) {
	p.path = path
}

func (p *Processor) ConfigPath() string {
	return p.path
}

// Built reports whether a chain is live.
func (p *Processor) Built() bool {
	return p.chain != nil
}

// EngineCount returns channels*filters of the live chain, or 0.
func (p *Processor) EngineCount() int {
	if p.chain == nil {
		return 0
	}
	return p.chain.Len()
}

// Filters returns the stages of the live chain.
func (p *Processor) Filters() []preset.FilterSpec {
	if p.chain == nil {
		return nil
	}
	return p.chain.Specs()
}

// Clips returns the number of saturated samples seen since Open, counting
// conversions in both directions and every filter stage.
func (p *Processor) Clips() uint64 {
	return p.clips
}

// Process equalizes frames frames of interleaved samples in block, in
// place, and always returns frames. Configuration problems never surface
// here: the block is left untouched instead.
func (p *Processor) Process(block []float32, frames int, format Format) int {
	if p.closed || frames <= 0 {
		return frames
	}

	if p.chain != nil && !p.sameFormat(format) {
		p.log.Debug("stream format changed",
			"old_rate", p.format.SampleRate, "old_channels", p.format.Channels,
			"rate", format.SampleRate, "channels", format.Channels)
		p.Reset()
	}
	if p.chain == nil && !p.build(format) {
		return frames
	}
	if p.chain.Len() == 0 {
		return frames
	}

	n := frames * format.Channels
	if cap(p.ibuf) < n {
		p.ibuf = make([]int32, n)
	}
	ibuf := p.ibuf[:n]

	var clips uint64
	if err := audio.ToChannelMajor(ibuf, block, frames, format.Channels, &clips); err != nil {
		p.skipBlock(err)
		return frames
	}

	before := p.chain.Clips()
	if err := p.chain.Run(ibuf, frames); err != nil {
		p.skipBlock(err)
		return frames
	}
	clips += p.chain.Clips() - before

	if err := audio.FromChannelMajor(block, ibuf, frames, format.Channels, &clips); err != nil {
		p.skipBlock(err)
		return frames
	}

	p.blockErr = ""
	if clips > 0 {
		p.clips += clips
		p.log.Debug("clipping", "clips", clips, "total", p.clips)
	}

	return frames
}

// skipBlock logs a rejected block once per run of identical failures.
func (p *Processor) skipBlock(err error) {
	if msg := err.Error(); msg != p.blockErr {
		p.blockErr = msg
		p.log.Warn("block skipped", "error", err)
	}
}

func (p *Processor) sameFormat(f Format) bool {
	return f.SampleRate == p.format.SampleRate && f.Channels == p.format.Channels
}

// build parses the preset and instantiates a chain for format. It reports
// false, leaving the processor unbuilt, when either step fails.
func (p *Processor) build(format Format) bool {
	if p.path == "" {
		return false
	}

	specs, err := preset.Parse(p.path, preset.WithWarnings(func(w preset.Warning) {
		p.log.Warn("preset warning", "path", p.path, "line", w.Line, "message", w.Message)
	}))
	if err == nil {
		var c *chain.Chain
		c, err = chain.Build(p.factory, specs, format.Channels, float64(format.SampleRate), format.BitDepth)
		if err == nil {
			p.chain = c
			p.format = format
			p.lastErr = ""
			p.log.Debug("equalizer chain built",
				"path", p.path, "channels", format.Channels, "rate", format.SampleRate,
				"filters", len(specs), "engines", c.Len())
			return true
		}
	}

	// The preset is retried on every block; only report a new failure.
	if msg := err.Error(); msg != p.lastErr {
		p.lastErr = msg
		p.log.Warn("equalizer disabled, passing audio through",
			"path", p.path, "error", err, "build", isBuildError(err))
	}

	return false
}

func isBuildError(err error) bool {
	var be *chain.BuildError
	return errors.As(err, &be)
}
