// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/parameq/preset"
)

// Runtime is the process-wide engine context. It is initialized by the
// first Acquire and torn down by the matching last Release.
type Runtime struct {
	mtx    *sync.Mutex
	refs   int
	live   int
	cycles int
	log    *slog.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) RuntimeOption {
	return func(r *Runtime) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		mtx: &sync.Mutex{},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Acquire registers a holder, initializing the runtime on the first one.
func (r *Runtime) Acquire() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.refs == 0 {
		r.cycles++
		r.log.Debug("filter runtime initialized", "cycle", r.cycles)
	}
	r.refs++
}

// Release drops a holder. The last Release tears the runtime down and
// reports engines that were never closed.
func (r *Runtime) Release() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.refs == 0 {
		return ErrRuntimeClosed
	}
	r.refs--
	if r.refs == 0 {
		if r.live > 0 {
			r.log.Warn("filter runtime torn down with live engines", "engines", r.live)
		}
		r.log.Debug("filter runtime torn down", "cycle", r.cycles)
	}

	return nil
}

// Active reports whether the runtime has at least one holder.
func (r *Runtime) Active() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.refs > 0
}

// Refs returns the number of current holders.
func (r *Runtime) Refs() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.refs
}

// LiveEngines returns how many engines were created and not yet closed.
func (r *Runtime) LiveEngines() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.live
}

// NewEngine creates an unconfigured engine for kind.
func (r *Runtime) NewEngine(kind preset.Kind) (Engine, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.refs == 0 {
		return nil, ErrRuntimeClosed
	}

	var eng Engine
	switch kind {
	case preset.Gain:
		eng = newGain(r.engineClosed)
	case preset.Peak, preset.LowPass, preset.LowPassQ, preset.HighPass, preset.HighPassQ,
		preset.BandPass, preset.BandReject, preset.AllPass,
		preset.LowShelf, preset.LowShelfSlope, preset.HighShelf, preset.HighShelfSlope,
		preset.RawBiquad:
		eng = newBiquad(kind, r.engineClosed)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	r.live++

	return eng, nil
}

func (r *Runtime) engineClosed() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.live--
}
