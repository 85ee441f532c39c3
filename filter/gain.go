// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"

	"github.com/ik5/parameq/preset"
)

// gain is a flat, frequency-independent amplifier.
type gain struct {
	rel     func()
	db      float64
	factor  float64
	ready   bool
	started bool
	closed  bool
	clips   uint64
}

func newGain(release func()) *gain {
	return &gain{rel: release}
}

func (g *gain) Kind() preset.Kind { return preset.Gain }
func (g *gain) Clips() uint64     { return g.clips }

func (g *gain) Configure(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes one dB value, got %d", ErrArgCount, preset.Gain, len(args))
	}
	db, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	g.db = db
	g.factor = math.Pow(10, db/20)
	g.ready = true

	return nil
}

func (g *gain) Start(SignalInfo) error {
	if !g.ready {
		return ErrNotConfigured
	}
	g.started = true

	return nil
}

func (g *gain) Flow(in, out []int32) (int, int) {
	n := min(len(in), len(out))
	if !g.started || g.closed {
		copy(out[:n], in[:n])
		return n, n
	}

	for i := range n {
		out[i] = saturate(float64(in[i])*g.factor, &g.clips)
	}

	return n, n
}

func (g *gain) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if g.rel != nil {
		g.rel()
	}

	return nil
}
