// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/parameq/preset"
)

// UnknownLength marks a signal of unbounded, streaming length.
const UnknownLength = ^uint64(0)

// SignalInfo describes the input of an engine.
type SignalInfo struct {
	Rate      float64
	Channels  int
	Precision int
	Length    uint64
}

// Engine is a single-channel, single-stage, stateful stream filter.
type Engine interface {
	Kind() preset.Kind
	// Configure validates and stores the textual arguments of a stage.
	Configure(args []string) error
	// Start prepares the engine for a signal. It must succeed before Flow
	// filters anything.
	Start(info SignalInfo) error
	// Flow filters in into out and reports how many samples it consumed
	// and produced. History is kept between calls.
	Flow(in, out []int32) (consumed, produced int)
	// Clips returns how many output samples were saturated so far.
	Clips() uint64
	Close() error
}

// Factory creates engines. *Runtime is the production Factory.
type Factory interface {
	NewEngine(kind preset.Kind) (Engine, error)
}

// saturate rounds y to the nearest 32-bit sample, clamping and counting
// values outside the range.
func saturate(y float64, clips *uint64) int32 {
	switch {
	case y >= math.MaxInt32+0.5:
		*clips++
		return math.MaxInt32
	case y <= math.MinInt32-0.5:
		*clips++
		return math.MinInt32
	default:
		return int32(math.Round(y))
	}
}
