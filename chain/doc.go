// SPDX-License-Identifier: EPL-2.0

// Package chain instantiates a parsed preset as a table of filter engines,
// one per (channel, slot) pair, and runs channel-major blocks through it.
//
// Every channel gets the same ordered list of stages. Within a channel the
// stages form a strict pipeline: slot i's output is slot i+1's input.
// Channels never see each other's samples.
//
//	c, err := chain.Build(rt, specs, 2, 48000, 16)
//	if err != nil {
//	    // no chain; pass audio through
//	}
//	defer c.Close()
//	err = c.Run(ibuf, frames) // ibuf is channel-major, filtered in place
//
// A failed Build releases every engine it created and returns a *BuildError
// naming the slot and channel that failed.
package chain
