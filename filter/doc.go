// SPDX-License-Identifier: EPL-2.0

// Package filter provides the single-channel filter engines that a
// parametric equalizer chain is built from.
//
// An Engine is created for one preset.Kind, configured with the textual
// arguments of a preset.FilterSpec, started for a signal, and then fed
// blocks of 32-bit fixed-point samples through Flow. Each engine keeps its
// own history between calls and processes exactly one channel.
//
//	eng, err := rt.NewEngine(preset.Peak)
//	err = eng.Configure([]string{"1000", "1.41q", "-3"})
//	err = eng.Start(filter.SignalInfo{Rate: 48000, Channels: 1, Precision: 16, Length: filter.UnknownLength})
//	eng.Flow(in, out)
//	eng.Close()
//
// # Width tokens
//
// Width arguments carry a unit suffix:
//   - q: quality factor
//   - o: bandwidth in octaves
//   - s: shelf slope (shelving kinds only)
//   - h: bandwidth in Hz
//   - k: bandwidth in kHz
//
// A bare number is a quality factor, or a slope for shelving kinds.
//
// # Runtime
//
// Engines are created through a Runtime, a reference-counted context
// shared by every equalizer instance of a process. The first Acquire
// initializes it and the last Release tears it down; no engine can be
// created while it is released.
//
// Coefficients follow Robert Bristow-Johnson's audio EQ cookbook.
package filter
