// SPDX-License-Identifier: EPL-2.0

// Package preset parses parametric equalizer presets written in the
// Equalizer APO configuration dialect.
//
// Only two directives are understood:
//
//	Preamp: -6.5 dB
//	Filter 1: ON PK Fc 1000 Hz Gain 4.0 dB Q 1.41
//
// Every recognized line becomes one FilterSpec. The arguments of a
// FilterSpec are kept as text, in the order the filter engines of package
// filter expect them for the FilterSpec's Kind:
//
//	Peak                          freq, width, gain
//	LowPass, HighPass, BandPass,
//	BandReject, AllPass           freq, width
//	LowShelf, HighShelf           gain, freq [, width]
//	RawBiquad                     b0, b1, b2, a0, a1, a2
//	Gain                          dB
//
// The width token carries its unit as a suffix: "1.41q" is a quality
// factor, "2o" a bandwidth in octaves.
//
// # Strictness
//
// Parsing is strict. A line that is neither a Filter nor a Preamp
// directive, an unknown filter code, a missing marker or an unsupported IIR
// order fails the whole preset. A partially applied chain is never
// returned. Blank lines and lines starting with '#' are skipped.
//
// # Q and bandwidth
//
// When a line carries both "Q" and "BW Oct", the bandwidth wins and a
// Warning is reported through WithWarnings.
//
// # Example
//
//	specs, err := preset.Parse("headphones.txt")
//	if errors.Is(err, preset.ErrUnknownFilterKind) {
//	    // ...
//	}
package preset
