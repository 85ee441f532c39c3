// SPDX-License-Identifier: EPL-2.0

// Package eq is the streaming surface of the equalizer: a Processor that a
// host feeds interleaved float blocks together with the current stream
// format.
//
// A Processor is either unbuilt or built. Process on an unbuilt processor
// parses the configured preset and builds a chain for the block's format;
// if either step fails the block passes through unchanged and the next
// block tries again. A built processor whose format no longer matches the
// block drops its chain and rebuilds within the same call, so no block is
// lost. Process always returns the frame count it was given.
//
//	rt := filter.NewRuntime()
//	p, err := eq.Open(rt, eq.WithConfigPath("preset.txt"))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	for block := range blocks {
//	    p.Process(block, len(block)/2, eq.Format{SampleRate: 48000, Channels: 2, BitDepth: 16})
//	}
//
// Changing the preset path is lazy: SetConfigPath only stores it, and it is
// read at the next build, after Reset or a format change.
//
// The single host parameter, index ParamConfigFile, mirrors the preset
// path through NumParams, ParamName, Param and SetParam.
package eq
