// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/parameq/utils"
)

// ToChannelMajor converts frames of interleaved host samples in src into
// the channel-major fixed-point layout used by filter engines: dst holds all
// of channel 0, then all of channel 1, and so on. Saturated samples are
// added to clips.
func ToChannelMajor(dst []int32, src []float32, frames, channels int, clips *uint64) error {
	if err := checkBlock(len(dst), len(src), frames, channels); err != nil {
		return err
	}

	for c := range channels {
		ch := dst[c*frames : (c+1)*frames]
		for f := range ch {
			ch[f] = utils.Float32ToSample(src[f*channels+c], clips)
		}
	}

	return nil
}

// FromChannelMajor is the inverse of ToChannelMajor. It writes interleaved
// host samples into dst.
func FromChannelMajor(dst []float32, src []int32, frames, channels int, clips *uint64) error {
	if err := checkBlock(len(src), len(dst), frames, channels); err != nil {
		return err
	}

	for c := range channels {
		ch := src[c*frames : (c+1)*frames]
		for f, s := range ch {
			dst[f*channels+c] = utils.SampleToFloat32(s, clips)
		}
	}

	return nil
}

func checkBlock(major, interleaved, frames, channels int) error {
	if channels <= 0 || frames < 0 {
		return fmt.Errorf("%w: %d frames of %d channels", ErrInvalidDstSize, frames, channels)
	}

	need := frames * channels
	if major < need || interleaved < need {
		return fmt.Errorf("%w: need %d samples, have %d and %d", ErrShortBlock, need, major, interleaved)
	}

	return nil
}
