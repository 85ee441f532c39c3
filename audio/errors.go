// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupportedFormat indicates no decoder is registered for a file.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrShortBlock indicates a buffer smaller than frames*channels.
	ErrShortBlock = errors.New("buffer shorter than block")
)
