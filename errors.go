// SPDX-License-Identifier: EPL-2.0

package parameq

import "errors"

// ErrInvalidBufferSize indicates a buffer too small to hold one frame.
var ErrInvalidBufferSize = errors.New("buffer size smaller than one frame")
