// SPDX-License-Identifier: EPL-2.0

package eq

import "errors"

var (
	// ErrClosed indicates use of a Processor after Close.
	ErrClosed = errors.New("equalizer closed")

	// ErrInvalidParam indicates a host parameter index out of range.
	ErrInvalidParam = errors.New("invalid parameter index")

	// ErrNilRuntime indicates Open was given no filter runtime.
	ErrNilRuntime = errors.New("nil filter runtime")
)
