// SPDX-License-Identifier: EPL-2.0

package filter

import "errors"

var (
	// ErrUnknownKind indicates a kind no engine implements.
	ErrUnknownKind = errors.New("no engine for filter kind")

	// ErrArgCount indicates the wrong number of arguments for a kind.
	ErrArgCount = errors.New("wrong number of filter arguments")

	// ErrInvalidOption indicates an argument that is not a usable number.
	ErrInvalidOption = errors.New("invalid filter option")

	// ErrNyquist indicates a frequency at or above half the sample rate.
	ErrNyquist = errors.New("frequency must be below the Nyquist rate")

	// ErrNotConfigured indicates Start was called before Configure.
	ErrNotConfigured = errors.New("engine not configured")

	// ErrRuntimeClosed indicates the runtime has no holders.
	ErrRuntimeClosed = errors.New("filter runtime is not acquired")
)
