// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required marker or value is absent from a line.
	ErrMissingField = errors.New("missing field")

	// ErrUnknownFilterKind indicates a filter code outside the code table.
	ErrUnknownFilterKind = errors.New("unknown filter kind")

	// ErrUnsupportedOrder indicates an IIR filter whose order is not 2.
	ErrUnsupportedOrder = errors.New("unsupported IIR order")

	// ErrIO indicates the preset could not be read.
	ErrIO = errors.New("preset read failure")

	// ErrUnknownDirective indicates a line that is neither Filter nor Preamp.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrUnexpectedToken indicates trailing tokens after the six IIR coefficients.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError describes why a preset line was rejected.
type ParseError struct {
	// Line is the 1-based line number, 0 when the failure is not tied to a line.
	Line int
	// Text is the offending line.
	Text string
	// Field names the marker or value that caused the failure, if any.
	Field string
	// Err is one of the package sentinel errors.
	Err error
	// Cause is the underlying error, for example from the file system.
	Cause error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Line > 0 {
		return fmt.Sprintf("preset line %d: %s", e.Line, msg)
	}

	return "preset: " + msg
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// Warning is a non-fatal remark about a preset line.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
