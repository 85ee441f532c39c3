// SPDX-License-Identifier: EPL-2.0

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineConstruction indicates the factory could not create an engine.
	ErrEngineConstruction = errors.New("filter engine construction failed")

	// ErrOptionValidation indicates an engine rejected its arguments or the
	// signal it was started with.
	ErrOptionValidation = errors.New("filter option validation failed")

	// ErrInvalidFormat indicates a channel count or rate no chain can have.
	ErrInvalidFormat = errors.New("invalid stream format")

	// ErrShortBuffer indicates a block smaller than frames*channels.
	ErrShortBuffer = errors.New("buffer shorter than block")
)

// BuildError reports which stage of which channel stopped a Build.
type BuildError struct {
	Slot    int
	Channel int
	Spec    string
	Kind    error // ErrEngineConstruction or ErrOptionValidation
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("slot %d (%s) channel %d: %v: %v", e.Slot, e.Spec, e.Channel, e.Kind, e.Err)
}

func (e *BuildError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
