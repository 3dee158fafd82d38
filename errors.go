package faketty

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSequencer is wrapped by the errors returned from the frame and
	// sequence accessors of a TTY that has no Sequencer registered.
	ErrNoSequencer = errors.New("faketty: no sequencer registered")

	// ErrInvalidDirection is returned by TTY.ClearLine for a direction other
	// than ClearLineLeft, ClearLineWhole or ClearLineRight.
	ErrInvalidDirection = errors.New("faketty: invalid clear line direction")

	// ErrInvalidOption is wrapped by option validation failures.
	ErrInvalidOption = errors.New("faketty: invalid option")

	// ErrConditionNotMet is wrapped by the error returned from TTY.Expect.
	ErrConditionNotMet = errors.New("faketty: condition not met")
)

// NoSequencerError identifies the accessor that was called before any
// Sequencer was registered.
type NoSequencerError struct {
	Accessor string
}

func (e *NoSequencerError) Error() string {
	return fmt.Sprintf("faketty: %s called with no sequencer registered, use TTY.AddSequencer first", e.Accessor)
}

func (e *NoSequencerError) Unwrap() error {
	return ErrNoSequencer
}
