package entities

import "errors"

var (
	// ErrInvalidTransition is returned when an entity is asked to leave a state
	// it cannot leave (cancel an accepted proposal, sell a sold quota).
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrStateTransitionDenied is returned when a transaction step is requested
	// from a status that does not precede it.
	ErrStateTransitionDenied = errors.New("state transition denied")
)
