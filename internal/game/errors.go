package game

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalState is returned by Forward once the hand has finished.
	// A new Hand must be built to keep playing.
	ErrTerminalState = errors.New("hand is already complete")

	// ErrInsufficientPlayers is returned when fewer than two seats hold chips.
	ErrInsufficientPlayers = errors.New("at least two players with chips are required")

	// ErrNotStarted is returned by Forward before Init.
	ErrNotStarted = errors.New("hand has not been initialised")

	// ErrAlreadyStarted is returned by a second call to Init.
	ErrAlreadyStarted = errors.New("hand has already been initialised")
)

// OutOfTurnError is returned when an action arrives for a seat that is not
// the current turn. The hand is unchanged.
type OutOfTurnError struct {
	Seat int
	Turn int
}

func (e *OutOfTurnError) Error() string {
	return fmt.Sprintf("seat %d acted out of turn (turn is seat %d)", e.Seat, e.Turn)
}

// IllegalActionError is returned when an action fails validation. The hand
// is unchanged and the seat may resubmit.
type IllegalActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("seat %d cannot %s: %s", e.Seat, e.Action, e.Reason)
}

func illegal(seat int, a Action, format string, args ...any) *IllegalActionError {
	return &IllegalActionError{Seat: seat, Action: a, Reason: fmt.Sprintf(format, args...)}
}
