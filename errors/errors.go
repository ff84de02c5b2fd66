package errors

import "fmt"

var (
	ErrAlreadyBrewing = fmt.Errorf("you already offered to brew")
	ErrRoundActive    = fmt.Errorf("a round is already active")
	ErrNoRound        = fmt.Errorf("no round is active")
	ErrRoundOver      = fmt.Errorf("round already over")
	ErrAlreadyJoined  = fmt.Errorf("already joined this round")
	ErrSelfJoin       = fmt.Errorf("the server cannot join their own round")
	ErrRoundFull      = fmt.Errorf("round is full")
	ErrNotRegistered  = fmt.Errorf("participant has no registered preference")
	ErrNotFound       = fmt.Errorf("participant not found")
	ErrInvalidInput   = fmt.Errorf("invalid input")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
)
