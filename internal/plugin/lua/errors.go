package lua

import "errors"

var (
	// ErrStateClosed is returned by calls on a closed State.
	ErrStateClosed = errors.New("script state closed")

	// ErrExecutionTimeout is returned when a script call outlives its
	// deadline.
	ErrExecutionTimeout = errors.New("script timed out")

	// ErrBadResult is returned when translate returns something other than
	// a string, nil or a boolean.
	ErrBadResult = errors.New("translate returned an unsupported value")
)
