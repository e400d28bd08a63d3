package domain

import "errors"

// ErrStoreUnavailable wraps any failure talking to the backing table.
// Callers surface it as "try again later" and never retry the write,
// since a blind retry could duplicate an append.
var ErrStoreUnavailable = errors.New("subscription store unavailable")

// ErrUnknownAction marks callback data the router cannot dispatch
var ErrUnknownAction = errors.New("unknown action")

// ValidationError is a recoverable input error; the flow re-prompts
// instead of failing
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
