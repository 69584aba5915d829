package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when the attempt limit is reached
	// without an accepted value.
	ErrTooManyAttempts = errors.New("prompt: too many attempts")
)
