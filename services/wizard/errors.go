package wizard

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session id resolves to nothing,
// either because it never existed or because its TTL expired.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// ValidationError refuses a transition whose precondition does not hold:
// a required earlier-step field is missing, the submitted value is not one
// the current step offered, or contact details are empty. The session is
// left untouched on the current step.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// WriteError means the store rejected or could not persist the reservation.
// The session stays on collect_details with the draft intact; the client may
// resubmit.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save booking: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
