package services

import "errors"

// ErrCharacterNotFound is returned when an award names a character the
// catalog does not know. Detected before any mutation.
var ErrCharacterNotFound = errors.New("character not found")

// ValidationError rejects malformed award input before any mutation. The
// message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidInput(message string) error {
	return &ValidationError{Message: message}
}
