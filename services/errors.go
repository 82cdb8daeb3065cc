package services

import (
	"errors"
	"fmt"
)

// ValidationError is the single business-rule failure signal. Controllers map
// it to 422; everything else bubbles up from the persistence layer unchanged.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
