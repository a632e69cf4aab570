package services

import "errors"

// ValidationError rejects invalid input to a creation operation before any
// state is mutated. Operations referencing a missing id are not errors:
// they are defined as no-ops.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
