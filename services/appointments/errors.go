package appointments

import (
	"errors"
	"fmt"
)

// ApptError is a user-surfaceable appointment-view failure.
type ApptError struct {
	Code    string
	Message string
}

func (e *ApptError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ApptError{Code: "validationError", Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ApptError{Code: "notFound", Message: msg}
}

// IsValidationError reports whether err was caught before any network call.
func IsValidationError(err error) bool {
	var ae *ApptError
	return errors.As(err, &ae) && ae.Code == "validationError"
}

// IsNotFoundError reports whether the appointment does not exist in the
// patient's list.
func IsNotFoundError(err error) bool {
	var ae *ApptError
	return errors.As(err, &ae) && ae.Code == "notFound"
}
