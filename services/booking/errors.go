package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking-flow failures.
const (
	CodeValidation = "validationError"
	CodeState      = "stateError"
	CodeNotFound   = "notFound"
	CodeUpstream   = "upstreamError"
)

// FlowError is a user-surfaceable booking-flow failure.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &FlowError{Code: CodeValidation, Message: msg}
}

func NewStateError(msg string) error {
	return &FlowError{Code: CodeState, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &FlowError{Code: CodeNotFound, Message: msg}
}

func NewUpstreamError(msg string) error {
	return &FlowError{Code: CodeUpstream, Message: msg}
}

func hasCode(err error, code string) bool {
	var fe *FlowError
	return errors.As(err, &fe) && fe.Code == code
}

// IsValidationError reports whether err was caught before any network call.
func IsValidationError(err error) bool { return hasCode(err, CodeValidation) }

// IsStateError reports whether err is an out-of-order flow operation.
func IsStateError(err error) bool { return hasCode(err, CodeState) }

// IsNotFoundError reports whether the flow is missing or expired.
func IsNotFoundError(err error) bool { return hasCode(err, CodeNotFound) }
