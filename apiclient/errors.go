package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoCredential is returned when an authenticated operation is invoked
// without a bearer credential. The request is never attempted.
var ErrNoCredential = errors.New("missing bearer credential")

// APIError is a structured backend failure. The backend replies with a bare
// {"error": msg} body; the client maps it to a stable {code, message} pair.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	// The backend wraps failures as {"error": msg}; some endpoints use
	// {"message": msg}. Fall back to the raw body.
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Message != "" {
			message = payload.Message
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}

	code := "upstreamError"
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = "authError"
	case status == http.StatusConflict:
		code = "conflictError"
	case status == http.StatusNotFound:
		code = "notFound"
	case status >= 400 && status < 500:
		code = "badRequest"
	}

	return &APIError{StatusCode: status, Code: code, Message: message}
}

// IsAuthError reports whether err represents a missing, invalid or expired
// credential.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNoCredential) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "authError"
}

// IsConflictError reports whether err represents an upstream conflict, such
// as a slot already taken at submission time.
func IsConflictError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "conflictError"
}
