package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the tracker API.
// Message carries the server's structured {"error": ...} reason when the
// body had one, otherwise the raw body.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// Reason extracts the server-reported reason from err for user-facing
// display: the HTTPError message when present, err.Error() otherwise.
func Reason(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
