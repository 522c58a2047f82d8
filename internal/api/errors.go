package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a server-reported failure with the HTTP status and the
// message from the response body's "error" field.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAuth reports whether the error is an authentication failure.
func (e *Error) IsAuth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// errorBody matches the Flask backend's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// parseError builds an *Error from a non-2xx response body.
func parseError(status int, body []byte) *Error {
	var eb errorBody
	if len(body) > 0 {
		if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
			return &Error{Status: status, Message: eb.Error}
		}
	}
	return &Error{Status: status, Message: http.StatusText(status)}
}
