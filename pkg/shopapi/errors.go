package shopapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the commerce API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code reported by the API.
	Code string `json:"error"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// AuthFailure reports whether the response rejected our authorization.
func (e *APIError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsAuthError reports whether err is an API authorization failure (401/403).
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthFailure()
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
func parseErrorResponse(status int, body []byte) *APIError {
	var errResp struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		code := errResp.Error
		if code == "" {
			code = errResp.Code
		}
		if code != "" {
			return &APIError{StatusCode: status, Code: code, Message: errResp.Message}
		}
	}

	// Fallback: generic error from status code
	return &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
	}
}
