package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Error is an HTTP status error returned by the learning API. It is only
// produced when a response was actually received; transport-level failures
// surface as *url.Error from the HTTP client.
type Error struct {
	StatusCode int
	Message    string // server-provided message, may be empty
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// User-facing messages for the fixed set of status codes the UI cares
// about. Unmapped statuses fall back to the server message, then the
// generic default.
var statusMessages = map[int]string{
	http.StatusUnauthorized:        "Unauthorized. Please log in again.",
	http.StatusForbidden:           "Access forbidden.",
	http.StatusNotFound:            "Resource not found.",
	http.StatusInternalServerError: "Server error. Please try again later.",
	http.StatusServiceUnavailable:  "Service unavailable. Please try again later.",
}

const (
	msgNetworkError = "Network error. Please check your connection."
	msgTimeout      = "Request timeout. Please try again."
	msgDefault      = "An error occurred. Please try again."
)

// UserMessage maps an error from any client operation to a message fit
// for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if msg, ok := statusMessages[apiErr.StatusCode]; ok {
			return msg
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return msgDefault
	}

	// Timeouts before any status classification: a timed-out request may
	// also be wrapped in *url.Error, so this check comes first.
	if isTimeout(err) {
		return msgTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return msgNetworkError
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgDefault
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsClientError reports whether err is an HTTP 4xx response.
func IsClientError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
