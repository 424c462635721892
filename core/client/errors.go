package client

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned for HTTP 401 responses, after the
	// persisted session has been cleared.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrPermissionDenied is returned for HTTP 403 responses.
	ErrPermissionDenied = errors.New("you do not have permission to access this resource")
	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("the requested resource does not exist")
	// ErrServerError is returned for HTTP 500 responses.
	ErrServerError = errors.New("server error, please try again later")
	// ErrRequestTimeout is returned when the request was aborted by a
	// timeout before any HTTP response arrived.
	ErrRequestTimeout = errors.New("request timed out, please try again later")
	// ErrNetworkFailure is returned when the server could not be reached.
	ErrNetworkFailure = errors.New("network connection failed, please check your network")
	// ErrMissingBaseURL is returned by New when no base URL is configured.
	ErrMissingBaseURL = errors.New("base URL is required")
)

// fallbackMessage is used when a failure envelope carries no message.
const fallbackMessage = "request failed"

// APIError is a business-logic failure: the HTTP call succeeded but the
// envelope code is neither 200 nor 201. Code is the envelope code, not an
// HTTP status.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fallbackMessage
	}
	return e.Message
}

// HTTPError is an HTTP-level failure outside the fixed 401/403/404/500
// classes. Message is taken from the response envelope when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return e.Message
}
